package fade

import (
	"testing"

	"backdrop/internal/core"
)

func TestAdvanceAgesAndExpires(t *testing.T) {
	p := core.Point{X: 3, Y: 4}
	trail := Trail{}
	trail.Spawn(p, 15)

	for age := 0; age < 15; age++ {
		c, ok := trail[p]
		if !ok {
			t.Fatalf("cell missing at age %d", age)
		}
		if c.Age != age {
			t.Fatalf("age = %d, want %d", c.Age, age)
		}
		trail = Advance(trail)
	}
	if _, ok := trail[p]; ok {
		t.Fatal("cell still present at age 15")
	}
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	p := core.Point{X: 1, Y: 1}
	prev := Trail{p: {Age: 2, MaxAge: 15}}
	next := Advance(prev)
	if prev[p].Age != 2 {
		t.Fatalf("input aged to %d", prev[p].Age)
	}
	if next[p].Age != 3 {
		t.Fatalf("output age = %d, want 3", next[p].Age)
	}

	last := Trail{p: {Age: 14, MaxAge: 15}}
	if got := Advance(last); len(got) != 0 || len(last) != 1 {
		t.Fatalf("expiry touched the wrong map: next=%d prev=%d", len(got), len(last))
	}
}

func TestSpawnRespectsFreshness(t *testing.T) {
	p := core.Point{X: 0, Y: 0}
	for age := 0; age <= Fresh; age++ {
		trail := Trail{p: {Age: age, MaxAge: 15}}
		if trail.Spawn(p, 15) {
			t.Fatalf("spawn reset a cell of age %d", age)
		}
		if trail[p].Age != age {
			t.Fatalf("age changed to %d", trail[p].Age)
		}
	}
	trail := Trail{p: {Age: Fresh + 1, MaxAge: 15}}
	if !trail.Spawn(p, 15) || trail[p].Age != 0 {
		t.Fatalf("stale cell not refreshed: %+v", trail[p])
	}
}

func TestAlpha(t *testing.T) {
	cases := []struct {
		cell Cell
		want float64
	}{
		{Cell{Age: 0, MaxAge: 10}, 1},
		{Cell{Age: 5, MaxAge: 10}, 0.5},
		{Cell{Age: 10, MaxAge: 10}, 0},
		{Cell{Age: 3, MaxAge: 0}, 0},
	}
	for _, tc := range cases {
		if got := tc.cell.Alpha(); got != tc.want {
			t.Fatalf("Alpha(%+v) = %v, want %v", tc.cell, got, tc.want)
		}
	}
}
