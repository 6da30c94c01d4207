package seed

import (
	"math"
	"testing"

	"backdrop/internal/core"
)

func TestRandomDensity(t *testing.T) {
	l := core.NewLattice(200, 200)
	r := &Random{Density: DefaultDensity, RNG: core.NewRNG(7)}
	r.Fill(l)
	got := float64(l.Alive()) / float64(len(l.Cells()))
	if math.Abs(got-DefaultDensity) > 0.02 {
		t.Fatalf("density = %.3f, want about %.2f", got, DefaultDensity)
	}
}

func TestRandomOverwritesPreviousState(t *testing.T) {
	l := core.NewLattice(10, 10)
	for i := range l.Cells() {
		l.Cells()[i] = 1
	}
	(&Random{Density: 0, RNG: core.NewRNG(1)}).Fill(l)
	if l.Alive() != 0 {
		t.Fatalf("zero density left %d live cells", l.Alive())
	}
}

func TestNoiseStaysBinaryAndPlausible(t *testing.T) {
	l := core.NewLattice(120, 80)
	n := NewNoise(DefaultDensity)
	n.RNG = core.NewRNG(3)
	n.Fill(l)
	for i, c := range l.Cells() {
		if c > 1 {
			t.Fatalf("cell %d = %d, want 0 or 1", i, c)
		}
	}
	got := float64(l.Alive()) / float64(len(l.Cells()))
	if got <= 0 || got > 2*DefaultDensity {
		t.Fatalf("noise density = %.3f out of range", got)
	}
}

func TestByName(t *testing.T) {
	if _, ok := ByName("noise", 0.2).(*Noise); !ok {
		t.Fatal("noise filler not selected")
	}
	if _, ok := ByName("random", 0.2).(*Random); !ok {
		t.Fatal("random filler not selected")
	}
	if _, ok := ByName("", 0.2).(*Random); !ok {
		t.Fatal("default filler should be random")
	}
}
