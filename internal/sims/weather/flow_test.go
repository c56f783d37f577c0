package weather

import (
	"testing"

	"github.com/Vanguardbots/synoptic-audio-visualizer/internal/core"
)

func TestSampleDirectionDeterministic(t *testing.T) {
	fl := newFlow(32, 32, 7)
	a1, ux1, uy1 := fl.SampleDirection(3.7, 11.2, 0.5, 0.035)
	a2, ux2, uy2 := fl.SampleDirection(3.7, 11.2, 0.5, 0.035)
	if a1 != a2 || ux1 != ux2 || uy1 != uy2 {
		t.Fatalf("repeated samples diverged: (%v,%v,%v) vs (%v,%v,%v)", a1, ux1, uy1, a2, ux2, uy2)
	}

	other := newFlow(32, 32, 7)
	a3, _, _ := other.SampleDirection(3.7, 11.2, 0.5, 0.035)
	if a1 != a3 {
		t.Fatalf("same seed produced different angles: %v vs %v", a1, a3)
	}
}

func TestResizePreservesPrefix(t *testing.T) {
	fl := newFlow(40, 30, 3)
	fl.Resize(10)
	before := append([]WindParticle(nil), fl.Particles()...)

	fl.Resize(25)
	if len(fl.Particles()) != 25 {
		t.Fatalf("resize to 25 left %d particles", len(fl.Particles()))
	}
	for i, p := range fl.Particles()[:10] {
		if p != before[i] {
			t.Fatalf("particle %d moved during grow: %+v vs %+v", i, p, before[i])
		}
	}
	for _, p := range fl.Particles()[10:] {
		if p.X < 0 || p.X >= 40 || p.Y < 0 || p.Y >= 30 {
			t.Fatalf("new particle spawned outside the domain: %+v", p)
		}
	}

	fl.Resize(4)
	if len(fl.Particles()) != 4 {
		t.Fatalf("resize to 4 left %d particles", len(fl.Particles()))
	}
	for i, p := range fl.Particles() {
		if p != before[i] {
			t.Fatalf("particle %d moved during shrink: %+v vs %+v", i, p, before[i])
		}
	}
}

func TestParticlesStayInDomain(t *testing.T) {
	fl := newFlow(20, 15, 9)
	fl.Resize(50)
	p := DefaultConfig().Params
	frame := core.AudioFrame{Bass: 1, Mid: 1, Treble: 1, Level: 1}

	for i := 0; i < 200; i++ {
		fl.AdvanceParticles(1.0/30, float64(i)/30, frame, p)
	}
	for i, pt := range fl.Particles() {
		if pt.X < 0 || pt.X >= 20 || pt.Y < 0 || pt.Y >= 15 {
			t.Fatalf("particle %d escaped the toroidal domain: %+v", i, pt)
		}
	}
}

func TestBarbQuantization(t *testing.T) {
	// A ramp with constant slope c gives every barb gradient magnitude c,
	// so the symbolic units are c*barbUnitScale for all glyphs.
	const slope = 3.4 // 51 units: one pennant, nothing else
	f := newField(30, 20, 1)
	fillField(f, func(x, y int) float64 {
		return slope * float64(x) / float64(f.cols-1)
	})
	f.computeGradient()

	fl := newFlow(30, 20, 1)
	p := DefaultConfig().Params
	barbs := fl.Barbs(f, 6, 0, p)
	if len(barbs) == 0 {
		t.Fatal("no barbs produced")
	}
	for _, b := range barbs {
		if b.Pennants != 1 || b.Full != 0 || b.Half != 0 {
			t.Fatalf("barb at (%d,%d) encoded %d/%d/%d, want 1 pennant only",
				b.X, b.Y, b.Pennants, b.Full, b.Half)
		}
	}
}

func TestBarbQuantizationMix(t *testing.T) {
	// Slope 4.5 -> 67 units: one pennant, one full barb, one half barb.
	const slope = 4.5
	f := newField(30, 20, 1)
	fillField(f, func(x, y int) float64 {
		return slope * float64(x) / float64(f.cols-1)
	})
	f.computeGradient()

	fl := newFlow(30, 20, 1)
	barbs := fl.Barbs(f, 6, 0, DefaultConfig().Params)
	for _, b := range barbs {
		if b.Pennants != 1 || b.Full != 1 || b.Half != 1 {
			t.Fatalf("barb at (%d,%d) encoded %d/%d/%d, want 1/1/1",
				b.X, b.Y, b.Pennants, b.Full, b.Half)
		}
	}
}
