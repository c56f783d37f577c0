package weather

import (
	"testing"

	"github.com/Vanguardbots/synoptic-audio-visualizer/internal/core"
)

func TestSketchDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cols = 32
	cfg.Rows = 24
	cfg.Seed = 42
	cfg.Params.ParticleCount = 30

	a := NewWithConfig(cfg)
	b := NewWithConfig(cfg)
	frame := core.AudioFrame{Bass: 0.6, Mid: 0.3, Treble: 0.7, Level: 0.5}
	for i := 0; i < 20; i++ {
		a.Step(1.0/60, frame)
		b.Step(1.0/60, frame)
	}

	av := a.Field().Values()
	bv := b.Field().Values()
	for i := range av {
		if av[i] != bv[i] {
			t.Fatalf("fields diverged at %d", i)
		}
	}
	ap := a.Particles()
	bp := b.Particles()
	if len(ap) != len(bp) {
		t.Fatalf("particle counts diverged: %d vs %d", len(ap), len(bp))
	}
	for i := range ap {
		if ap[i] != bp[i] {
			t.Fatalf("particles diverged at %d: %+v vs %+v", i, ap[i], bp[i])
		}
	}
}

func TestParticleResizeDeferredToFrameBoundary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cols = 16
	cfg.Rows = 16
	cfg.Params.ParticleCount = 10
	s := NewWithConfig(cfg)

	s.ResizeParticles(40)
	if got := len(s.Particles()); got != 10 {
		t.Fatalf("resize applied mid-frame: %d particles", got)
	}
	s.Step(1.0/60, core.AudioFrame{Level: 0.5})
	if got := len(s.Particles()); got != 40 {
		t.Fatalf("resize not applied at frame boundary: %d particles", got)
	}
}

func TestGridResizeDeferredToFrameBoundary(t *testing.T) {
	s := New(16, 16)
	s.ResizeGrid(24, 20)
	if size := s.Size(); size.W != 16 || size.H != 16 {
		t.Fatalf("grid resize applied mid-frame: %dx%d", size.W, size.H)
	}
	s.Step(1.0/60, core.AudioFrame{})
	if size := s.Size(); size.W != 24 || size.H != 20 {
		t.Fatalf("grid resize missing after frame boundary: %dx%d", size.W, size.H)
	}
}

func TestIsolineLevels(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.IsoCount = 2
	cfg.Params.IsoStep = 0.5
	cfg.Params.Baseline = 0
	s := NewWithConfig(cfg)

	levels := s.IsolineLevels()
	want := []float64{-1, -0.5, 0, 0.5, 1}
	if len(levels) != len(want) {
		t.Fatalf("got %d levels, want %d", len(levels), len(want))
	}
	for i := range want {
		if levels[i] != want[i] {
			t.Fatalf("level %d = %v, want %v", i, levels[i], want[i])
		}
	}
}

func TestSetParameterValidation(t *testing.T) {
	s := New(16, 16)
	if s.SetFloatParameter("influence", 1.5) {
		t.Fatal("influence above 1 must be rejected")
	}
	if !s.SetFloatParameter("influence", 0.3) {
		t.Fatal("valid influence rejected")
	}
	if s.SetIntParameter("iso_count", 0) {
		t.Fatal("zero iso_count must be rejected")
	}
	if s.SetFloatParameter("unknown", 1) {
		t.Fatal("unknown key must be rejected")
	}
}
