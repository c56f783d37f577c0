package ui

import (
	"math"
	"testing"

	"github.com/Vanguardbots/synoptic-audio-visualizer/internal/sims/weather"
)

func controlIndex(t *testing.T, p *controlPanel, key string) int {
	t.Helper()
	for i := range p.controls {
		if p.controls[i].control.Key == key {
			return i
		}
	}
	t.Fatalf("no control row for key %q", key)
	return -1
}

func TestControlPanelAdjustFloat(t *testing.T) {
	s := weather.New(16, 16)
	p := newControlPanel(s)
	p.refresh(s.Parameters())

	i := controlIndex(t, p, "influence")

	// Default influence sits at the max bound; plus must be a no-op.
	if p.canAdjust(i, 1) {
		t.Fatal("canAdjust reported headroom above the max bound")
	}
	if p.adjust(i, 1) {
		t.Fatal("adjust stepped past the max bound")
	}

	if !p.adjust(i, -1) {
		t.Fatal("adjust rejected a valid downward step")
	}
	if got := s.Config().Params.AudioInfluence; math.Abs(got-0.95) > 1e-9 {
		t.Fatalf("influence after one minus step = %v, want 0.95", got)
	}
}

func TestControlPanelAdjustInt(t *testing.T) {
	s := weather.New(16, 16)
	p := newControlPanel(s)
	p.refresh(s.Parameters())

	i := controlIndex(t, p, "iso_count")
	before := s.Config().Params.IsoCount
	if !p.adjust(i, -1) {
		t.Fatal("adjust rejected a valid integer step")
	}
	if got := s.Config().Params.IsoCount; got != before-1 {
		t.Fatalf("iso_count after one minus step = %d, want %d", got, before-1)
	}

	// Clamp at the min bound.
	if !s.SetIntParameter("iso_count", 1) {
		t.Fatal("could not move iso_count to its minimum")
	}
	p.refresh(s.Parameters())
	if p.canAdjust(i, -1) {
		t.Fatal("canAdjust reported headroom below the min bound")
	}
	if p.adjust(i, -1) {
		t.Fatal("adjust stepped past the min bound")
	}
	if got := s.Config().Params.IsoCount; got != 1 {
		t.Fatalf("iso_count after clamped step = %d, want 1", got)
	}
}

func TestControlPanelRefreshTracksSketch(t *testing.T) {
	s := weather.New(16, 16)
	p := newControlPanel(s)
	p.refresh(s.Parameters())

	i := controlIndex(t, p, "noise_scale")
	if !s.SetFloatParameter("noise_scale", 0.08) {
		t.Fatal("setter rejected a valid noise scale")
	}
	p.refresh(s.Parameters())
	if got := p.controls[i].floatValue; math.Abs(got-0.08) > 1e-9 {
		t.Fatalf("refreshed control value = %v, want 0.08", got)
	}
	if !p.controls[i].hasValue {
		t.Fatal("control row lost its value after refresh")
	}
}
