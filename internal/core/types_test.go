package core

import "testing"

func TestEnergyClamping(t *testing.T) {
	if got := (AudioFrame{}).Energy(); got != 0.1 {
		t.Fatalf("silent frame energy = %v, want floor 0.1", got)
	}
	loud := AudioFrame{Bass: 5, Mid: 5, Treble: 5, Level: 5}
	if got := loud.Energy(); got != 3.0 {
		t.Fatalf("clipping frame energy = %v, want ceiling 3.0", got)
	}
	mid := AudioFrame{Bass: 0.4, Mid: 0.2, Treble: 0.4, Level: 0.5}
	want := 0.5 + 0.5*(0.4+0.2+0.4)
	if got := mid.Energy(); got != want {
		t.Fatalf("energy = %v, want %v", got, want)
	}
}

func TestRegisterIgnoresInvalid(t *testing.T) {
	before := len(Sketches())
	Register("", func(map[string]string) Sketch { return nil })
	Register("broken", nil)
	if len(Sketches()) != before {
		t.Fatalf("registry grew to %d from invalid registrations", len(Sketches()))
	}
}

func TestFloatGridWrap(t *testing.T) {
	g := NewFloatGrid(5, 4)
	cases := []struct{ x, y, wx, wy int }{
		{0, 0, 0, 0},
		{-1, -1, 4, 3},
		{5, 4, 0, 0},
		{7, 9, 2, 1},
	}
	for _, c := range cases {
		wx, wy := g.Wrap(c.x, c.y)
		if wx != c.wx || wy != c.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", c.x, c.y, wx, wy, c.wx, c.wy)
		}
	}
}

func TestFrameClockFirstDeltaZero(t *testing.T) {
	c := NewFrameClock(0)
	if d := c.Delta(); d != 0 {
		t.Fatalf("first delta = %v, want 0", d)
	}
	if d := c.Delta(); d < 0 {
		t.Fatalf("second delta = %v, want non-negative", d)
	}
}
