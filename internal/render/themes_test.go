package render

import "testing"

func TestThemeByNameFallback(t *testing.T) {
	if got := ThemeByName("synoptic"); got.Name != "synoptic" {
		t.Fatalf("got theme %q", got.Name)
	}
	if got := ThemeByName("nope"); got.Name != Themes[0].Name {
		t.Fatalf("unknown name fell back to %q, want %q", got.Name, Themes[0].Name)
	}
}

func TestBandColorEndpoints(t *testing.T) {
	theme := Themes[0]
	const count = 4
	if got := theme.BandColor(-count, count); got != theme.ColdLow {
		t.Fatalf("lowest band color %v, want ColdLow %v", got, theme.ColdLow)
	}
	if got := theme.BandColor(count-1, count); got != theme.WarmHigh {
		t.Fatalf("highest band color %v, want WarmHigh %v", got, theme.WarmHigh)
	}
}

func TestFillBinaryRGBA(t *testing.T) {
	theme := Themes[0]
	cells := []uint8{0, 1, 0, 1}
	buf := make([]byte, 4*len(cells))
	FillBinaryRGBA(buf, cells, theme.CellOn, theme.CellOff)

	for i, c := range cells {
		base := i * 4
		want := theme.CellOff
		if c == 1 {
			want = theme.CellOn
		}
		if buf[base] != want.R || buf[base+1] != want.G || buf[base+2] != want.B || buf[base+3] != want.A {
			t.Fatalf("cell %d painted %v, want %v", i, buf[base:base+4], want)
		}
	}
}

func TestFillFieldRGBAClamps(t *testing.T) {
	theme := Themes[0]
	values := []float64{-10, 0, 10}
	buf := make([]byte, 4*len(values))
	FillFieldRGBA(buf, values, 1.5, theme)

	if buf[0] != theme.ColdLow.R || buf[1] != theme.ColdLow.G {
		t.Fatalf("far-below value not clamped to ColdLow: %v", buf[0:4])
	}
	if buf[8] != theme.WarmHigh.R || buf[9] != theme.WarmHigh.G {
		t.Fatalf("far-above value not clamped to WarmHigh: %v", buf[8:12])
	}
}
