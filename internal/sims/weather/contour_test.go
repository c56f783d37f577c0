package weather

import (
	"math"
	"testing"
)

// cornerValue returns the value at a cell corner of the 2x2 test field.
func cornerField(va, vb, vc, vd float64) *Field {
	f := newField(2, 2, 1)
	f.vals.Set(0, 0, va)
	f.vals.Set(1, 0, vb)
	f.vals.Set(1, 1, vc)
	f.vals.Set(0, 1, vd)
	return f
}

// edgeValueAt linearly interpolates the field along the cell edge a contour
// endpoint sits on. Every marching-squares endpoint must interpolate back
// to the iso level.
func edgeValueAt(x, y, va, vb, vc, vd float64) (float64, bool) {
	const eps = 1e-9
	switch {
	case math.Abs(y) < eps:
		return va + (vb-va)*x, true
	case math.Abs(y-1) < eps:
		return vd + (vc-vd)*x, true
	case math.Abs(x) < eps:
		return va + (vd-va)*y, true
	case math.Abs(x-1) < eps:
		return vb + (vc-vb)*y, true
	}
	return 0, false
}

func TestIsolineCases(t *testing.T) {
	const level = 0.0
	const inside = 1.0
	const outside = -3.0

	for caseIdx := 1; caseIdx <= 14; caseIdx++ {
		pick := func(bit int) float64 {
			if caseIdx&bit != 0 {
				return inside
			}
			return outside
		}
		va, vb, vc, vd := pick(8), pick(4), pick(2), pick(1)
		f := cornerField(va, vb, vc, vd)
		segments := f.Isolines(level)

		wantSegments := 1
		if caseIdx == 5 || caseIdx == 10 {
			wantSegments = 2
		}
		if len(segments) != wantSegments {
			t.Fatalf("case %d: got %d segments, want %d", caseIdx, len(segments), wantSegments)
		}

		for _, seg := range segments {
			for _, pt := range [][2]float64{{seg.X1, seg.Y1}, {seg.X2, seg.Y2}} {
				v, onEdge := edgeValueAt(pt[0], pt[1], va, vb, vc, vd)
				if !onEdge {
					t.Fatalf("case %d: endpoint (%v,%v) not on a cell edge", caseIdx, pt[0], pt[1])
				}
				if math.Abs(v-level) > 1e-9 {
					t.Fatalf("case %d: endpoint (%v,%v) interpolates to %v, want level %v",
						caseIdx, pt[0], pt[1], v, level)
				}
			}
		}
	}
}

func TestIsolineUniformFieldEmpty(t *testing.T) {
	f := cornerField(1, 1, 1, 1)
	if segs := f.Isolines(0); len(segs) != 0 {
		t.Fatalf("all-inside cell produced %d segments", len(segs))
	}
	if segs := f.Isolines(2); len(segs) != 0 {
		t.Fatalf("all-outside cell produced %d segments", len(segs))
	}
}

func TestInterpMidpointFallback(t *testing.T) {
	if got := interp(0.5, 0.5+1e-8); got != 0.5 {
		t.Fatalf("near-equal endpoints interpolated to %v, want midpoint", got)
	}
	if got := interp(1, -3); got != 0.25 {
		t.Fatalf("interp(1,-3) = %v, want 0.25", got)
	}
}

func TestBandPartition(t *testing.T) {
	const step = 0.3
	const baseline = 0.1
	const count = 4

	for i := -count; i < count-1; i++ {
		_, hi := BandBounds(i, step, baseline)
		lo, _ := BandBounds(i+1, step, baseline)
		if hi != lo {
			t.Fatalf("band %d hi %v != band %d lo %v", i, hi, i+1, lo)
		}
	}

	lo, _ := BandBounds(-count, step, baseline)
	_, hi := BandBounds(count-1, step, baseline)
	if math.Abs(lo-(baseline-count*step)) > 1e-12 || math.Abs(hi-(baseline+count*step)) > 1e-12 {
		t.Fatalf("band union covers [%v,%v), want [%v,%v)", lo, hi, baseline-count*step, baseline+count*step)
	}
}

func TestBandIndexScenario(t *testing.T) {
	// isoCount=1, isoStep=0.5, baseline=0: exactly two bands.
	idx, ok := BandIndexOf(0.3, 0.5, 0, 1)
	if !ok || idx != 0 {
		t.Fatalf("value 0.3 mapped to band %d (ok=%v), want 0", idx, ok)
	}
	idx, ok = BandIndexOf(-0.3, 0.5, 0, 1)
	if !ok || idx != -1 {
		t.Fatalf("value -0.3 mapped to band %d (ok=%v), want -1", idx, ok)
	}
	lo, hi := BandBounds(-1, 0.5, 0)
	if lo != -0.5 || hi != 0 {
		t.Fatalf("band -1 = [%v,%v), want [-0.5,0)", lo, hi)
	}
	lo, hi = BandBounds(0, 0.5, 0)
	if lo != 0 || hi != 0.5 {
		t.Fatalf("band 0 = [%v,%v), want [0,0.5)", lo, hi)
	}
	if _, ok := BandIndexOf(0.8, 0.5, 0, 1); ok {
		t.Fatal("value outside the configured range must not map to a band")
	}

	// Half-open boundary: the shared edge value belongs to the upper band.
	idx, ok = BandIndexOf(0, 0.5, 0, 1)
	if !ok || idx != 0 {
		t.Fatalf("boundary value 0 mapped to band %d (ok=%v), want 0", idx, ok)
	}
}

func TestIsobandsAnyCornerRule(t *testing.T) {
	f := cornerField(0.3, 0.3, 0.3, 0.3)
	bands := f.Isobands(0.5, 1, 0)
	if len(bands) != 1 {
		t.Fatalf("uniform in-band cell reported %d band entries, want 1", len(bands))
	}
	if bands[0].Index != 0 || bands[0].X != 0 || bands[0].Y != 0 {
		t.Fatalf("unexpected band entry %+v", bands[0])
	}

	// One corner in a different band: the cell belongs to both.
	f = cornerField(0.3, 0.3, 0.3, -0.2)
	bands = f.Isobands(0.5, 1, 0)
	if len(bands) != 2 {
		t.Fatalf("mixed-corner cell reported %d band entries, want 2", len(bands))
	}
}
