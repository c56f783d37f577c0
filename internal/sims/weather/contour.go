package weather

import "math"

// Segment is one isoline piece in grid coordinates.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Band marks one cell quad as belonging to an isoband. Index counts bands
// from the baseline: band i covers [baseline+i*step, baseline+(i+1)*step),
// so indices run from -count to count-1 and adjacent bands share an edge
// value exactly.
type Band struct {
	Index int
	X, Y  int
}

// Cell corners are labeled clockwise from the top-left:
//
//	a --- b
//	|     |
//	d --- c
//
// and contribute case bits a=8, b=4, c=2, d=1 when at or above the level.
// Edges are indexed 0=top (a-b), 1=right (b-c), 2=bottom (d-c), 3=left (a-d).
var caseSegments = [16][]int{
	0:  nil,
	1:  {3, 2},
	2:  {2, 1},
	3:  {3, 1},
	4:  {0, 1},
	5:  {0, 1, 3, 2}, // saddle: fixed two-segment split
	6:  {0, 2},
	7:  {0, 3},
	8:  {0, 3},
	9:  {0, 2},
	10: {0, 3, 2, 1}, // saddle: fixed two-segment split
	11: {0, 1},
	12: {3, 1},
	13: {2, 1},
	14: {3, 2},
	15: nil,
}

// Isolines extracts the iso-contour at the given level with marching
// squares. The two ambiguous saddle cases (5 and 10) are resolved by a
// fixed two-segment choice that is not topologically disambiguated; this
// is an accepted approximation.
func (f *Field) Isolines(level float64) []Segment {
	var out []Segment
	for y := 0; y < f.rows-1; y++ {
		for x := 0; x < f.cols-1; x++ {
			va := f.vals.At(x, y) - level
			vb := f.vals.At(x+1, y) - level
			vc := f.vals.At(x+1, y+1) - level
			vd := f.vals.At(x, y+1) - level

			idx := 0
			if va >= 0 {
				idx |= 8
			}
			if vb >= 0 {
				idx |= 4
			}
			if vc >= 0 {
				idx |= 2
			}
			if vd >= 0 {
				idx |= 1
			}

			edges := caseSegments[idx]
			for i := 0; i+1 < len(edges); i += 2 {
				x1, y1 := edgePoint(edges[i], x, y, va, vb, vc, vd)
				x2, y2 := edgePoint(edges[i+1], x, y, va, vb, vc, vd)
				out = append(out, Segment{X1: x1, Y1: y1, X2: x2, Y2: y2})
			}
		}
	}
	return out
}

// edgePoint interpolates the crossing position along a cell edge.
func edgePoint(edge, x, y int, va, vb, vc, vd float64) (float64, float64) {
	fx := float64(x)
	fy := float64(y)
	switch edge {
	case 0:
		return fx + interp(va, vb), fy
	case 1:
		return fx + 1, fy + interp(vb, vc)
	case 2:
		return fx + interp(vd, vc), fy + 1
	default:
		return fx, fy + interp(va, vd)
	}
}

// interp returns the linear crossing parameter t = v1/(v1-v2), falling back
// to the midpoint when the endpoint values are too close to divide safely.
func interp(v1, v2 float64) float64 {
	if math.Abs(v1-v2) < 1e-6 {
		return 0.5
	}
	return v1 / (v1 - v2)
}

// BandBounds returns the half-open value interval covered by a band index.
func BandBounds(index int, step, baseline float64) (lo, hi float64) {
	lo = baseline + float64(index)*step
	hi = baseline + float64(index+1)*step
	return lo, hi
}

// BandIndexOf maps a value to its band index, reporting false when the
// value falls outside the configured range of 2*count bands.
func BandIndexOf(v, step, baseline float64, count int) (int, bool) {
	if step <= 0 || count <= 0 {
		return 0, false
	}
	idx := int(math.Floor((v - baseline) / step))
	if idx < -count || idx >= count {
		return 0, false
	}
	return idx, true
}

// Isobands reports, per band, the cell quads whose corners touch the band's
// interval. A cell is in-band when ANY of its four corner values lies in
// [lo, hi); matching cells are filled as whole quads rather than sub-cell
// regions, trading accuracy for speed.
func (f *Field) Isobands(step float64, count int, baseline float64) []Band {
	if step <= 0 || count <= 0 {
		return nil
	}
	var out []Band
	var seen [4]int
	for y := 0; y < f.rows-1; y++ {
		for x := 0; x < f.cols-1; x++ {
			corners := [4]float64{
				f.vals.At(x, y),
				f.vals.At(x+1, y),
				f.vals.At(x+1, y+1),
				f.vals.At(x, y+1),
			}
			n := 0
			for _, v := range corners {
				idx, ok := BandIndexOf(v, step, baseline, count)
				if !ok {
					continue
				}
				dup := false
				for _, s := range seen[:n] {
					if s == idx {
						dup = true
						break
					}
				}
				if dup {
					continue
				}
				seen[n] = idx
				n++
				out = append(out, Band{Index: idx, X: x, Y: y})
			}
		}
	}
	return out
}
