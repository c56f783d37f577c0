package weather

import "math"

// FrontKind classifies a front marker.
type FrontKind int

const (
	FrontWarm FrontKind = iota
	FrontCold
	FrontOccluded
)

// FrontMarker is a per-frame classification of one sampled grid cell. The
// angle aligns the drawn symbol with the local gradient direction.
type FrontMarker struct {
	X, Y  int
	Angle float64
	Kind  FrontKind
}

// Fronts samples the grid on a fixed stride and tags high-gradient cells as
// warm, cold, or occluded front markers. Each sample is classified on its
// own; adjacent markers are not traced into connected fronts and may
// disagree.
func (f *Field) Fronts(stride int, threshold, step, baseline float64) []FrontMarker {
	if stride < 1 {
		stride = 1
	}
	half := step * 0.5
	var out []FrontMarker
	for y := 0; y < f.rows; y += stride {
		for x := 0; x < f.cols; x += stride {
			if f.GradientMagnitudeAt(x, y) < threshold {
				continue
			}
			gx, gy := f.grad.At(x, y)
			kind := FrontOccluded
			switch v := f.vals.At(x, y); {
			case v > baseline+half:
				kind = FrontWarm
			case v < baseline-half:
				kind = FrontCold
			}
			out = append(out, FrontMarker{
				X:     x,
				Y:     y,
				Angle: math.Atan2(gy, gx),
				Kind:  kind,
			})
		}
	}
	return out
}
