package weather

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/Vanguardbots/synoptic-audio-visualizer/internal/core"
)

// octavePhase offsets the second noise octave so it does not track the base
// octave's features.
const octavePhase = 41.7

// Field synthesizes the pseudo-pressure surface and its gradient. Both grids
// are regenerated in full on every Advance; only the time accumulator
// persists between frames.
type Field struct {
	cols, rows int

	noise *perlin.Perlin
	vals  *core.FloatGrid
	grad  *core.VecGrid

	t float64
}

func newField(cols, rows int, seed int64) *Field {
	return &Field{
		cols:  cols,
		rows:  rows,
		noise: perlin.NewPerlin(2, 2, 3, seed),
		vals:  core.NewFloatGrid(cols, rows),
		grad:  core.NewVecGrid(cols, rows),
	}
}

// Size reports the grid dimensions.
func (f *Field) Size() core.Size { return core.Size{W: f.cols, H: f.rows} }

// Time returns the accumulated field time.
func (f *Field) Time() float64 { return f.t }

// Resize swaps in freshly allocated value and gradient grids as a pair, so
// the two never disagree on dimensions. Must be called between frames.
func (f *Field) Resize(cols, rows int) {
	if cols < 2 {
		cols = 2
	}
	if rows < 2 {
		rows = 2
	}
	if cols == f.cols && rows == f.rows {
		return
	}
	f.cols = cols
	f.rows = rows
	f.vals = core.NewFloatGrid(cols, rows)
	f.grad = core.NewVecGrid(cols, rows)
}

// Advance regenerates the field for the elapsed time and audio frame, then
// recomputes the gradient. Time advances faster when the track is loud.
func (f *Field) Advance(dt float64, frame core.AudioFrame, p Params) {
	f.t += dt * p.TimeRate * (0.6 + 0.8*frame.Energy())

	influence := p.AudioInfluence
	rippleAmp := p.RippleAmp * (1 + p.TrebleRippleGain*frame.Treble*influence)
	lift := p.BassLift * frame.Bass * influence
	damp := p.MidDamp * frame.Mid * influence

	for y := 0; y < f.rows; y++ {
		for x := 0; x < f.cols; x++ {
			nx := float64(x) * p.NoiseScale
			ny := float64(y) * p.NoiseScale

			v := f.noise.Noise3D(nx, ny, f.t)
			v += 0.5 * f.noise.Noise3D(nx*2+octavePhase, ny*2+octavePhase, f.t*1.7)
			v += math.Sin(p.RippleFreqX*float64(x)+p.RippleFreqY*float64(y)+f.t*p.RippleSpeed) * rippleAmp
			v += lift - damp

			f.vals.Set(x, y, v)
		}
	}
	f.computeGradient()
}

// Values exposes the row-major field values for bulk rendering.
func (f *Field) Values() []float64 { return f.vals.Values() }

// ValueAt returns the field value at a grid cell.
func (f *Field) ValueAt(x, y int) float64 { return f.vals.At(x, y) }

// GradientAt returns the gradient vector at a grid cell.
func (f *Field) GradientAt(x, y int) (float64, float64) { return f.grad.At(x, y) }

// GradientMagnitudeAt returns the Euclidean norm of the gradient at a cell.
func (f *Field) GradientMagnitudeAt(x, y int) float64 {
	gx, gy := f.grad.At(x, y)
	return math.Hypot(gx, gy)
}

// computeGradient fills the gradient grid with central differences over the
// normalized [0,1] domain. Boundary cells copy their nearest interior
// neighbor's gradient instead of using one-sided differences; the replicated
// edge avoids the degenerate contours one-sided stencils produce there.
func (f *Field) computeGradient() {
	invDx := float64(f.cols-1) * 0.5
	invDy := float64(f.rows-1) * 0.5

	for y := 1; y < f.rows-1; y++ {
		for x := 1; x < f.cols-1; x++ {
			gx := (f.vals.At(x+1, y) - f.vals.At(x-1, y)) * invDx
			gy := (f.vals.At(x, y+1) - f.vals.At(x, y-1)) * invDy
			f.grad.Set(x, y, gx, gy)
		}
	}

	for y := 0; y < f.rows; y++ {
		for x := 0; x < f.cols; x++ {
			if x > 0 && x < f.cols-1 && y > 0 && y < f.rows-1 {
				continue
			}
			ix := clampInt(x, 1, f.cols-2)
			iy := clampInt(y, 1, f.rows-2)
			gx, gy := f.grad.At(ix, iy)
			f.grad.Set(x, y, gx, gy)
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
