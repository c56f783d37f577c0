package weather

import (
	"math"
	"math/rand/v2"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/Vanguardbots/synoptic-audio-visualizer/internal/core"
)

// curlEps is the finite-difference half-width for the curl estimate, in
// noise-space units.
const curlEps = 0.1

// WindParticle is a freely drifting tracer. Velocity is not stored; it is
// recomputed from the flow field every frame.
type WindParticle struct {
	X, Y float64
}

// Barb is a wind-barb glyph at a fixed grid position. Speed is encoded in
// standard notation: pennants are 50 units, full barbs 10, half barbs 5.
type Barb struct {
	X, Y  int
	Angle float64

	Pennants int
	Full     int
	Half     int
}

// Flow evaluates a curl-noise vector field for particles and barbs. The
// curl of a scalar noise function gives an approximately divergence-free
// flow that is cheap to sample pointwise without storing a vector grid.
type Flow struct {
	noise opensimplex.Noise
	rng   *rand.Rand

	cols, rows float64
	particles  []WindParticle
}

func newFlow(cols, rows int, seed int64) *Flow {
	return &Flow{
		noise: opensimplex.New(seed),
		rng:   rand.New(rand.NewPCG(uint64(seed), 1)),
		cols:  float64(cols),
		rows:  float64(rows),
	}
}

// SampleDirection returns the flow angle and unit velocity at a grid
// position. The result depends only on the noise generator, position, and
// time, so repeated calls within a frame agree exactly.
func (fl *Flow) SampleDirection(x, y, t float64, scale float64) (angle, ux, uy float64) {
	nx := x * scale
	ny := y * scale
	curl := (fl.noise.Eval3(nx, ny+curlEps, t) - fl.noise.Eval3(nx, ny-curlEps, t)) -
		(fl.noise.Eval3(nx+curlEps, ny, t) - fl.noise.Eval3(nx-curlEps, ny, t))
	angle = curl * 2 * math.Pi
	return angle, math.Cos(angle), math.Sin(angle)
}

// Particles exposes the current particle slice.
func (fl *Flow) Particles() []WindParticle { return fl.particles }

// Resize grows or shrinks the particle pool between frames. Surviving
// indices keep their positions; new slots start at random positions.
func (fl *Flow) Resize(count int) {
	if count < 0 {
		count = 0
	}
	if count <= len(fl.particles) {
		fl.particles = fl.particles[:count]
		return
	}
	for len(fl.particles) < count {
		fl.particles = append(fl.particles, WindParticle{
			X: fl.rng.Float64() * fl.cols,
			Y: fl.rng.Float64() * fl.rows,
		})
	}
}

// SetDomain updates the wrap bounds after a field resize. Existing particle
// positions are folded into the new domain.
func (fl *Flow) SetDomain(cols, rows int) {
	fl.cols = float64(cols)
	fl.rows = float64(rows)
	for i := range fl.particles {
		fl.particles[i].X = wrapFloat(fl.particles[i].X, fl.cols)
		fl.particles[i].Y = wrapFloat(fl.particles[i].Y, fl.rows)
	}
}

// AdvanceParticles recomputes every particle's velocity from the curl field
// at its current position, adds a small noise-driven jitter scaled by the
// audio level, and moves it at a speed mapped from the loudness composite
// into [0.8, 4.0]. Particles wrap toroidally.
func (fl *Flow) AdvanceParticles(dt, t float64, frame core.AudioFrame, p Params) {
	speed := 0.8 + (4.0-0.8)*(frame.Energy()-0.1)/2.9
	jitterAmp := 0.6 * frame.Level * p.AudioInfluence

	for i := range fl.particles {
		pt := &fl.particles[i]
		_, ux, uy := fl.SampleDirection(pt.X, pt.Y, t, p.FlowScale)

		jx := fl.noise.Eval3(pt.X*0.11+57.3, pt.Y*0.11, t*2)
		jy := fl.noise.Eval3(pt.X*0.11, pt.Y*0.11+91.2, t*2)

		pt.X = wrapFloat(pt.X+(ux*speed+jx*jitterAmp)*dt*8, fl.cols)
		pt.Y = wrapFloat(pt.Y+(uy*speed+jy*jitterAmp)*dt*8, fl.rows)
	}
}

// barbUnitScale maps gradient magnitude into symbolic wind units so typical
// fields span the half-barb to pennant range.
const barbUnitScale = 15.0

// Barbs samples the curl field on a coarse fixed grid. Direction comes from
// the curl sample; the symbolic speed comes from the local field gradient
// magnitude, quantized into pennants, full barbs, and half barbs with any
// finer remainder discarded.
func (fl *Flow) Barbs(field *Field, spacing int, t float64, p Params) []Barb {
	if spacing < 1 {
		spacing = 1
	}
	size := field.Size()
	var out []Barb
	for y := spacing / 2; y < size.H; y += spacing {
		for x := spacing / 2; x < size.W; x += spacing {
			angle, _, _ := fl.SampleDirection(float64(x), float64(y), t, p.FlowScale)

			units := field.GradientMagnitudeAt(x, y) * barbUnitScale
			if units > 75 {
				units = 75
			}
			u := int(units)
			pennants := u / 50
			u %= 50
			full := u / 10
			u %= 10
			half := u / 5

			out = append(out, Barb{
				X:        x,
				Y:        y,
				Angle:    angle,
				Pennants: pennants,
				Full:     full,
				Half:     half,
			})
		}
	}
	return out
}

func wrapFloat(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	v = math.Mod(v, max)
	if v < 0 {
		v += max
	}
	return v
}
