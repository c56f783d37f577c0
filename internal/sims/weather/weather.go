// Package weather implements the synoptic field sketch: a noise-driven
// pseudo-pressure surface with isolines, isobands, front markers, and a
// curl-noise wind layer, all modulated by the playing track.
package weather

import (
	"github.com/Vanguardbots/synoptic-audio-visualizer/internal/core"
)

// Sketch owns the field and flow state and applies parameter changes at
// frame boundaries so a resize can never interleave with a computation.
type Sketch struct {
	cfg Config

	field *Field
	flow  *Flow

	pendingParticles int
	pendingCols      int
	pendingRows      int
}

// New returns a weather sketch with the provided dimensions using defaults.
func New(cols, rows int) *Sketch {
	cfg := DefaultConfig()
	cfg.Cols = cols
	cfg.Rows = rows
	return NewWithConfig(cfg)
}

// NewWithConfig returns a weather sketch configured from the provided options.
func NewWithConfig(cfg Config) *Sketch {
	if cfg.Cols < 2 {
		cfg.Cols = 2
	}
	if cfg.Rows < 2 {
		cfg.Rows = 2
	}
	s := &Sketch{cfg: cfg, pendingParticles: -1}
	s.rebuild(cfg.Seed)
	return s
}

func (s *Sketch) rebuild(seed int64) {
	s.field = newField(s.cfg.Cols, s.cfg.Rows, seed)
	s.flow = newFlow(s.cfg.Cols, s.cfg.Rows, seed)
	s.flow.Resize(s.cfg.Params.ParticleCount)
}

// Name returns the sketch identifier.
func (s *Sketch) Name() string { return "weather" }

// Size reports the grid dimensions.
func (s *Sketch) Size() core.Size { return s.field.Size() }

// Config exposes the current configuration.
func (s *Sketch) Config() Config { return s.cfg }

// Reset rebuilds the noise generators and particle pool from the seed.
func (s *Sketch) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.rebuild(seed)
}

// Step applies any deferred resizes, then advances the field and the wind
// particles for one frame.
func (s *Sketch) Step(dt float64, frame core.AudioFrame) {
	if s.pendingCols > 0 && s.pendingRows > 0 {
		s.cfg.Cols = s.pendingCols
		s.cfg.Rows = s.pendingRows
		s.field.Resize(s.pendingCols, s.pendingRows)
		s.flow.SetDomain(s.pendingCols, s.pendingRows)
		s.pendingCols, s.pendingRows = 0, 0
	}
	if s.pendingParticles >= 0 {
		s.cfg.Params.ParticleCount = s.pendingParticles
		s.flow.Resize(s.pendingParticles)
		s.pendingParticles = -1
	}

	s.field.Advance(dt, frame, s.cfg.Params)
	s.flow.AdvanceParticles(dt, s.field.Time(), frame, s.cfg.Params)
}

// Field exposes the scalar field for rendering and probing.
func (s *Sketch) Field() *Field { return s.field }

// IsolineLevels returns the band boundary values, one isoline per boundary.
func (s *Sketch) IsolineLevels() []float64 {
	p := s.cfg.Params
	levels := make([]float64, 0, 2*p.IsoCount+1)
	for i := -p.IsoCount; i <= p.IsoCount; i++ {
		levels = append(levels, p.Baseline+float64(i)*p.IsoStep)
	}
	return levels
}

// Isolines extracts the contour at one level.
func (s *Sketch) Isolines(level float64) []Segment {
	return s.field.Isolines(level)
}

// Isobands returns the filled band cells for the configured step and count.
func (s *Sketch) Isobands() []Band {
	p := s.cfg.Params
	return s.field.Isobands(p.IsoStep, p.IsoCount, p.Baseline)
}

// Fronts returns this frame's front markers at the configured stride.
func (s *Sketch) Fronts() []FrontMarker {
	p := s.cfg.Params
	return s.field.Fronts(p.FrontStride, p.FrontThreshold, p.IsoStep, p.Baseline)
}

// Particles exposes the wind particle positions.
func (s *Sketch) Particles() []WindParticle { return s.flow.Particles() }

// Barbs returns the coarse-grid wind barb glyphs for the current frame.
func (s *Sketch) Barbs() []Barb {
	return s.flow.Barbs(s.field, s.cfg.Params.BarbSpacing, s.field.Time(), s.cfg.Params)
}

// ResizeGrid schedules a paired field/gradient reallocation for the next
// frame boundary.
func (s *Sketch) ResizeGrid(cols, rows int) {
	if cols < 2 || rows < 2 {
		return
	}
	s.pendingCols = cols
	s.pendingRows = rows
}

// ResizeParticles schedules a particle pool resize for the next frame
// boundary. Indices below the new count keep their state.
func (s *Sketch) ResizeParticles(count int) {
	if count < 0 {
		return
	}
	s.pendingParticles = count
}

func init() {
	core.Register("weather", func(cfg map[string]string) core.Sketch {
		return NewWithConfig(FromMap(cfg))
	})
}
