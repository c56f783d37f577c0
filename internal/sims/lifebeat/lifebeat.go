// Package lifebeat implements a toroidal Conway-style automaton whose
// transition rules are perturbed by audio band energies.
package lifebeat

import (
	"github.com/Vanguardbots/synoptic-audio-visualizer/internal/core"
	pkgcore "github.com/Vanguardbots/synoptic-audio-visualizer/pkg/core"
)

// Automaton is the audio-biased life grid. The next generation is always
// computed into a secondary buffer and swapped in whole, so callers never
// observe a partially stepped grid.
type Automaton struct {
	cfg Config

	w, h int
	cur  []uint8
	nxt  []uint8

	rng *pkgcore.RNG

	running   bool
	stepCount int
	rmsSmooth float64
	lastFrame core.AudioFrame
}

// New returns an automaton with the provided dimensions using defaults.
func New(w, h int) *Automaton {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns an automaton configured from the provided options.
func NewWithConfig(cfg Config) *Automaton {
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	total := cfg.Width * cfg.Height
	return &Automaton{
		cfg:     cfg,
		w:       cfg.Width,
		h:       cfg.Height,
		cur:     make([]uint8, total),
		nxt:     make([]uint8, total),
		rng:     pkgcore.NewRNG(cfg.Seed),
		running: true,
	}
}

// Name returns the sketch identifier.
func (a *Automaton) Name() string { return "lifebeat" }

// Size returns the grid dimensions.
func (a *Automaton) Size() core.Size { return core.Size{W: a.w, H: a.h} }

// Cells exposes the current generation.
func (a *Automaton) Cells() []uint8 { return a.cur }

// Config exposes the current configuration.
func (a *Automaton) Config() Config { return a.cfg }

// Running reports whether generations advance automatically.
func (a *Automaton) Running() bool { return a.running }

// SetRunning starts or stops automatic stepping.
func (a *Automaton) SetRunning(run bool) { a.running = run }

// Reset reseeds the grid at the configured density.
func (a *Automaton) Reset(seed int64) {
	if seed == 0 {
		seed = a.cfg.Seed
	}
	a.rng = pkgcore.NewRNG(seed)
	pkgcore.FillDensity(a.rng.Source(), a.cur, a.cfg.Params.SeedDensity)
	for i := range a.nxt {
		a.nxt[i] = 0
	}
	a.stepCount = 0
	a.running = true
}

// Clear kills every cell.
func (a *Automaton) Clear() {
	for i := range a.cur {
		a.cur[i] = 0
	}
}

// Reseed re-randomizes the grid at the fixed seeding density without
// touching the random stream's seed.
func (a *Automaton) Reseed() {
	pkgcore.FillDensity(a.rng.Source(), a.cur, a.cfg.Params.SeedDensity)
}

// Step advances one generation per frame while running. The audio frame is
// remembered so a manual StepOnce while stopped uses the latest features.
// The anti-stagnation sprinkle only counts running steps; manual stepping
// never triggers it.
func (a *Automaton) Step(dt float64, frame core.AudioFrame) {
	a.lastFrame = frame
	a.rmsSmooth = a.rmsSmooth*0.95 + frame.Level*0.05
	if !a.running {
		return
	}
	a.generation(frame)

	a.stepCount++
	if p := a.cfg.Params; p.SprinkleInterval > 0 && a.stepCount%p.SprinkleInterval == 0 {
		a.sprinkle()
	}
}

// StepOnce advances a single generation while stopped.
func (a *Automaton) StepOnce() {
	if a.running {
		return
	}
	a.generation(a.lastFrame)
}

// generation computes the full next grid, then swaps buffers.
func (a *Automaton) generation(frame core.AudioFrame) {
	p := a.cfg.Params
	influence := p.AudioInfluence
	bassBias := frame.Bass * influence
	midBias := frame.Mid * influence
	trebleSpark := frame.Treble * influence

	w, h := a.w, a.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					neighbors += int(a.cur[ny*w+nx])
				}
			}

			idx := y*w + x
			alive := a.cur[idx] == 1
			next := false
			if alive {
				switch {
				case p.Survive[neighbors]:
					next = true
				case neighbors == 4 && a.rng.Chance(p.ExtendedSurviveChance*midBias):
					next = true
				}
			} else {
				switch {
				case p.Birth[neighbors]:
					next = true
				case neighbors == 2 && a.rng.Chance(p.ExtendedBirthChance*bassBias):
					next = true
				case a.rng.Chance(p.SparkChance * trebleSpark):
					next = true
				}
			}

			a.nxt[idx] = 0
			if next {
				a.nxt[idx] = 1
			}
		}
	}
	a.cur, a.nxt = a.nxt, a.cur
}

// sprinkle injects a few live cells during quiet passages so silence does
// not leave the grid permanently empty.
func (a *Automaton) sprinkle() {
	quiet := 1 - a.rmsSmooth
	if quiet < 0 {
		quiet = 0
	}
	if quiet > 1 {
		quiet = 1
	}
	if !a.rng.Chance(a.cfg.Params.SprinkleChance * quiet) {
		return
	}
	density := a.cfg.Params.SprinkleDensity * quiet
	for i := range a.cur {
		if a.cur[i] == 0 && a.rng.Chance(density) {
			a.cur[i] = 1
		}
	}
}

func init() {
	core.Register("lifebeat", func(cfg map[string]string) core.Sketch {
		return NewWithConfig(FromMap(cfg))
	})
}
