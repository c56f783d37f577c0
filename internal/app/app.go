//go:build ebiten

package app

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Vanguardbots/synoptic-audio-visualizer/internal/core"
	"github.com/Vanguardbots/synoptic-audio-visualizer/internal/render"
	"github.com/Vanguardbots/synoptic-audio-visualizer/internal/sims/lifebeat"
	"github.com/Vanguardbots/synoptic-audio-visualizer/internal/sims/weather"
	"github.com/Vanguardbots/synoptic-audio-visualizer/internal/ui"
)

// sceneView draws one sketch's snapshot with the active theme.
type sceneView interface {
	draw(screen *ebiten.Image, theme render.Theme, scale int)
}

type runToggler interface {
	Running() bool
	SetRunning(bool)
}

type singleStepper interface {
	StepOnce()
}

type clearer interface {
	Clear()
}

type reseeder interface {
	Reseed()
}

// Game adapts a sketch to the ebiten.Game interface: it pulls one audio
// frame, advances the sketch, and renders the resulting snapshot each tick.
type Game struct {
	sketch core.Sketch
	view   sceneView
	hud    *ui.HUD
	source *audioSource
	clock  *core.FrameClock

	theme    render.Theme
	themeIdx int

	scale     int
	seed      int64
	paused    bool
	tickOnce  bool
	influence float64

	frame core.AudioFrame
}

// New constructs a Game for the provided sketch and host configuration.
func New(sketch core.Sketch, cfg *Config) (*Game, error) {
	source, err := newAudioSource(cfg.Audio)
	if err != nil {
		return nil, err
	}

	g := &Game{
		sketch:    sketch,
		source:    source,
		clock:     core.NewFrameClock(0),
		scale:     cfg.Scale,
		seed:      cfg.Seed,
		influence: cfg.Influence,
		hud:       ui.NewHUD(sketch),
	}

	switch s := sketch.(type) {
	case *weather.Sketch:
		g.view = newWeatherView(s)
	case *lifebeat.Automaton:
		g.view = newLifeView(s)
	default:
		return nil, fmt.Errorf("no view for sketch %q", sketch.Name())
	}

	for i, t := range render.Themes {
		if t.Name == cfg.Theme {
			g.themeIdx = i
			break
		}
	}
	g.theme = render.Themes[g.themeIdx]

	if setter, ok := sketch.(core.FloatParameterSetter); ok {
		setter.SetFloatParameter("influence", cfg.Influence)
	}
	return g, nil
}

// Reset reinitializes the sketch state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sketch.Reset(seed)
	g.tickOnce = false
}

// Update handles input and advances the sketch by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if rt, ok := g.sketch.(runToggler); ok {
			rt.SetRunning(!rt.Running())
		} else {
			g.paused = !g.paused
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if ss, ok := g.sketch.(singleStepper); ok {
			ss.StepOnce()
		} else {
			g.tickOnce = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if r, ok := g.sketch.(reseeder); ok {
			r.Reseed()
		} else {
			g.Reset(g.seed)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if c, ok := g.sketch.(clearer); ok {
			c.Clear()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.themeIdx = (g.themeIdx + 1) % len(render.Themes)
		g.theme = render.Themes[g.themeIdx]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.adjustInfluence(-0.05)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.adjustInfluence(0.05)
	}

	if g.hud != nil {
		g.hud.Update()
	}

	dt := g.clock.Delta()
	g.frame = g.source.Frame(dt)

	if _, selfGated := g.sketch.(runToggler); selfGated {
		g.sketch.Step(dt, g.frame)
	} else if !g.paused || g.tickOnce {
		g.sketch.Step(dt, g.frame)
		g.tickOnce = false
	}
	return nil
}

func (g *Game) adjustInfluence(delta float64) {
	v := g.influence + delta
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	g.influence = v
	if setter, ok := g.sketch.(core.FloatParameterSetter); ok {
		setter.SetFloatParameter("influence", v)
	}
}

// Draw renders the current sketch snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.theme.Background)
	g.view.draw(screen, g.theme, g.scale)
	if g.hud != nil {
		g.hud.Draw(screen, g.frame)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sketch.Size()
	return s.W * g.scale, s.H * g.scale
}
