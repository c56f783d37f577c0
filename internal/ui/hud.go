//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/Vanguardbots/synoptic-audio-visualizer/internal/core"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

const (
	hudX           = 8
	hudControlsTop = 86
	hudLineHeight  = 18
	hudButtonSize  = 14
	hudButtonGap   = 4
	hudPanelWidth  = 200
)

// HUD draws the audio level bars, the sketch's adjustable parameter rows
// with [-]/[+] buttons, and a readout of the remaining tunables in the
// top-left corner. H toggles it.
type HUD struct {
	sketch  core.Sketch
	visible bool
	pixel   *ebiten.Image

	panel    *controlPanel
	snapshot core.ParameterSnapshot
}

// NewHUD constructs a HUD for the provided sketch.
func NewHUD(sketch core.Sketch) *HUD {
	p := ebiten.NewImage(1, 1)
	p.Fill(color.White)
	h := &HUD{sketch: sketch, visible: true, pixel: p, panel: newControlPanel(sketch)}
	h.layoutControls()
	return h
}

func (h *HUD) layoutControls() {
	for i := range h.panel.controls {
		top := hudControlsTop + i*hudLineHeight
		buttonY := top + (hudLineHeight-hudButtonSize)/2
		plus := image.Rect(hudX+hudPanelWidth-hudButtonSize, buttonY, hudX+hudPanelWidth, buttonY+hudButtonSize)
		minus := image.Rect(plus.Min.X-hudButtonGap-hudButtonSize, buttonY, plus.Min.X-hudButtonGap, buttonY+hudButtonSize)
		h.panel.controls[i].top = top
		h.panel.controls[i].minusRect = minus
		h.panel.controls[i].plusRect = plus
	}
}

// Update handles the visibility toggle, refreshes the control rows from the
// sketch snapshot, and applies any button clicks through the setters.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	if !h.visible {
		return
	}
	if provider, ok := h.sketch.(parameterProvider); ok {
		h.snapshot = provider.Parameters()
	} else {
		h.snapshot = core.ParameterSnapshot{}
	}
	h.panel.refresh(h.snapshot)
	h.handleInput()
}

func (h *HUD) handleInput() {
	if len(h.panel.controls) == 0 {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	for i := range h.panel.controls {
		state := &h.panel.controls[i]
		if pointInRect(mx, my, state.minusRect) {
			h.panel.adjust(i, -1)
			return
		}
		if pointInRect(mx, my, state.plusRect) {
			h.panel.adjust(i, 1)
			return
		}
	}
}

// Draw renders the HUD when visible.
func (h *HUD) Draw(screen *ebiten.Image, frame core.AudioFrame) {
	if h == nil || !h.visible {
		return
	}

	face := basicfont.Face7x13
	x, y := hudX, 16
	text.Draw(screen, h.sketch.Name(), face, x, y, color.White)
	y += 6

	bars := []struct {
		label string
		value float64
	}{
		{"bass", frame.Bass},
		{"mid", frame.Mid},
		{"treble", frame.Treble},
		{"level", frame.Level},
	}
	for _, b := range bars {
		h.bar(screen, x, y, b.value)
		text.Draw(screen, b.label, face, x+88, y+8, color.RGBA{R: 200, G: 205, B: 215, A: 255})
		y += 12
	}

	y = h.drawControls(screen, face)
	h.drawReadout(screen, face, y)
}

// drawControls paints the adjustable rows and returns the y below them.
func (h *HUD) drawControls(screen *ebiten.Image, face *basicfont.Face) int {
	y := hudControlsTop
	for i := range h.panel.controls {
		state := &h.panel.controls[i]
		labelY := state.top + 12
		text.Draw(screen, state.control.Label, face, hudX, labelY, color.White)

		valueColor := color.RGBA{R: 220, G: 225, B: 235, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 140, G: 145, B: 155, A: 255}
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - hudButtonGap - bounds.Dx()
		text.Draw(screen, state.value, face, valueX, labelY, valueColor)

		h.drawButton(screen, face, state.minusRect, "-", state.hasValue && h.panel.canAdjust(i, -1))
		h.drawButton(screen, face, state.plusRect, "+", state.hasValue && h.panel.canAdjust(i, 1))
		y = state.top + hudLineHeight
	}
	return y + 8
}

// drawReadout lists the tunables that have no control row.
func (h *HUD) drawReadout(screen *ebiten.Image, face *basicfont.Face, y int) {
	adjustable := map[string]bool{}
	for _, state := range h.panel.controls {
		adjustable[state.control.Key] = true
	}
	for _, group := range h.snapshot.Groups {
		shown := 0
		groupY := y
		y += 13
		for _, p := range group.Params {
			if adjustable[p.Key] {
				continue
			}
			line := fmt.Sprintf("  %s: %s", p.Label, p.Value)
			text.Draw(screen, line, face, hudX, y, color.White)
			y += 13
			shown++
		}
		if shown == 0 {
			y = groupY
			continue
		}
		text.Draw(screen, group.Name, face, hudX, groupY, color.RGBA{R: 160, G: 170, B: 185, A: 255})
	}
}

func (h *HUD) drawButton(screen *ebiten.Image, face *basicfont.Face, rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 230}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 200}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(bg.R)/255.0, float64(bg.G)/255.0, float64(bg.B)/255.0, float64(bg.A)/255.0)
	screen.DrawImage(h.pixel, op)

	bounds := text.BoundString(face, label)
	tx := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	ty := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, label, face, tx, ty, fg)
}

func (h *HUD) bar(screen *ebiten.Image, x, y int, value float64) {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(80*value, 8)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorM.Scale(0.4, 0.8, 1, 0.8)
	screen.DrawImage(h.pixel, op)
}
