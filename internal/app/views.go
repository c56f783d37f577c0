//go:build ebiten

package app

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Vanguardbots/synoptic-audio-visualizer/internal/render"
	"github.com/Vanguardbots/synoptic-audio-visualizer/internal/sims/lifebeat"
	"github.com/Vanguardbots/synoptic-audio-visualizer/internal/sims/weather"
)

// pixelPainter draws lines and dots by scaling a 1x1 white image, the same
// trick the grid overlays use instead of a vector path library.
type pixelPainter struct {
	pixel *ebiten.Image
}

func newPixelPainter() *pixelPainter {
	p := ebiten.NewImage(1, 1)
	p.Fill(color.White)
	return &pixelPainter{pixel: p}
}

func (p *pixelPainter) line(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 || thickness <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(p.pixel, op)
}

func (p *pixelPainter) dot(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(p.pixel, op)
}

// weatherView renders the synoptic sketch: isoband quads as a pixel layer,
// then isolines, front markers, wind particles, and barbs on top.
type weatherView struct {
	sketch  *weather.Sketch
	painter *pixelPainter

	img *ebiten.Image
	buf []byte
}

func newWeatherView(s *weather.Sketch) *weatherView {
	return &weatherView{sketch: s, painter: newPixelPainter()}
}

func (v *weatherView) draw(screen *ebiten.Image, theme render.Theme, scale int) {
	size := v.sketch.Size()
	total := size.W * size.H
	if total == 0 {
		return
	}
	if v.img == nil || v.img.Bounds().Dx() != size.W || v.img.Bounds().Dy() != size.H {
		v.img = ebiten.NewImage(size.W, size.H)
		v.buf = make([]byte, 4*total)
	}

	params := v.sketch.Config().Params
	isoCount := params.IsoCount
	// Continuous field wash first, then the quantized bands over it so
	// cells outside the outermost band still read as part of the field.
	limit := (float64(isoCount) + 0.5) * params.IsoStep
	render.FillFieldRGBA(v.buf, v.sketch.Field().Values(), limit, theme)
	for _, band := range v.sketch.Isobands() {
		col := theme.BandColor(band.Index, isoCount)
		base := (band.Y*size.W + band.X) * 4
		v.buf[base+0] = col.R
		v.buf[base+1] = col.G
		v.buf[base+2] = col.B
		v.buf[base+3] = col.A
	}
	v.img.ReplacePixels(v.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(v.img, op)

	fs := float64(scale)
	for _, level := range v.sketch.IsolineLevels() {
		for _, seg := range v.sketch.Isolines(level) {
			v.painter.line(screen, seg.X1*fs, seg.Y1*fs, seg.X2*fs, seg.Y2*fs, 1, theme.Isoline)
		}
	}

	for _, m := range v.sketch.Fronts() {
		cx := (float64(m.X) + 0.5) * fs
		cy := (float64(m.Y) + 0.5) * fs
		col := theme.FrontColor(int(m.Kind))
		half := fs * 1.4
		dx := math.Cos(m.Angle) * half
		dy := math.Sin(m.Angle) * half
		v.painter.line(screen, cx-dx, cy-dy, cx+dx, cy+dy, fs*0.35, col)
		// perpendicular tick marks the cold side of the marker
		tx := math.Cos(m.Angle+math.Pi/2) * half * 0.5
		ty := math.Sin(m.Angle+math.Pi/2) * half * 0.5
		v.painter.line(screen, cx, cy, cx+tx, cy+ty, fs*0.35, col)
	}

	for _, p := range v.sketch.Particles() {
		v.painter.dot(screen, p.X*fs, p.Y*fs, fs*0.5, theme.Particle)
	}

	v.drawBarbs(screen, theme, fs)
}

// drawBarbs renders standard wind-barb glyphs: a shaft in the flow
// direction with pennants, full barbs, and half barbs spaced along it.
func (v *weatherView) drawBarbs(screen *ebiten.Image, theme render.Theme, fs float64) {
	for _, b := range v.sketch.Barbs() {
		cx := (float64(b.X) + 0.5) * fs
		cy := (float64(b.Y) + 0.5) * fs
		shaft := fs * 4
		ux := math.Cos(b.Angle)
		uy := math.Sin(b.Angle)
		tipX := cx + ux*shaft
		tipY := cy + uy*shaft
		v.painter.line(screen, cx, cy, tipX, tipY, 1, theme.Barb)

		// feather angle of the speed ticks relative to the shaft
		fa := b.Angle + math.Pi*0.6
		fx := math.Cos(fa)
		fy := math.Sin(fa)
		offset := 0.0
		step := fs * 0.8
		tick := fs * 1.6

		for i := 0; i < b.Pennants; i++ {
			x := tipX - ux*offset
			y := tipY - uy*offset
			v.painter.line(screen, x, y, x+fx*tick, y+fy*tick, 3, theme.Barb)
			offset += step
		}
		for i := 0; i < b.Full; i++ {
			x := tipX - ux*offset
			y := tipY - uy*offset
			v.painter.line(screen, x, y, x+fx*tick, y+fy*tick, 1, theme.Barb)
			offset += step
		}
		for i := 0; i < b.Half; i++ {
			x := tipX - ux*offset
			y := tipY - uy*offset
			v.painter.line(screen, x, y, x+fx*tick*0.5, y+fy*tick*0.5, 1, theme.Barb)
			offset += step
		}
	}
}

// lifeView blits the automaton grid as scaled pixels.
type lifeView struct {
	sketch *lifebeat.Automaton

	img *ebiten.Image
	buf []byte
}

func newLifeView(a *lifebeat.Automaton) *lifeView {
	return &lifeView{sketch: a}
}

func (v *lifeView) draw(screen *ebiten.Image, theme render.Theme, scale int) {
	size := v.sketch.Size()
	total := size.W * size.H
	if total == 0 {
		return
	}
	if v.img == nil || v.img.Bounds().Dx() != size.W || v.img.Bounds().Dy() != size.H {
		v.img = ebiten.NewImage(size.W, size.H)
		v.buf = make([]byte, 4*total)
	}
	render.FillBinaryRGBA(v.buf, v.sketch.Cells(), theme.CellOn, theme.CellOff)
	v.img.ReplacePixels(v.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(v.img, op)
}
