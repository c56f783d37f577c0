package render

import (
	"image/color"
	"math"
)

// Theme names one color preset for the sketches.
type Theme struct {
	Name string

	Background color.RGBA

	// Band gradient endpoints: bands below the baseline blend toward
	// ColdLow, bands above toward WarmHigh.
	ColdLow  color.RGBA
	WarmHigh color.RGBA

	Isoline color.RGBA

	FrontWarm     color.RGBA
	FrontCold     color.RGBA
	FrontOccluded color.RGBA

	Particle color.RGBA
	Barb     color.RGBA

	CellOn  color.RGBA
	CellOff color.RGBA
}

// Themes lists the built-in presets in cycle order.
var Themes = []Theme{
	{
		Name:          "synoptic",
		Background:    color.RGBA{R: 12, G: 16, B: 24, A: 255},
		ColdLow:       color.RGBA{R: 40, G: 80, B: 170, A: 255},
		WarmHigh:      color.RGBA{R: 210, G: 90, B: 50, A: 255},
		Isoline:       color.RGBA{R: 220, G: 225, B: 235, A: 200},
		FrontWarm:     color.RGBA{R: 230, G: 70, B: 60, A: 255},
		FrontCold:     color.RGBA{R: 70, G: 130, B: 240, A: 255},
		FrontOccluded: color.RGBA{R: 170, G: 90, B: 200, A: 255},
		Particle:      color.RGBA{R: 235, G: 240, B: 250, A: 160},
		Barb:          color.RGBA{R: 200, G: 210, B: 225, A: 220},
		CellOn:        color.RGBA{R: 235, G: 240, B: 250, A: 255},
		CellOff:       color.RGBA{R: 12, G: 16, B: 24, A: 255},
	},
	{
		Name:          "thermal",
		Background:    color.RGBA{R: 8, G: 8, B: 10, A: 255},
		ColdLow:       color.RGBA{R: 20, G: 20, B: 90, A: 255},
		WarmHigh:      color.RGBA{R: 255, G: 180, B: 40, A: 255},
		Isoline:       color.RGBA{R: 255, G: 235, B: 200, A: 190},
		FrontWarm:     color.RGBA{R: 255, G: 120, B: 40, A: 255},
		FrontCold:     color.RGBA{R: 90, G: 160, B: 255, A: 255},
		FrontOccluded: color.RGBA{R: 200, G: 120, B: 220, A: 255},
		Particle:      color.RGBA{R: 255, G: 220, B: 170, A: 150},
		Barb:          color.RGBA{R: 235, G: 200, B: 150, A: 220},
		CellOn:        color.RGBA{R: 255, G: 190, B: 60, A: 255},
		CellOff:       color.RGBA{R: 8, G: 8, B: 10, A: 255},
	},
	{
		Name:          "mono",
		Background:    color.RGBA{R: 0, G: 0, B: 0, A: 255},
		ColdLow:       color.RGBA{R: 40, G: 40, B: 40, A: 255},
		WarmHigh:      color.RGBA{R: 230, G: 230, B: 230, A: 255},
		Isoline:       color.RGBA{R: 255, G: 255, B: 255, A: 170},
		FrontWarm:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		FrontCold:     color.RGBA{R: 140, G: 140, B: 140, A: 255},
		FrontOccluded: color.RGBA{R: 200, G: 200, B: 200, A: 255},
		Particle:      color.RGBA{R: 255, G: 255, B: 255, A: 140},
		Barb:          color.RGBA{R: 220, G: 220, B: 220, A: 200},
		CellOn:        color.RGBA{R: 255, G: 255, B: 255, A: 255},
		CellOff:       color.RGBA{R: 0, G: 0, B: 0, A: 255},
	},
}

// ThemeByName returns the named preset, falling back to the first one.
func ThemeByName(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

// BandColor blends the theme gradient for a band index in [-count, count-1].
// Index -count maps to ColdLow and count-1 to WarmHigh.
func (t Theme) BandColor(index, count int) color.RGBA {
	if count <= 0 {
		return t.ColdLow
	}
	span := float64(2*count - 1)
	pos := float64(index+count) / span
	return lerpRGBA(t.ColdLow, t.WarmHigh, clamp01(pos))
}

// FrontColor returns the marker color for a front category code
// (0=warm, 1=cold, 2=occluded, matching weather.FrontKind).
func (t Theme) FrontColor(kind int) color.RGBA {
	switch kind {
	case 1:
		return t.FrontCold
	case 2:
		return t.FrontOccluded
	default:
		return t.FrontWarm
	}
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
