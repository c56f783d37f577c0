package render

import "image/color"

// FillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func FillBinaryRGBA(buf []byte, cells []uint8, on, off color.RGBA) {
	for i, c := range cells {
		base := i * 4
		col := off
		if c != 0 {
			col = on
		}
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// FillFieldRGBA paints normalized field values through the theme's band
// gradient. Values are expected in roughly [-limit, limit]; anything
// outside clamps to the gradient ends.
func FillFieldRGBA(buf []byte, values []float64, limit float64, theme Theme) {
	if limit <= 0 {
		limit = 1
	}
	for i, v := range values {
		pos := clamp01((v + limit) / (2 * limit))
		col := lerpRGBA(theme.ColdLow, theme.WarmHigh, pos)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
