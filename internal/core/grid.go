package core

// FloatGrid stores a 2D grid of float64 cell values in row-major order.
type FloatGrid struct {
	W, H int
	data []float64
}

// NewFloatGrid allocates a grid with the given dimensions.
func NewFloatGrid(w, h int) *FloatGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FloatGrid{W: w, H: h, data: make([]float64, w*h)}
}

// Values exposes the backing slice so callers can read/write values directly.
func (g *FloatGrid) Values() []float64 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *FloatGrid) Index(x, y int) int { return y*g.W + x }

// At returns the value at (x, y) without bounds checking beyond the slice's.
func (g *FloatGrid) At(x, y int) float64 { return g.data[y*g.W+x] }

// Set stores a value at (x, y).
func (g *FloatGrid) Set(x, y int, v float64) { g.data[y*g.W+x] = v }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *FloatGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// VecGrid stores one 2D vector per cell in row-major order.
type VecGrid struct {
	W, H int
	dx   []float64
	dy   []float64
}

// NewVecGrid allocates a vector grid with the given dimensions.
func NewVecGrid(w, h int) *VecGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	n := w * h
	return &VecGrid{W: w, H: h, dx: make([]float64, n), dy: make([]float64, n)}
}

// At returns the vector components at (x, y).
func (g *VecGrid) At(x, y int) (float64, float64) {
	i := y*g.W + x
	return g.dx[i], g.dy[i]
}

// Set stores vector components at (x, y).
func (g *VecGrid) Set(x, y int, dx, dy float64) {
	i := y*g.W + x
	g.dx[i] = dx
	g.dy[i] = dy
}
