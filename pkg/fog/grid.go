package fog

// Grid stores reveal values in [0,1] in row-major order.
type Grid struct {
	W, H int
	data []float32
}

func newGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]float32, w*h)}
}

// Cells exposes the backing slice. Callers outside the engine must treat it
// as read-only.
func (g *Grid) Cells() []float32 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns the value at (x, y), or 0 outside the grid.
func (g *Grid) At(x, y int) float32 {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.data[g.Index(x, y)]
}

// Clamp limits the coordinates to the valid index range.
func (g *Grid) Clamp(x, y int) (int, int) {
	return clampInt(x, 0, g.W-1), clampInt(y, 0, g.H-1)
}

func (g *Grid) fill(v float32) {
	for i := range g.data {
		g.data[i] = v
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
