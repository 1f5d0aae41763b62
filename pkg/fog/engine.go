// Package fog maintains a persistent fog-of-war reveal mask over a rectangular
// map surface placed anywhere in world space.
//
// The mask only ever brightens: Reveal raises cells toward 1 inside a soft
// edged circle and Reset is the only way back to 0. Rendering is left to the
// caller, which polls Dirty/DirtyRect and uploads the changed region.
package fog

import (
	"image"
	"io"
	"math"

	"github.com/sirupsen/logrus"
)

// Engine owns the reveal grid for a single map surface. It is not safe for
// concurrent mutation; see Shared.
type Engine struct {
	surface     Surface
	grid        *Grid
	worldToGrid float64

	visionRadius float64
	fadeWidth    float64

	dirty     bool
	dirtyRect image.Rectangle

	last    stroke
	hasLast bool

	log logrus.FieldLogger
}

// stroke is a reveal request after conversion to grid space.
type stroke struct {
	cx, cy       int
	inner, outer float64
}

// Option customises an Engine at construction time.
type Option func(*Engine)

// WithLogger routes engine diagnostics to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// New builds an engine for surface. resolution is the grid size along the
// surface's longer pixel axis; the other axis keeps the texture aspect ratio.
// visionRadius and fadeWidth are the world-unit defaults used by
// RevealDefault.
func New(surface Surface, resolution int, visionRadius, fadeWidth float64, opts ...Option) (*Engine, error) {
	if err := surface.validate(); err != nil {
		return nil, err
	}
	if resolution <= 0 {
		return nil, configErr("resolution", "must be positive")
	}
	if !finite(visionRadius) || visionRadius < 0 {
		return nil, configErr("vision_radius", "must be a non-negative number")
	}
	if !finite(fadeWidth) || fadeWidth < 0 {
		return nil, configErr("fade_width", "must be a non-negative number")
	}

	w, h := gridDimensions(surface.PixelWidth, surface.PixelHeight, resolution)
	size := surface.WorldSize()

	e := &Engine{
		surface:      surface,
		grid:         newGrid(w, h),
		worldToGrid:  math.Min(float64(w)/size.X, float64(h)/size.Y),
		visionRadius: visionRadius,
		fadeWidth:    fadeWidth,
		log:          discardLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.log.WithFields(logrus.Fields{
		"grid_w":        w,
		"grid_h":        h,
		"world_w":       size.X,
		"world_h":       size.Y,
		"world_to_grid": e.worldToGrid,
	}).Debug("fog mask initialized")
	return e, nil
}

func gridDimensions(pixelW, pixelH, resolution int) (int, int) {
	if pixelW >= pixelH {
		h := int(math.Round(float64(resolution) * float64(pixelH) / float64(pixelW)))
		return resolution, max(1, h)
	}
	w := int(math.Round(float64(resolution) * float64(pixelW) / float64(pixelH)))
	return max(1, w), resolution
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Grid returns the reveal grid. Mutate it only through the engine.
func (e *Engine) Grid() *Grid { return e.grid }

// Surface returns the descriptor the engine was built with.
func (e *Engine) Surface() Surface { return e.surface }

// WorldToGridRatio is the number of grid cells per world unit, shared by
// both axes so reveal circles stay round.
func (e *Engine) WorldToGridRatio() float64 { return e.worldToGrid }

// VisionRadius returns the default inner radius in world units.
func (e *Engine) VisionRadius() float64 { return e.visionRadius }

// FadeWidth returns the default fade width in world units.
func (e *Engine) FadeWidth() float64 { return e.fadeWidth }

// SetVisionRadius changes the default inner radius. Negative values clamp to 0.
func (e *Engine) SetVisionRadius(r float64) {
	if !finite(r) {
		return
	}
	e.visionRadius = math.Max(0, r)
}

// SetFadeWidth changes the default fade width. Negative values clamp to 0.
func (e *Engine) SetFadeWidth(w float64) {
	if !finite(w) {
		return
	}
	e.fadeWidth = math.Max(0, w)
}

// WorldToGrid returns the cell nearest to p. Points outside the surface clamp
// to the closest edge cell. Row indices grow along the surface's local +Y.
func (e *Engine) WorldToGrid(p Vec2) (int, int) {
	local := e.surface.ToLocal(p)
	nx := local.X/e.surface.Width + 0.5
	ny := local.Y/e.surface.Height + 0.5
	x := roundToInt(nx * float64(e.grid.W))
	y := roundToInt(ny * float64(e.grid.H))
	return e.grid.Clamp(x, y)
}

// GridToWorld returns the world position that maps exactly onto cell (x, y).
func (e *Engine) GridToWorld(x, y int) Vec2 {
	local := Vec2{
		X: (float64(x)/float64(e.grid.W) - 0.5) * e.surface.Width,
		Y: (float64(y)/float64(e.grid.H) - 0.5) * e.surface.Height,
	}
	return e.surface.ToWorld(local)
}

func roundToInt(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	// Keep far-away points from overflowing int before the clamp.
	v = math.Max(math.Min(v, math.MaxInt32), math.MinInt32)
	return int(math.Round(v))
}

// RevealDefault reveals around p using the configured radii.
func (e *Engine) RevealDefault(p Vec2) bool {
	return e.Reveal(p, e.visionRadius, e.fadeWidth)
}

// Reveal raises cells around p toward fully revealed. Cells within
// innerRadius become 1; cells in the following fadeWidth band move toward 1
// by a factor that falls linearly to 0 at innerRadius+fadeWidth. No cell ever
// decreases. Repeating an identical request with nothing in between is a
// no-op. It reports whether any cell changed.
func (e *Engine) Reveal(p Vec2, innerRadius, fadeWidth float64) bool {
	cx, cy := e.WorldToGrid(p)
	inner := nonNegative(innerRadius) * e.worldToGrid
	fade := nonNegative(fadeWidth) * e.worldToGrid
	s := stroke{cx: cx, cy: cy, inner: inner, outer: inner + fade}
	if e.hasLast && e.last == s {
		return false
	}

	// Reach past W+H cells covers the whole grid and must not overflow int.
	reach := math.Min(s.outer, float64(e.grid.W+e.grid.H))
	x0 := max(0, int(math.Floor(float64(cx)-reach)))
	x1 := min(e.grid.W-1, int(math.Ceil(float64(cx)+reach)))
	y0 := max(0, int(math.Floor(float64(cy)-reach)))
	y1 := min(e.grid.H-1, int(math.Ceil(float64(cy)+reach)))
	if x0 > x1 || y0 > y1 {
		e.log.WithFields(logrus.Fields{"x": cx, "y": cy}).Debug("reveal box empty after clamp")
		return false
	}

	changed := false
	cells := e.grid.data
	for y := y0; y <= y1; y++ {
		dy := float64(y - cy)
		row := y * e.grid.W
		for x := x0; x <= x1; x++ {
			dx := float64(x - cx)
			d := math.Sqrt(dx*dx + dy*dy)
			if d > s.outer {
				continue
			}
			cur := cells[row+x]
			var target float32
			if d <= inner {
				target = 1
			} else {
				t := 1 - (d-inner)/fade
				target = float32(lerp(float64(cur), 1, t))
			}
			if target > 1 {
				target = 1
			}
			if target > cur {
				cells[row+x] = target
				changed = true
			}
		}
	}

	e.last, e.hasLast = s, true
	if changed {
		e.markDirty(image.Rect(x0, y0, x1+1, y1+1))
	}
	return changed
}

// Reset fogs every cell again and marks the whole grid dirty.
func (e *Engine) Reset() {
	e.grid.fill(0)
	e.hasLast = false
	e.markDirty(image.Rect(0, 0, e.grid.W, e.grid.H))
	e.log.Debug("fog mask reset")
}

// Sample returns the reveal value of the cell nearest p.
func (e *Engine) Sample(p Vec2) float64 {
	x, y := e.WorldToGrid(p)
	return float64(e.grid.data[e.grid.Index(x, y)])
}

// Dirty reports whether the grid changed since the last ClearDirty.
func (e *Engine) Dirty() bool { return e.dirty }

// DirtyRect returns the grid-space bounds of all changes since the last
// ClearDirty. It is empty when the grid is clean.
func (e *Engine) DirtyRect() image.Rectangle { return e.dirtyRect }

// ClearDirty acknowledges that the renderer has consumed the changes.
func (e *Engine) ClearDirty() {
	e.dirty = false
	e.dirtyRect = image.Rectangle{}
}

func (e *Engine) markDirty(r image.Rectangle) {
	if e.dirty {
		e.dirtyRect = e.dirtyRect.Union(r)
	} else {
		e.dirtyRect = r
	}
	e.dirty = true
}

// Quantize converts the values inside r to bytes (0 = fog, 255 = revealed)
// and returns them row-major, reusing dst when it is large enough. r is
// clipped to the grid.
func (e *Engine) Quantize(dst []byte, r image.Rectangle) []byte {
	r = r.Intersect(image.Rect(0, 0, e.grid.W, e.grid.H))
	n := r.Dx() * r.Dy()
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	i := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := y * e.grid.W
		for x := r.Min.X; x < r.Max.X; x++ {
			dst[i] = quantize(e.grid.data[row+x])
			i++
		}
	}
	return dst
}

func quantize(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(math.Round(float64(v) * 255))
}

// Coverage summarises how much of the map has been explored.
type Coverage struct {
	// Revealed is the fraction of cells that are fully revealed.
	Revealed float64
	// Touched is the fraction of cells with any reveal at all.
	Touched float64
	// Mean is the average cell value.
	Mean float64
}

// Coverage scans the whole grid.
func (e *Engine) Coverage() Coverage {
	var full, touched int
	var sum float64
	for _, v := range e.grid.data {
		if v >= 1 {
			full++
		}
		if v > 0 {
			touched++
		}
		sum += float64(v)
	}
	n := float64(len(e.grid.data))
	return Coverage{
		Revealed: float64(full) / n,
		Touched:  float64(touched) / n,
		Mean:     sum / n,
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func nonNegative(v float64) float64 {
	if !finite(v) || v < 0 {
		return 0
	}
	return v
}
