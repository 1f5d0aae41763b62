package fog

import "math"

// Vec2 is a point or offset in world space.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// Surface describes the world-anchored rectangle the mask overlays. It is
// read once when the engine is built and assumed static afterwards.
type Surface struct {
	// Center is the world position of the rectangle's centre.
	Center Vec2
	// Rotation is the counter-clockwise world rotation in radians.
	Rotation float64
	// Scale is the per-axis world scale applied to the intrinsic size.
	Scale Vec2
	// Width and Height are the intrinsic size in world units, before Scale.
	Width  float64
	Height float64
	// PixelWidth and PixelHeight are the dimensions of the underlying map
	// texture. Only their ratio matters to the mask.
	PixelWidth  int
	PixelHeight int
}

// SpriteSurface builds a Surface from a sprite's pixel rectangle and its
// pixels-per-unit import setting.
func SpriteSurface(center Vec2, rotation float64, scale Vec2, pixelW, pixelH int, pixelsPerUnit float64) Surface {
	s := Surface{
		Center:      center,
		Rotation:    rotation,
		Scale:       scale,
		PixelWidth:  pixelW,
		PixelHeight: pixelH,
	}
	if pixelsPerUnit > 0 {
		s.Width = float64(pixelW) / pixelsPerUnit
		s.Height = float64(pixelH) / pixelsPerUnit
	}
	return s
}

// WorldSize returns the rectangle's extent in world units.
func (s Surface) WorldSize() Vec2 {
	return Vec2{X: s.Width * math.Abs(s.Scale.X), Y: s.Height * math.Abs(s.Scale.Y)}
}

// ToLocal maps a world point into the surface's un-rotated, un-scaled frame,
// with the origin at the centre. The rectangle spans
// [-Width/2, Width/2] x [-Height/2, Height/2] in this frame.
func (s Surface) ToLocal(p Vec2) Vec2 {
	d := p.Sub(s.Center)
	sin, cos := math.Sincos(s.Rotation)
	rx := d.X*cos + d.Y*sin
	ry := -d.X*sin + d.Y*cos
	return Vec2{X: rx / s.Scale.X, Y: ry / s.Scale.Y}
}

// ToWorld is the inverse of ToLocal.
func (s Surface) ToWorld(local Vec2) Vec2 {
	sx := local.X * s.Scale.X
	sy := local.Y * s.Scale.Y
	sin, cos := math.Sincos(s.Rotation)
	return Vec2{
		X: s.Center.X + sx*cos - sy*sin,
		Y: s.Center.Y + sx*sin + sy*cos,
	}
}

func (s Surface) validate() error {
	switch {
	case !finite(s.Center.X) || !finite(s.Center.Y) || !finite(s.Rotation):
		return configErr("surface", "position and rotation must be finite")
	case !finite(s.Width) || s.Width <= 0:
		return configErr("surface.width", "must be positive")
	case !finite(s.Height) || s.Height <= 0:
		return configErr("surface.height", "must be positive")
	case s.PixelWidth <= 0 || s.PixelHeight <= 0:
		return configErr("surface.pixels", "pixel dimensions must be positive")
	case !finite(s.Scale.X) || s.Scale.X == 0:
		return configErr("surface.scale.x", "must be finite and non-zero")
	case !finite(s.Scale.Y) || s.Scale.Y == 0:
		return configErr("surface.scale.y", "must be finite and non-zero")
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
