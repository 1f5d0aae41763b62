package render

import (
	"math"

	"fog-explore/pkg/fog"
)

// Matrix is a 2D affine transform: x' = A*x + B*y + TX, y' = C*x + D*y + TY.
type Matrix struct {
	A, B, C, D float64
	TX, TY     float64
}

// Identity returns the identity transform.
func Identity() Matrix { return Matrix{A: 1, D: 1} }

// Then returns the transform that applies m first and n second.
func (m Matrix) Then(n Matrix) Matrix {
	return Matrix{
		A:  n.A*m.A + n.B*m.C,
		B:  n.A*m.B + n.B*m.D,
		C:  n.C*m.A + n.D*m.C,
		D:  n.C*m.B + n.D*m.D,
		TX: n.A*m.TX + n.B*m.TY + n.TX,
		TY: n.C*m.TX + n.D*m.TY + n.TY,
	}
}

// Scaled appends a scale.
func (m Matrix) Scaled(sx, sy float64) Matrix {
	return m.Then(Matrix{A: sx, D: sy})
}

// Translated appends a translation.
func (m Matrix) Translated(tx, ty float64) Matrix {
	return m.Then(Matrix{A: 1, D: 1, TX: tx, TY: ty})
}

// Rotated appends a counter-clockwise rotation by theta radians.
func (m Matrix) Rotated(theta float64) Matrix {
	sin, cos := math.Sincos(theta)
	return m.Then(Matrix{A: cos, B: -sin, C: sin, D: cos})
}

// Apply transforms a point.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.TX, m.C*x + m.D*y + m.TY
}

// SurfaceMatrix maps pixel coordinates of a srcW x srcH image covering s
// into world space. With topDown the image's row 0 is the surface's local +Y
// edge (a regular texture); otherwise row 0 is the -Y edge, which is how the
// fog grid is laid out, and pixel centres land on fog.Engine.GridToWorld.
func SurfaceMatrix(s fog.Surface, srcW, srcH int, topDown bool) Matrix {
	m := Identity()
	if topDown {
		m = m.Scaled(s.Width/float64(srcW), -s.Height/float64(srcH)).
			Translated(-s.Width/2, s.Height/2)
	} else {
		m = m.Translated(-0.5, -0.5).
			Scaled(s.Width/float64(srcW), s.Height/float64(srcH)).
			Translated(-s.Width/2, -s.Height/2)
	}
	return m.Scaled(s.Scale.X, s.Scale.Y).
		Rotated(s.Rotation).
		Translated(s.Center.X, s.Center.Y)
}

// Camera maps world space onto the screen: the world rectangle starting at
// (minX, maxY) is drawn from the top-left corner with +Y pointing up and
// pxPerUnit screen pixels per world unit.
func Camera(minX, maxY, pxPerUnit float64) Matrix {
	return Identity().Translated(-minX, -maxY).Scaled(pxPerUnit, -pxPerUnit)
}

// SurfaceBounds returns the world-space axis-aligned box around s.
func SurfaceBounds(s fog.Surface) (min, max fog.Vec2) {
	hw, hh := s.Width/2, s.Height/2
	min = fog.Vec2{X: math.Inf(1), Y: math.Inf(1)}
	max = fog.Vec2{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, c := range []fog.Vec2{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh}} {
		p := s.ToWorld(c)
		min.X, min.Y = math.Min(min.X, p.X), math.Min(min.Y, p.Y)
		max.X, max.Y = math.Max(max.X, p.X), math.Max(max.Y, p.Y)
	}
	return min, max
}

// View frames a surface on screen: the camera matrix and the pixel size of
// the area it covers.
type View struct {
	Camera    Matrix
	PxPerUnit float64
	W, H      int
}

// NewView fits the whole of s at pxPerUnit screen pixels per world unit.
func NewView(s fog.Surface, pxPerUnit float64) View {
	if !(pxPerUnit > 0) {
		pxPerUnit = 1
	}
	lo, hi := SurfaceBounds(s)
	return View{
		Camera:    Camera(lo.X, hi.Y, pxPerUnit),
		PxPerUnit: pxPerUnit,
		W:         max(1, int(math.Ceil((hi.X-lo.X)*pxPerUnit))),
		H:         max(1, int(math.Ceil((hi.Y-lo.Y)*pxPerUnit))),
	}
}

// ToScreen maps a world point through the camera.
func (v View) ToScreen(p fog.Vec2) (float64, float64) {
	return v.Camera.Apply(p.X, p.Y)
}
