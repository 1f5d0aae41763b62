package render

import (
	"math"
	"testing"

	"fog-explore/pkg/fog"
)

func near(a, b fog.Vec2) bool {
	return a.Dist(b) < 1e-9
}

func TestSurfaceMatrixMatchesGridToWorld(t *testing.T) {
	s := fog.Surface{
		Center:      fog.Vec2{X: 3, Y: -2},
		Rotation:    0.4,
		Scale:       fog.Vec2{X: 1.5, Y: 0.75},
		Width:       12,
		Height:      8,
		PixelWidth:  120,
		PixelHeight: 80,
	}
	e, err := fog.New(s, 60, 1, 1)
	if err != nil {
		t.Fatalf("fog.New: %v", err)
	}
	g := e.Grid()
	m := SurfaceMatrix(s, g.W, g.H, false)
	for _, cell := range [][2]int{{0, 0}, {59, 39}, {17, 22}} {
		x, y := m.Apply(float64(cell[0])+0.5, float64(cell[1])+0.5)
		if want := e.GridToWorld(cell[0], cell[1]); !near(fog.Vec2{X: x, Y: y}, want) {
			t.Fatalf("cell %v centre at (%f,%f), want %v", cell, x, y, want)
		}
	}
}

func TestSurfaceMatrixTopDown(t *testing.T) {
	s := fog.Surface{Center: fog.Vec2{X: 10}, Scale: fog.Vec2{X: 1, Y: 1}, Width: 4, Height: 2}
	m := SurfaceMatrix(s, 40, 20, true)
	x, y := m.Apply(0, 0)
	if !near(fog.Vec2{X: x, Y: y}, fog.Vec2{X: 8, Y: 1}) {
		t.Fatalf("top-left pixel at (%f,%f), want (8,1)", x, y)
	}
	x, y = m.Apply(40, 20)
	if !near(fog.Vec2{X: x, Y: y}, fog.Vec2{X: 12, Y: -1}) {
		t.Fatalf("bottom-right pixel at (%f,%f), want (12,-1)", x, y)
	}
}

func TestCameraFlipsY(t *testing.T) {
	c := Camera(-5, 5, 10)
	x, y := c.Apply(-5, 5)
	if x != 0 || y != 0 {
		t.Fatalf("top-left maps to (%f,%f)", x, y)
	}
	x, y = c.Apply(5, -5)
	if x != 100 || y != 100 {
		t.Fatalf("bottom-right maps to (%f,%f)", x, y)
	}
}

func TestMatrixRotation(t *testing.T) {
	m := Identity().Rotated(math.Pi / 2).Translated(1, 0)
	x, y := m.Apply(1, 0)
	if !near(fog.Vec2{X: x, Y: y}, fog.Vec2{X: 1, Y: 1}) {
		t.Fatalf("rotate then translate gave (%f,%f)", x, y)
	}
}

func TestSurfaceBounds(t *testing.T) {
	s := fog.Surface{Rotation: math.Pi / 2, Scale: fog.Vec2{X: 1, Y: 1}, Width: 4, Height: 2}
	min, max := SurfaceBounds(s)
	if !near(min, fog.Vec2{X: -1, Y: -2}) || !near(max, fog.Vec2{X: 1, Y: 2}) {
		t.Fatalf("bounds = %v..%v", min, max)
	}
}

func TestNewViewCoversSurface(t *testing.T) {
	s := fog.SpriteSurface(fog.Vec2{X: 4, Y: 4}, 0, fog.Vec2{X: 1, Y: 1}, 320, 160, 32)
	v := NewView(s, 32)
	if v.W != 320 || v.H != 160 {
		t.Fatalf("view = %dx%d, want 320x160", v.W, v.H)
	}
	// The surface's top-left corner (local -X,+Y) is the screen origin.
	x, y := v.ToScreen(fog.Vec2{X: -1, Y: 6.5})
	if math.Abs(x) > 1e-9 || math.Abs(y) > 1e-9 {
		t.Fatalf("top-left corner at (%f,%f)", x, y)
	}
	x, y = v.ToScreen(fog.Vec2{X: 9, Y: 1.5})
	if math.Abs(x-320) > 1e-9 || math.Abs(y-160) > 1e-9 {
		t.Fatalf("bottom-right corner at (%f,%f)", x, y)
	}
}
