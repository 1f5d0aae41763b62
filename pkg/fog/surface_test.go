package fog

import (
	"math"
	"testing"
)

func TestSpriteSurface(t *testing.T) {
	s := SpriteSurface(Vec2{X: 1, Y: 2}, 0, Vec2{X: 2, Y: 0.5}, 1024, 512, 100)
	if s.Width != 10.24 || s.Height != 5.12 {
		t.Fatalf("intrinsic size = %fx%f, want 10.24x5.12", s.Width, s.Height)
	}
	size := s.WorldSize()
	if math.Abs(size.X-20.48) > 1e-9 || math.Abs(size.Y-2.56) > 1e-9 {
		t.Fatalf("world size = %v", size)
	}

	bad := SpriteSurface(Vec2{}, 0, Vec2{X: 1, Y: 1}, 64, 64, 0)
	if bad.validate() == nil {
		t.Fatal("zero pixels-per-unit should produce an invalid surface")
	}
}

func TestSurfaceLocalRoundTrip(t *testing.T) {
	s := Surface{
		Center:   Vec2{X: -4, Y: 9},
		Rotation: 0.7,
		Scale:    Vec2{X: 1.5, Y: -2},
		Width:    8,
		Height:   6,
	}
	for _, local := range []Vec2{{}, {X: 4, Y: 3}, {X: -1.25, Y: 2.5}} {
		back := s.ToLocal(s.ToWorld(local))
		if back.Dist(local) > 1e-9 {
			t.Fatalf("round trip of %v gave %v", local, back)
		}
	}
	if got := s.ToLocal(s.Center); got.Len() > 1e-12 {
		t.Fatalf("center maps to %v, want origin", got)
	}
	if size := s.WorldSize(); size.X != 12 || size.Y != 12 {
		t.Fatalf("mirrored scale should still give a positive size, got %v", size)
	}
}
