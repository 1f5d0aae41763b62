package walk

import (
	"math"
	"slices"
	"testing"

	"fog-explore/pkg/fog"
)

func testBounds() Bounds {
	return Bounds{Min: fog.Vec2{X: -5, Y: -5}, Max: fog.Vec2{X: 5, Y: 5}}
}

func inside(b Bounds, p fog.Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

func TestRegistry(t *testing.T) {
	names := Names()
	for _, want := range []string{"orbit", "route", "wander"} {
		if !slices.Contains(names, want) {
			t.Fatalf("walker %q not registered (have %v)", want, names)
		}
	}
	f, ok := Lookup("route")
	if !ok {
		t.Fatal("route factory missing")
	}
	w := f(testBounds(), map[string]string{"speed": "3"})
	if w.Name() != "route" {
		t.Fatalf("factory built %q", w.Name())
	}
	if r := w.(*Route); r.Speed() != 3 {
		t.Fatalf("speed option ignored: %f", r.Speed())
	}
	if _, ok := Lookup("teleport"); ok {
		t.Fatal("unknown walker should not resolve")
	}
}

func TestRouteFollowsWaypoints(t *testing.T) {
	r := NewRoute([]fog.Vec2{{}, {X: 4}, {X: 4, Y: 3}}, 1)
	r.Step(2)
	if r.Position() != (fog.Vec2{X: 2}) {
		t.Fatalf("after 2s at %v, want (2,0)", r.Position())
	}
	// Crossing a waypoint carries the leftover distance to the next leg.
	r.Step(3)
	if r.Position().Dist(fog.Vec2{X: 4, Y: 1}) > 1e-9 {
		t.Fatalf("after 5s at %v, want (4,1)", r.Position())
	}
	// Closing leg from (4,3) back to the origin is 5 long.
	r.Step(2 + 5 + 1)
	if r.Position().Dist(fog.Vec2{X: 1}) > 1e-9 {
		t.Fatalf("after wrapping at %v, want (1,0)", r.Position())
	}
	r.Reset(0)
	if r.Position() != (fog.Vec2{}) {
		t.Fatalf("reset position %v", r.Position())
	}
}

func TestRouteSkipsWholeLaps(t *testing.T) {
	points := []fog.Vec2{{}, {X: 4}, {X: 4, Y: 3}}
	fast := NewRoute(points, 1)
	slow := NewRoute(points, 1)
	// The loop is 4+3+5 = 12 long; 1000 laps plus 5 lands on (4,1).
	fast.Step(12*1000 + 5)
	slow.Step(5)
	if fast.Position().Dist(slow.Position()) > 1e-6 {
		t.Fatalf("after many laps at %v, want %v", fast.Position(), slow.Position())
	}
	fast.Step(12 * 3)
	if fast.Position().Dist(slow.Position()) > 1e-6 {
		t.Fatalf("exact laps moved the walker to %v", fast.Position())
	}
}

func TestRouteDegenerate(t *testing.T) {
	r := NewRoute([]fog.Vec2{{X: 1, Y: 1}, {X: 1, Y: 1}}, 5)
	r.Step(1)
	if r.Position() != (fog.Vec2{X: 1, Y: 1}) {
		t.Fatalf("coincident route moved to %v", r.Position())
	}
	empty := NewRoute(nil, 1)
	empty.Step(1)
	if empty.Position() != (fog.Vec2{}) {
		t.Fatal("empty route should stay at origin")
	}
}

func TestWanderStaysInBoundsAndIsDeterministic(t *testing.T) {
	b := testBounds()
	a := NewWander(b, 3, 11)
	c := NewWander(b, 3, 11)
	for i := 0; i < 500; i++ {
		a.Step(0.1)
		c.Step(0.1)
		if !inside(b, a.Position()) {
			t.Fatalf("step %d left bounds at %v", i, a.Position())
		}
		if a.Position() != c.Position() {
			t.Fatalf("step %d diverged for equal seeds", i)
		}
	}
	if a.Position() == b.Center() {
		t.Fatal("walker never moved")
	}
	a.Reset(11)
	if a.Position() != b.Center() {
		t.Fatalf("reset position %v, want centre", a.Position())
	}
}

func TestOrbitKeepsRadius(t *testing.T) {
	o := NewOrbit(fog.Vec2{X: 1, Y: 2}, 3, math.Pi)
	o.Step(1)
	p := o.Position()
	if math.Abs(p.Dist(fog.Vec2{X: 1, Y: 2})-3) > 1e-9 {
		t.Fatalf("orbit radius drifted: %v", p)
	}
	// An arc of length pi on radius 3 sweeps pi/3 radians.
	want := fog.Vec2{X: 1 + 3*math.Cos(math.Pi/3), Y: 2 + 3*math.Sin(math.Pi/3)}
	if p.Dist(want) > 1e-9 {
		t.Fatalf("orbit at %v, want %v", p, want)
	}
	o.Reset(0)
	if o.Position().Dist(fog.Vec2{X: 4, Y: 2}) > 1e-12 {
		t.Fatalf("reset orbit at %v", o.Position())
	}
}
