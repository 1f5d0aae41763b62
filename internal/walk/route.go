package walk

import (
	"math"

	"fog-explore/pkg/fog"
)

// Route loops over a fixed list of waypoints at constant speed.
type Route struct {
	points []fog.Vec2
	lap    float64
	speed  float64
	pos    fog.Vec2
	next   int
}

// NewRoute returns a walker starting at points[0]. Speed is in world units
// per second.
func NewRoute(points []fog.Vec2, speed float64) *Route {
	r := &Route{points: append([]fog.Vec2(nil), points...), speed: speed}
	for i, p := range r.points {
		r.lap += p.Dist(r.points[(i+1)%len(r.points)])
	}
	r.Reset(0)
	return r
}

// Name identifies the walker.
func (r *Route) Name() string { return "route" }

// Position returns the current world position.
func (r *Route) Position() fog.Vec2 { return r.pos }

// Speed returns the travel speed.
func (r *Route) Speed() float64 { return r.speed }

// SetSpeed changes the travel speed; non-positive values are ignored.
func (r *Route) SetSpeed(s float64) {
	if s > 0 {
		r.speed = s
	}
}

// Reset moves the walker back to the first waypoint.
func (r *Route) Reset(int64) {
	r.next = 0
	if len(r.points) == 0 {
		r.pos = fog.Vec2{}
		return
	}
	r.pos = r.points[0]
	r.next = 1 % len(r.points)
}

// Step advances along the route by speed*dt, wrapping past the last point.
// Whole laps are skipped since they end where they started.
func (r *Route) Step(dt float64) {
	if len(r.points) < 2 || dt <= 0 || !(r.lap > 0) {
		return
	}
	left := math.Mod(r.speed*dt, r.lap)
	// Less than a lap visits each waypoint at most once more.
	for i := 0; left > 0 && i <= len(r.points); i++ {
		r.pos, left = moveToward(r.pos, r.points[r.next], left)
		if r.pos == r.points[r.next] {
			r.next = (r.next + 1) % len(r.points)
		}
	}
}

func init() {
	Register("route", func(b Bounds, opts map[string]string) Walker {
		in := b.Inset(0.2)
		c := b.Center()
		points := []fog.Vec2{
			in.Min,
			{X: in.Max.X, Y: in.Min.Y},
			c,
			in.Max,
			{X: in.Min.X, Y: in.Max.Y},
		}
		return NewRoute(points, floatOpt(opts, "speed", defaultSpeed))
	})
}
