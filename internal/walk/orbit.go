package walk

import (
	"math"

	"fog-explore/pkg/fog"
)

// Orbit circles a fixed centre.
type Orbit struct {
	center fog.Vec2
	radius float64
	speed  float64
	angle  float64
}

// NewOrbit returns a walker on a circle of the given radius around center,
// travelling at speed world units per second.
func NewOrbit(center fog.Vec2, radius, speed float64) *Orbit {
	return &Orbit{center: center, radius: radius, speed: speed}
}

// Name identifies the walker.
func (o *Orbit) Name() string { return "orbit" }

// Position returns the current world position.
func (o *Orbit) Position() fog.Vec2 {
	sin, cos := math.Sincos(o.angle)
	return fog.Vec2{X: o.center.X + o.radius*cos, Y: o.center.Y + o.radius*sin}
}

// Speed returns the travel speed.
func (o *Orbit) Speed() float64 { return o.speed }

// SetSpeed changes the travel speed; non-positive values are ignored.
func (o *Orbit) SetSpeed(s float64) {
	if s > 0 {
		o.speed = s
	}
}

// Reset returns the walker to angle zero.
func (o *Orbit) Reset(int64) { o.angle = 0 }

// Step advances the angle so the arc length covered is speed*dt.
func (o *Orbit) Step(dt float64) {
	if dt <= 0 || o.radius <= 0 {
		return
	}
	o.angle = math.Mod(o.angle+o.speed*dt/o.radius, 2*math.Pi)
}

func init() {
	Register("orbit", func(b Bounds, opts map[string]string) Walker {
		size := b.Size()
		r := floatOpt(opts, "radius", 0.3*math.Min(size.X, size.Y))
		return NewOrbit(b.Center(), r, floatOpt(opts, "speed", defaultSpeed))
	})
}
