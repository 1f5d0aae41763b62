package walk

import (
	"fog-explore/pkg/core"
	"fog-explore/pkg/fog"
)

// Wander heads for random points inside its bounds, picking a new one each
// time it arrives.
type Wander struct {
	bounds Bounds
	speed  float64
	rng    *core.RNG
	pos    fog.Vec2
	target fog.Vec2
}

// NewWander returns a walker starting at the centre of b.
func NewWander(b Bounds, speed float64, seed int64) *Wander {
	w := &Wander{bounds: b, speed: speed}
	w.Reset(seed)
	return w
}

// Name identifies the walker.
func (w *Wander) Name() string { return "wander" }

// Position returns the current world position.
func (w *Wander) Position() fog.Vec2 { return w.pos }

// Target returns the waypoint currently being approached.
func (w *Wander) Target() fog.Vec2 { return w.target }

// Speed returns the travel speed.
func (w *Wander) Speed() float64 { return w.speed }

// SetSpeed changes the travel speed; non-positive values are ignored.
func (w *Wander) SetSpeed(s float64) {
	if s > 0 {
		w.speed = s
	}
}

// Reset reseeds the walker and returns it to the centre.
func (w *Wander) Reset(seed int64) {
	w.rng = core.NewRNG(seed)
	w.pos = w.bounds.Center()
	w.target = w.pick()
}

// Step advances toward the current target by speed*dt.
func (w *Wander) Step(dt float64) {
	if dt <= 0 {
		return
	}
	left := w.speed * dt
	for i := 0; left > 0 && i < 8; i++ {
		w.pos, left = moveToward(w.pos, w.target, left)
		if w.pos == w.target {
			w.target = w.pick()
		}
	}
}

func (w *Wander) pick() fog.Vec2 {
	return fog.Vec2{
		X: w.rng.Range(w.bounds.Min.X, w.bounds.Max.X),
		Y: w.rng.Range(w.bounds.Min.Y, w.bounds.Max.Y),
	}
}

func init() {
	Register("wander", func(b Bounds, opts map[string]string) Walker {
		return NewWander(b, floatOpt(opts, "speed", defaultSpeed), 0)
	})
}
