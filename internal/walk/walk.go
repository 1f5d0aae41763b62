// Package walk provides scripted entities that move across the map and act
// as the reveal driver for the fog engine.
package walk

import (
	"sort"
	"strconv"

	"fog-explore/pkg/fog"
)

// Walker is a moving entity whose position feeds the fog tracker.
type Walker interface {
	Name() string
	Position() fog.Vec2
	Step(dt float64)
	Reset(seed int64)
}

// Bounds is an axis-aligned world rectangle walkers stay inside.
type Bounds struct {
	Min, Max fog.Vec2
}

// Center returns the middle of the rectangle.
func (b Bounds) Center() fog.Vec2 {
	return fog.Vec2{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

// Size returns the rectangle's width and height.
func (b Bounds) Size() fog.Vec2 {
	return b.Max.Sub(b.Min)
}

// Inset shrinks the rectangle by frac of its size on every side.
func (b Bounds) Inset(frac float64) Bounds {
	d := b.Size().Scale(frac)
	return Bounds{Min: b.Min.Add(d), Max: b.Max.Sub(d)}
}

// Factory constructs a Walker inside b using an optional option map.
type Factory func(b Bounds, opts map[string]string) Walker

var walkers = map[string]Factory{}

// Register adds a walker factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	walkers[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := walkers[name]
	return f, ok
}

// Names lists registered walkers in sorted order.
func Names() []string {
	names := make([]string, 0, len(walkers))
	for name := range walkers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

const defaultSpeed = 2.0

func floatOpt(opts map[string]string, key string, def float64) float64 {
	if opts == nil {
		return def
	}
	v, ok := opts[key]
	if !ok {
		return def
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

// moveToward advances from p toward target by at most dist. It returns the
// new position and the unused distance when the target was reached.
func moveToward(p, target fog.Vec2, dist float64) (fog.Vec2, float64) {
	gap := p.Dist(target)
	if gap <= dist {
		return target, dist - gap
	}
	return p.Add(target.Sub(p).Scale(dist / gap)), 0
}
