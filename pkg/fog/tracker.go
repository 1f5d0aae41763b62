package fog

// DefaultEpsilon is the minimum movement, in world units, before a Tracker
// issues another reveal.
const DefaultEpsilon = 0.1

// Revealer is the part of an engine a Tracker drives.
type Revealer interface {
	RevealDefault(p Vec2) bool
}

// Tracker follows one moving entity and reveals around it only after it has
// moved more than Epsilon since the previous reveal.
type Tracker struct {
	target  Revealer
	epsilon float64
	last    Vec2
	seen    bool
}

// NewTracker returns a tracker feeding target. A non-positive epsilon falls
// back to DefaultEpsilon.
func NewTracker(target Revealer, epsilon float64) *Tracker {
	if !(epsilon > 0) {
		epsilon = DefaultEpsilon
	}
	return &Tracker{target: target, epsilon: epsilon}
}

// Epsilon returns the movement threshold.
func (t *Tracker) Epsilon() float64 { return t.epsilon }

// Track reveals at p when this is the first position or it is far enough
// from the last revealed one. It reports whether a reveal was issued.
func (t *Tracker) Track(p Vec2) bool {
	if t.seen && p.Dist(t.last) <= t.epsilon {
		return false
	}
	t.Force(p)
	return true
}

// Force reveals at p regardless of movement.
func (t *Tracker) Force(p Vec2) {
	t.target.RevealDefault(p)
	t.last = p
	t.seen = true
}

// Forget drops the remembered position so the next Track always reveals.
func (t *Tracker) Forget() {
	t.seen = false
}
