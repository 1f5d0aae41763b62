package fog

import "testing"

type countingRevealer struct {
	calls []Vec2
}

func (c *countingRevealer) RevealDefault(p Vec2) bool {
	c.calls = append(c.calls, p)
	return true
}

func TestTrackerSkipsSmallMoves(t *testing.T) {
	r := &countingRevealer{}
	tr := NewTracker(r, 0)
	if tr.Epsilon() != DefaultEpsilon {
		t.Fatalf("epsilon = %f, want default %f", tr.Epsilon(), DefaultEpsilon)
	}

	if !tr.Track(Vec2{X: 1, Y: 1}) {
		t.Fatal("first position should always reveal")
	}
	if tr.Track(Vec2{X: 1.05, Y: 1}) {
		t.Fatal("move below epsilon should be skipped")
	}
	if !tr.Track(Vec2{X: 1.2, Y: 1}) {
		t.Fatal("move beyond epsilon should reveal")
	}
	if len(r.calls) != 2 {
		t.Fatalf("revealed %d times, want 2", len(r.calls))
	}
	if r.calls[1] != (Vec2{X: 1.2, Y: 1}) {
		t.Fatalf("second reveal at %v", r.calls[1])
	}
}

func TestTrackerForgetAndForce(t *testing.T) {
	r := &countingRevealer{}
	tr := NewTracker(r, 0.5)
	tr.Track(Vec2{})
	tr.Forget()
	if !tr.Track(Vec2{X: 0.1}) {
		t.Fatal("Track after Forget should reveal")
	}
	tr.Force(Vec2{X: 0.1})
	if len(r.calls) != 3 {
		t.Fatalf("revealed %d times, want 3", len(r.calls))
	}
}

func TestTrackerDrivesEngine(t *testing.T) {
	e := squareEngine(t, 10, 100)
	tr := NewTracker(e, DefaultEpsilon)
	tr.Track(Vec2{X: -2})
	if e.Sample(Vec2{X: -2}) != 1 {
		t.Fatal("tracked position should be revealed")
	}
	if e.Sample(Vec2{X: 2}) != 0 {
		t.Fatal("untracked position should stay fogged")
	}
}
