package explore

import (
	"errors"
	"strconv"
	"testing"

	"fog-explore/pkg/fog"
)

func testConfig() Config {
	c := DefaultConfig()
	c.PixelWidth = 320
	c.PixelHeight = 320
	c.PixelsPerUnit = 32
	c.Resolution = 100
	c.VisionRadius = 1
	c.FadeWidth = 0.5
	return c
}

func TestNewSessionRevealsStart(t *testing.T) {
	s, err := NewSession(testConfig(), nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if got := s.Engine().Sample(s.Walker().Position()); got != 1 {
		t.Fatalf("start position reveal = %f, want 1", got)
	}
	if s.Size().W != 100 || s.Size().H != 100 {
		t.Fatalf("size = %+v", s.Size())
	}
	if s.Name() != "fog wander" {
		t.Fatalf("name = %q", s.Name())
	}
}

func TestNewSessionErrors(t *testing.T) {
	c := testConfig()
	c.Walker = "teleport"
	if _, err := NewSession(c, nil); err == nil {
		t.Fatal("unknown walker should fail")
	}

	c = testConfig()
	c.Resolution = 0
	_, err := NewSession(c, nil)
	if !errors.Is(err, fog.ErrConfiguration) {
		t.Fatalf("error %v should wrap fog.ErrConfiguration", err)
	}

	c = testConfig()
	c.PixelsPerUnit = 0
	if _, err := NewSession(c, nil); !errors.Is(err, fog.ErrConfiguration) {
		t.Fatalf("zero ppu error %v should wrap fog.ErrConfiguration", err)
	}
}

func TestSessionStepExploresAndResetFogs(t *testing.T) {
	s, err := NewSession(testConfig(), nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	before := s.Engine().Coverage()
	for i := 0; i < 120; i++ {
		s.Step(1.0 / 30)
	}
	after := s.Engine().Coverage()
	if after.Revealed <= before.Revealed {
		t.Fatalf("coverage did not grow: %+v -> %+v", before, after)
	}
	if s.Ticks() != 120 {
		t.Fatalf("ticks = %d", s.Ticks())
	}

	s.Reset(7)
	if s.Ticks() != 0 || s.Config().Seed != 7 {
		t.Fatal("reset should clear ticks and record the seed")
	}
	cov := s.Engine().Coverage()
	if cov.Revealed >= after.Revealed {
		t.Fatalf("reset left coverage at %+v", cov)
	}
	if s.Engine().Sample(s.Walker().Position()) != 1 {
		t.Fatal("reset should reveal the restart position")
	}
}

func TestSessionParameters(t *testing.T) {
	s, err := NewSession(testConfig(), nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	snap := s.Parameters()
	p, ok := snap.Lookup("vision_radius")
	if !ok || p.Value != "1" {
		t.Fatalf("vision_radius = %+v, %v", p, ok)
	}
	if p, _ := snap.Lookup("world_to_grid"); p.Value != "10" {
		t.Fatalf("world_to_grid = %q", p.Value)
	}

	if !s.SetFloatParameter("vision_radius", 2) {
		t.Fatal("vision_radius should be settable")
	}
	if s.Engine().VisionRadius() != 2 {
		t.Fatalf("engine radius = %f", s.Engine().VisionRadius())
	}
	// The wider radius is applied at the current position immediately.
	pos := s.Walker().Position()
	if s.Engine().Sample(fog.Vec2{X: pos.X + 1.5, Y: pos.Y}) != 1 && s.Engine().Sample(fog.Vec2{X: pos.X - 1.5, Y: pos.Y}) != 1 {
		t.Fatal("new radius not applied around the explorer")
	}

	if !s.SetFloatParameter("speed", 5) {
		t.Fatal("speed should be settable on the wander walker")
	}
	if p, _ := s.Parameters().Lookup("speed"); p.Value != strconv.Itoa(5) {
		t.Fatalf("speed = %q", p.Value)
	}
	if s.SetFloatParameter("speed", -1) || s.SetFloatParameter("bogus", 1) || s.SetIntParameter("grid_w", 3) {
		t.Fatal("invalid adjustments should be rejected")
	}
	if len(s.ParameterControls()) != 4 {
		t.Fatalf("controls = %v", s.ParameterControls())
	}
}

func TestSessionFogAlphaRewritesColour(t *testing.T) {
	c := testConfig()
	c.FogColor = "#102030B3"
	s, err := NewSession(c, nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if p, _ := s.Parameters().Lookup("fog_alpha"); p.Value != "0.702" {
		t.Fatalf("fog_alpha = %q", p.Value)
	}
	if !s.SetFloatParameter("fog_alpha", 0.5) {
		t.Fatal("fog_alpha should be settable")
	}
	if got := s.Config().FogColor; got != "#10203080" {
		t.Fatalf("fog colour = %q, want #10203080", got)
	}
	if !s.SetFloatParameter("fog_alpha", 3) || s.Config().FogColor != "#102030FF" {
		t.Fatalf("fog_alpha should clamp to 1, colour %q", s.Config().FogColor)
	}
}

func TestSessionReportsPendingUpload(t *testing.T) {
	s, err := NewSession(testConfig(), nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if p, _ := s.Parameters().Lookup("upload_pending"); p.Value != "true" {
		t.Fatalf("upload_pending after start reveal = %q", p.Value)
	}
	s.Engine().ClearDirty()
	if p, _ := s.Parameters().Lookup("upload_pending"); p.Value != "false" {
		t.Fatalf("upload_pending after clear = %q", p.Value)
	}
}
