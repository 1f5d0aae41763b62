// Package explore ties an explorer walker to a fog engine and exposes the
// result as a headless scene the GUI and the report tool both drive.
package explore

import (
	"fmt"
	"io"
	"math"

	"fog-explore/internal/core"
	"fog-explore/internal/walk"
	"fog-explore/pkg/fog"

	"github.com/sirupsen/logrus"
)

type speedControl interface {
	Speed() float64
	SetSpeed(float64)
}

// Session is one exploration run over a single map.
type Session struct {
	cfg     Config
	engine  *fog.Engine
	walker  walk.Walker
	tracker *fog.Tracker
	log     logrus.FieldLogger
	ticks   int
}

// NewSession validates cfg and builds the engine and walker. The walker's
// starting position is revealed immediately.
func NewSession(cfg Config, log logrus.FieldLogger) (*Session, error) {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	factory, ok := walk.Lookup(cfg.Walker)
	if !ok {
		return nil, fmt.Errorf("unknown walker %q (have %v)", cfg.Walker, walk.Names())
	}

	surface := cfg.Surface()
	engine, err := fog.New(surface, cfg.Resolution, cfg.VisionRadius, cfg.FadeWidth,
		fog.WithLogger(log.WithField("component", "fog")))
	if err != nil {
		return nil, err
	}

	opts := map[string]string{}
	for k, v := range cfg.WalkerOpts {
		opts[k] = v
	}
	if cfg.Speed > 0 {
		opts["speed"] = fmt.Sprint(cfg.Speed)
	}

	s := &Session{
		cfg:     cfg,
		engine:  engine,
		walker:  factory(WalkBounds(surface), opts),
		tracker: fog.NewTracker(engine, cfg.Epsilon),
		log:     log,
	}
	s.walker.Reset(cfg.Seed)
	s.tracker.Track(s.walker.Position())

	grid := engine.Grid()
	log.WithFields(logrus.Fields{
		"walker": s.walker.Name(),
		"grid":   fmt.Sprintf("%dx%d", grid.W, grid.H),
		"seed":   cfg.Seed,
	}).Info("exploration session ready")
	return s, nil
}

// WalkBounds is the axis-aligned world rectangle around the surface's
// centre with the surface's world size. Rotated surfaces are not covered
// exactly; positions off the surface clamp to its edge.
func WalkBounds(s fog.Surface) walk.Bounds {
	half := s.WorldSize().Scale(0.5)
	return walk.Bounds{Min: s.Center.Sub(half), Max: s.Center.Add(half)}
}

// Name identifies the scene.
func (s *Session) Name() string { return "fog " + s.walker.Name() }

// Size returns the mask grid dimensions.
func (s *Session) Size() core.Size {
	g := s.engine.Grid()
	return core.Size{W: g.W, H: g.H}
}

// Config returns the configuration the session was built with.
func (s *Session) Config() Config { return s.cfg }

// Engine exposes the fog engine for rendering and queries.
func (s *Session) Engine() *fog.Engine { return s.engine }

// Walker exposes the explorer.
func (s *Session) Walker() walk.Walker { return s.walker }

// Ticks counts Step calls since the last reset.
func (s *Session) Ticks() int { return s.ticks }

// Step advances the explorer by dt seconds and reveals around it when it has
// moved far enough.
func (s *Session) Step(dt float64) {
	s.walker.Step(dt)
	s.tracker.Track(s.walker.Position())
	s.ticks++
}

// Reset restarts the explorer with seed and fogs the whole map.
func (s *Session) Reset(seed int64) {
	s.cfg.Seed = seed
	s.walker.Reset(seed)
	s.engine.Reset()
	s.tracker.Forget()
	s.tracker.Track(s.walker.Position())
	s.ticks = 0
	s.log.WithField("seed", seed).Info("exploration reset")
}

// Parameters reports the current tunables and exploration progress.
func (s *Session) Parameters() core.ParameterSnapshot {
	grid := s.engine.Grid()
	cov := s.engine.Coverage()
	pos := s.walker.Position()
	speed := 0.0
	if sc, ok := s.walker.(speedControl); ok {
		speed = sc.Speed()
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Mask",
			Params: []core.Parameter{
				core.IntParam("grid_w", "Grid width", grid.W),
				core.IntParam("grid_h", "Grid height", grid.H),
				core.FloatParam("world_to_grid", "Cells per unit", round3(s.engine.WorldToGridRatio())),
				core.BoolParam("upload_pending", "Upload pending", s.engine.Dirty()),
			},
		},
		{
			Name: "Vision",
			Params: []core.Parameter{
				core.FloatParam("vision_radius", "Vision radius", s.engine.VisionRadius()),
				core.FloatParam("fade_width", "Fade width", s.engine.FadeWidth()),
				core.FloatParam("epsilon", "Move epsilon", s.tracker.Epsilon()),
				core.FloatParam("fog_alpha", "Fog opacity", round3(s.fogAlpha())),
			},
		},
		{
			Name:    "Explorer",
			Summary: s.walker.Name(),
			Params: []core.Parameter{
				core.FloatParam("speed", "Speed", speed),
				core.FloatParam("x", "X", round3(pos.X)),
				core.FloatParam("y", "Y", round3(pos.Y)),
				core.IntParam("ticks", "Ticks", s.ticks),
			},
		},
		{
			Name: "Exploration",
			Params: []core.Parameter{
				core.FloatParam("revealed", "Revealed %", round3(cov.Revealed*100)),
				core.FloatParam("touched", "Touched %", round3(cov.Touched*100)),
				core.FloatParam("under_explorer", "Here", round3(s.engine.Sample(pos))),
			},
		},
	}}
}

// ParameterControls lists the values adjustable at runtime.
func (s *Session) ParameterControls() []core.ParameterControl {
	controls := []core.ParameterControl{
		{Key: "vision_radius", Label: "Vision radius", Type: core.ParamTypeFloat, Step: 0.25, Min: 0, Max: 20, HasMin: true, HasMax: true},
		{Key: "fade_width", Label: "Fade width", Type: core.ParamTypeFloat, Step: 0.25, Min: 0, Max: 10, HasMin: true, HasMax: true},
		{Key: "fog_alpha", Label: "Fog opacity", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
	if _, ok := s.walker.(speedControl); ok {
		controls = append(controls, core.ParameterControl{
			Key: "speed", Label: "Speed", Type: core.ParamTypeFloat, Step: 0.5, Min: 0.5, Max: 20, HasMin: true, HasMax: true,
		})
	}
	return controls
}

// SetFloatParameter applies a HUD adjustment. Radius changes take effect at
// the explorer's current position right away; fog_alpha rewrites the
// configured fog colour.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "vision_radius":
		s.engine.SetVisionRadius(value)
	case "fade_width":
		s.engine.SetFadeWidth(value)
	case "fog_alpha":
		return s.setFogAlpha(value)
	case "speed":
		sc, ok := s.walker.(speedControl)
		if !ok || value <= 0 {
			return false
		}
		sc.SetSpeed(value)
		return true
	default:
		return false
	}
	s.tracker.Force(s.walker.Position())
	return true
}

// SetIntParameter rejects every key; no integer setting is adjustable once
// the mask is allocated.
func (s *Session) SetIntParameter(string, int) bool { return false }

func (s *Session) fogAlpha() float64 {
	c, err := s.cfg.FogRGBA()
	if err != nil {
		return 0
	}
	return float64(c.A) / 255
}

func (s *Session) setFogAlpha(v float64) bool {
	c, err := s.cfg.FogRGBA()
	if err != nil || math.IsNaN(v) {
		return false
	}
	c.A = uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
	s.cfg.FogColor = fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
	return true
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
