//go:build ebiten

package app

import (
	"image/color"
	"time"

	"fog-explore/internal/core"
	"fog-explore/internal/explore"
	"fog-explore/internal/render"
	"fog-explore/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

var background = color.RGBA{R: 12, G: 12, B: 16, A: 255}

// Game adapts an exploration session to the ebiten.Game interface.
type Game struct {
	session *explore.Session
	clock   *core.FixedStep
	view    render.View
	ground  *render.MapLayer
	fog     *render.FogPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	log     logrus.FieldLogger

	paused   bool
	tickOnce bool
	seed     int64
}

// New builds the GUI around s.
func New(s *explore.Session, log logrus.FieldLogger) (*Game, error) {
	cfg := s.Config()
	tint, err := cfg.FogRGBA()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	surface := s.Engine().Surface()
	scale := max(1, cfg.Scale)
	view := render.NewView(surface, cfg.PixelsPerUnit*float64(scale))
	fog := render.NewFogPainter(s.Engine(), tint)

	g := &Game{
		session: s,
		clock:   core.NewFixedStep(cfg.TPS),
		view:    view,
		ground:  render.NewMapLayer(surface, render.Backdrop(cfg.PixelWidth, cfg.PixelHeight, int(cfg.PixelsPerUnit), cfg.Seed)),
		fog:     fog,
		hud:     ui.NewHUD(s, cfg.HUDWidth),
		overlay: ui.NewOverlay(s.Engine(), s.Walker(), view, fog.LastUpload),
		log:     log,
		paused:  cfg.StartPaused,
		seed:    cfg.Seed,
	}
	return g, nil
}

// Reset restarts the session with seed and fogs the whole map.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.session.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the session at the configured
// tick rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.log.WithField("paused", g.paused).Debug("toggled pause")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	g.hud.Update(g.view.W)
	if tint, err := g.session.Config().FogRGBA(); err == nil {
		g.fog.SetTint(tint)
	}

	due := g.clock.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.session.Step(g.clock.Seconds())
		g.tickOnce = false
	}
	return nil
}

// Draw renders the map, the fog on top of it, the gizmos and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.ground.Draw(screen, g.view)
	g.fog.Sync()
	g.fog.Draw(screen, g.view)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.view.W, g.view.H)
}

// Layout returns the logical screen size: the map view plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.view.W + g.hud.Width(), g.view.H
}

// WindowSize is the initial window size matching Layout.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}
