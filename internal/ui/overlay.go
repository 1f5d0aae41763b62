//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"fog-explore/internal/render"
	"fog-explore/pkg/fog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Positioned is anything the overlay can mark on the map.
type Positioned interface {
	Position() fog.Vec2
}

type targeted interface {
	Target() fog.Vec2
}

var (
	explorerColor = color.RGBA{R: 255, G: 220, B: 90, A: 255}
	innerColor    = color.RGBA{R: 255, G: 255, B: 255, A: 200}
	outerColor    = color.RGBA{R: 255, G: 255, B: 255, A: 90}
	targetColor   = color.RGBA{R: 255, G: 140, B: 60, A: 160}
	dirtyColor    = color.RGBA{R: 90, G: 200, B: 255, A: 220}
)

// Overlay draws debugging gizmos over the fogged map. Key 1 toggles the
// vision circles around the explorer, key 2 the last uploaded dirty
// rectangle.
type Overlay struct {
	engine   *fog.Engine
	explorer Positioned
	dirty    func() image.Rectangle
	view     render.View
	toWorld  render.Matrix

	showVision bool
	showDirty  bool
}

// NewOverlay builds an overlay for e. dirty reports the grid rectangle most
// recently sent to the GPU and may be nil.
func NewOverlay(e *fog.Engine, explorer Positioned, view render.View, dirty func() image.Rectangle) *Overlay {
	g := e.Grid()
	return &Overlay{
		engine:     e,
		explorer:   explorer,
		dirty:      dirty,
		view:       view,
		toWorld:    render.SurfaceMatrix(e.Surface(), g.W, g.H, false),
		showVision: true,
	}
}

// Update handles the toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showVision = !o.showVision
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showDirty = !o.showDirty
	}
}

// Draw renders the enabled gizmos onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.explorer != nil {
		p := o.explorer.Position()
		x, y := o.screen(p)
		if t, ok := o.explorer.(targeted); ok && o.showVision {
			tx, ty := o.screen(t.Target())
			vector.StrokeLine(screen, x, y, tx, ty, 1, targetColor, true)
		}
		if o.showVision {
			k := float32(o.view.PxPerUnit)
			inner := float32(o.engine.VisionRadius()) * k
			outer := inner + float32(o.engine.FadeWidth())*k
			if inner > 0 {
				vector.StrokeCircle(screen, x, y, inner, 1.5, innerColor, true)
			}
			if outer > inner {
				vector.StrokeCircle(screen, x, y, outer, 1, outerColor, true)
			}
		}
		vector.DrawFilledCircle(screen, x, y, 4, explorerColor, true)
	}
	if o.showDirty && o.dirty != nil {
		o.drawGridRect(screen, o.dirty())
	}
}

func (o *Overlay) screen(p fog.Vec2) (float32, float32) {
	x, y := o.view.ToScreen(p)
	return float32(x), float32(y)
}

// drawGridRect outlines a grid-space rectangle. The outline follows the
// surface rotation, so it is drawn as four lines.
func (o *Overlay) drawGridRect(screen *ebiten.Image, r image.Rectangle) {
	if r.Empty() {
		return
	}
	m := o.toWorld.Then(o.view.Camera)
	corners := [4][2]float64{
		{float64(r.Min.X), float64(r.Min.Y)},
		{float64(r.Max.X), float64(r.Min.Y)},
		{float64(r.Max.X), float64(r.Max.Y)},
		{float64(r.Min.X), float64(r.Max.Y)},
	}
	var pts [4][2]float32
	for i, c := range corners {
		x, y := m.Apply(c[0], c[1])
		pts[i] = [2]float32{float32(x), float32(y)}
	}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%4]
		vector.StrokeLine(screen, a[0], a[1], b[0], b[1], 1, dirtyColor, false)
	}
}
