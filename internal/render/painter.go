//go:build ebiten

package render

import (
	"image"
	"image/color"

	"fog-explore/pkg/fog"

	"github.com/hajimehoshi/ebiten/v2"
)

// GeoM converts m into ebiten's matrix type.
func GeoM(m Matrix) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m.A)
	g.SetElement(0, 1, m.B)
	g.SetElement(0, 2, m.TX)
	g.SetElement(1, 0, m.C)
	g.SetElement(1, 1, m.D)
	g.SetElement(1, 2, m.TY)
	return g
}

// FogPainter keeps a GPU copy of an engine's mask and draws it over the map.
// Only the dirty rectangle is uploaded on each Sync.
type FogPainter struct {
	engine  *fog.Engine
	img     *ebiten.Image
	toWorld Matrix
	tint    color.RGBA

	levels []byte
	buf    []byte
	last   image.Rectangle
}

// NewFogPainter allocates a texture the size of e's grid and uploads the
// whole mask once.
func NewFogPainter(e *fog.Engine, tint color.RGBA) *FogPainter {
	g := e.Grid()
	p := &FogPainter{
		engine:  e,
		img:     ebiten.NewImage(g.W, g.H),
		toWorld: SurfaceMatrix(e.Surface(), g.W, g.H, false),
		tint:    tint,
	}
	p.upload(image.Rect(0, 0, g.W, g.H))
	p.engine.ClearDirty()
	return p
}

// SetTint changes the fog colour and re-uploads the full mask.
func (p *FogPainter) SetTint(c color.RGBA) {
	if c == p.tint {
		return
	}
	p.tint = c
	g := p.engine.Grid()
	p.upload(image.Rect(0, 0, g.W, g.H))
}

// Sync uploads pending changes and acknowledges them on the engine. It
// returns the rectangle that was uploaded, empty when nothing changed.
func (p *FogPainter) Sync() image.Rectangle {
	if !p.engine.Dirty() {
		return image.Rectangle{}
	}
	r := p.engine.DirtyRect()
	p.upload(r)
	p.engine.ClearDirty()
	p.last = r
	return r
}

// LastUpload is the most recent non-empty rectangle passed to the GPU.
func (p *FogPainter) LastUpload() image.Rectangle { return p.last }

func (p *FogPainter) upload(r image.Rectangle) {
	r = r.Intersect(p.img.Bounds())
	if r.Empty() {
		return
	}
	p.levels = p.engine.Quantize(p.levels, r)
	p.buf = fillFogRGBA(p.buf, p.levels, p.tint)
	p.img.SubImage(r).(*ebiten.Image).WritePixels(p.buf)
}

// Draw paints the fog onto dst through the view's camera.
func (p *FogPainter) Draw(dst *ebiten.Image, v View) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM = GeoM(p.toWorld.Then(v.Camera))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(p.img, op)
}

// MapLayer is the textured surface the fog covers.
type MapLayer struct {
	img     *ebiten.Image
	toWorld Matrix
}

// NewMapLayer uploads src as the texture of s.
func NewMapLayer(s fog.Surface, src image.Image) *MapLayer {
	b := src.Bounds()
	return &MapLayer{
		img:     ebiten.NewImageFromImage(src),
		toWorld: SurfaceMatrix(s, b.Dx(), b.Dy(), true),
	}
}

// Draw paints the map onto dst through the view's camera.
func (m *MapLayer) Draw(dst *ebiten.Image, v View) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM = GeoM(m.toWorld.Then(v.Camera))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(m.img, op)
}
