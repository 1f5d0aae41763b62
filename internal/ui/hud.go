//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"fog-explore/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBG     = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	groupColor  = color.RGBA{R: 150, G: 190, B: 230, A: 255}
	buttonBG    = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonFG    = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	buttonOffBG = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	buttonOffFG = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

// HUD is the side panel: adjustable controls on top, a read-out of the
// scene's parameter groups below.
type HUD struct {
	scene core.Scene
	width int
	panel *ebiten.Image
	title string

	snapshot core.ParameterSnapshot
	controls []control
	offsetX  int

	ints   core.IntParameterSetter
	floats core.FloatParameterSetter
}

type control struct {
	def   core.ParameterControl
	value float64
	label string
	ok    bool

	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

// NewHUD builds a panel of the given width for scene. A non-positive width
// disables the panel.
func NewHUD(scene core.Scene, width int) *HUD {
	h := &HUD{scene: scene, width: max(0, width), title: "Controls"}
	if scene != nil && scene.Name() != "" {
		h.title = scene.Name()
	}
	if p, ok := scene.(core.ParameterControlsProvider); ok {
		for _, c := range p.ParameterControls() {
			h.controls = append(h.controls, control{def: c, label: "--"})
		}
	}
	h.ints, _ = scene.(core.IntParameterSetter)
	h.floats, _ = scene.(core.FloatParameterSetter)
	h.layout()
	return h
}

// Width is the panel width in screen pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the snapshot and applies button clicks. offsetX is where
// the panel starts on screen.
func (h *HUD) Update(offsetX int) {
	if h == nil || h.width == 0 {
		return
	}
	h.offsetX = offsetX
	if p, ok := h.scene.(core.ParameterProvider); ok {
		h.snapshot = p.Parameters()
	} else {
		h.snapshot = core.ParameterSnapshot{}
	}
	h.refresh()
	h.handleClick()
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width == 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBG)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)
	for i := range h.controls {
		h.drawControl(&h.controls[i])
	}
	h.drawReadout(h.readoutTop(), height)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refresh() {
	for i := range h.controls {
		c := &h.controls[i]
		c.ok = false
		c.label = "--"
		p, found := h.snapshot.Lookup(c.def.Key)
		if !found {
			continue
		}
		switch c.def.Type {
		case core.ParamTypeInt:
			v, err := strconv.Atoi(p.Value)
			if err != nil {
				continue
			}
			c.value, c.label, c.ok = float64(v), strconv.Itoa(v), true
		case core.ParamTypeFloat:
			v, err := strconv.ParseFloat(p.Value, 64)
			if err != nil {
				continue
			}
			c.value, c.label, c.ok = v, formatStep(c.def.Step, v), true
		}
	}
}

func (h *HUD) handleClick() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	pt := image.Pt(mx-h.offsetX, my)
	for i := range h.controls {
		c := &h.controls[i]
		switch {
		case !c.ok:
		case pt.In(c.minus):
			h.adjust(c, -1)
			return
		case pt.In(c.plus):
			h.adjust(c, 1)
			return
		}
	}
}

// target is the value one step away from c's current value, clamped to its
// bounds. ok is false when the step would not change anything.
func (h *HUD) target(c *control, dir int) (float64, bool) {
	step := c.def.Step
	if c.def.Type == core.ParamTypeInt {
		step = math.Max(1, math.Round(step))
	} else if step <= 0 {
		step = 0.05
	}
	v := c.value + float64(dir)*step
	if c.def.HasMin {
		v = math.Max(v, c.def.Min)
	}
	if c.def.HasMax {
		v = math.Min(v, c.def.Max)
	}
	return v, math.Abs(v-c.value) > 1e-9
}

func (h *HUD) adjust(c *control, dir int) {
	v, ok := h.target(c, dir)
	if !ok {
		return
	}
	switch c.def.Type {
	case core.ParamTypeInt:
		if h.ints != nil && h.ints.SetIntParameter(c.def.Key, int(v)) {
			c.value, c.label = v, strconv.Itoa(int(v))
		}
	case core.ParamTypeFloat:
		if h.floats != nil && h.floats.SetFloatParameter(c.def.Key, v) {
			c.value, c.label = v, formatStep(c.def.Step, v)
		}
	}
}

func (h *HUD) enabled(c *control, dir int) bool {
	if !c.ok {
		return false
	}
	if c.def.Type == core.ParamTypeInt && h.ints == nil {
		return false
	}
	if c.def.Type == core.ParamTypeFloat && h.floats == nil {
		return false
	}
	_, ok := h.target(c, dir)
	return ok
}

func (h *HUD) drawControl(c *control) {
	face := basicfont.Face7x13
	y := c.top + labelBaseline
	text.Draw(h.panel, c.def.Label, face, panelPadding, y, labelColor)
	valueColor := labelColor
	if !c.ok {
		valueColor = mutedColor
	}
	w := text.BoundString(face, c.label).Dx()
	text.Draw(h.panel, c.label, face, c.minus.Min.X-buttonGap-w, y, valueColor)
	h.drawButton(c.minus, "-", h.enabled(c, -1))
	h.drawButton(c.plus, "+", h.enabled(c, 1))
}

func (h *HUD) drawButton(r image.Rectangle, label string, on bool) {
	bg, fg := buttonBG, buttonFG
	if !on {
		bg, fg = buttonOffBG, buttonOffFG
	}
	vector.DrawFilledRect(h.panel, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)
	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := r.Min.X + (r.Dx()-b.Dx())/2
	y := r.Min.Y + (r.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) readoutTop() int {
	return controlsTop + len(h.controls)*lineHeight + groupSpacing
}

func (h *HUD) drawReadout(y, height int) {
	face := basicfont.Face7x13
	for _, g := range h.snapshot.Groups {
		if y+readoutLine > height {
			return
		}
		title := g.Name
		if g.Summary != "" {
			title += " (" + g.Summary + ")"
		}
		text.Draw(h.panel, title, face, panelPadding, y, groupColor)
		y += readoutLine
		for _, p := range g.Params {
			if y+readoutLine > height {
				return
			}
			text.Draw(h.panel, p.Label, face, panelPadding+indent, y, mutedColor)
			w := text.BoundString(face, p.Value).Dx()
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-w, y, labelColor)
			y += readoutLine
		}
		y += groupSpacing
	}
}

func (h *HUD) layout() {
	if h.width == 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		by := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, by, h.width-panelPadding, by+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, by, plus.Min.X-buttonGap, by+buttonSize)
		h.controls[i].top = top
		h.controls[i].minus = minus
		h.controls[i].plus = plus
	}
}

// formatStep prints v with as many decimals as the control's step needs.
func formatStep(step, v float64) string {
	prec := 1
	switch {
	case step <= 0:
		prec = 2
	case step < 0.001:
		prec = 4
	case step < 0.01:
		prec = 3
	case step < 0.1:
		prec = 2
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	controlsTop    = panelPadding + headerBaseline + 14
	readoutLine    = 16
	groupSpacing   = 10
	indent         = 8
)
