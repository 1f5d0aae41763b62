package render

import (
	"image"
	"image/color"
	"image/draw"

	"fog-explore/pkg/core"
)

// Backdrop paints a procedural map texture: a ground colour with scattered
// terrain patches and a faint line every unit pixels. The same seed always
// yields the same image.
func Backdrop(w, h, unit int, seed int64) *image.RGBA {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	ground := color.RGBA{R: 74, G: 98, B: 58, A: 255}
	draw.Draw(img, img.Bounds(), &image.Uniform{C: ground}, image.Point{}, draw.Src)

	rng := core.NewRNG(seed)
	patches := w * h / 2048
	for i := 0; i < patches; i++ {
		pw := 8 + rng.IntN(48)
		ph := 8 + rng.IntN(48)
		x := rng.IntN(w)
		y := rng.IntN(h)
		shade := uint8(rng.IntN(25))
		c := color.RGBA{R: ground.R - 12 + shade, G: ground.G - 12 + shade, B: ground.B - 8 + shade/2, A: 255}
		draw.Draw(img, image.Rect(x, y, x+pw, y+ph).Intersect(img.Bounds()), &image.Uniform{C: c}, image.Point{}, draw.Src)
	}

	if unit > 0 {
		line := color.RGBA{R: 60, G: 80, B: 48, A: 255}
		for x := 0; x < w; x += unit {
			draw.Draw(img, image.Rect(x, 0, x+1, h), &image.Uniform{C: line}, image.Point{}, draw.Src)
		}
		for y := 0; y < h; y += unit {
			draw.Draw(img, image.Rect(0, y, w, y+1), &image.Uniform{C: line}, image.Point{}, draw.Src)
		}
	}
	return img
}
