package render

import "image/color"

// fillFogRGBA converts quantized reveal levels (0 = fogged, 255 = revealed)
// into premultiplied RGBA pixels of the fog colour in buf. Fog opacity is
// fog.A scaled by how unrevealed each cell is.
func fillFogRGBA(buf []byte, levels []byte, fog color.RGBA) []byte {
	n := 4 * len(levels)
	if cap(buf) < n {
		buf = make([]byte, n)
	}
	buf = buf[:n]
	for i, lv := range levels {
		base := i * 4
		a := mul255(fog.A, 255-lv)
		buf[base+0] = mul255(fog.R, a)
		buf[base+1] = mul255(fog.G, a)
		buf[base+2] = mul255(fog.B, a)
		buf[base+3] = a
	}
	return buf
}

// mul255 returns round(a*b/255).
func mul255(a, b uint8) uint8 {
	v := uint32(a)*uint32(b) + 128
	return uint8((v + v>>8) >> 8)
}
