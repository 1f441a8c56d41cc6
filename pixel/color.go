package pixel

import "image/color"

// Models for the pixel formats.
var (
	RGBA8Model  color.Model = color.ModelFunc(rgba8Model)
	RGB8Model   color.Model = color.ModelFunc(rgb8Model)
	RGB565Model color.Model = color.ModelFunc(rgb565Model)
	A1RGB5Model color.Model = color.ModelFunc(a1rgb5Model)
	RGBA4Model  color.Model = color.ModelFunc(rgba4Model)
)

// expand widens the n low bits of v to 16 bits by repeating them.
func expand(v uint32, n uint) uint32 {
	v &= 1<<n - 1
	v <<= 16 - n
	for s := n; s < 16; s <<= 1 {
		v |= v >> s
	}
	return v
}

// premultiply scales the color components by alpha, as required by color.Color.
func premultiply(r, g, b, a uint32) (uint32, uint32, uint32, uint32) {
	return r * a / 0xffff, g * a / 0xffff, b * a / 0xffff, a
}

func (p RGBA8) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}.RGBA()
}

func rgba8Model(c color.Color) color.Color {
	if _, ok := c.(RGBA8); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA8{n.R, n.G, n.B, n.A}
}

func (p RGB8) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: 0xff}.RGBA()
}

func rgb8Model(c color.Color) color.Color {
	if _, ok := c.(RGB8); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return RGB8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

func (p RGB565) RGBA() (r, g, b, a uint32) {
	v := p.Value()
	return expand(v, 5), expand(v>>5, 6), expand(v>>11, 5), 0xffff
}

func rgb565Model(c color.Color) color.Color {
	if _, ok := c.(RGB565); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	v := r>>11 | (g>>10)<<5 | (b>>11)<<11
	return RGB565{byte(v), byte(v >> 8)}
}

func (p A1RGB5) RGBA() (r, g, b, a uint32) {
	v := p.Value()
	if v&0x0001 == 0 {
		return 0, 0, 0, 0
	}
	return expand(v>>1, 5), expand(v>>6, 5), expand(v>>11, 5), 0xffff
}

func a1rgb5Model(c color.Color) color.Color {
	if _, ok := c.(A1RGB5); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	v := uint32(n.A>>7) | uint32(n.R>>3)<<1 | uint32(n.G>>3)<<6 | uint32(n.B>>3)<<11
	return A1RGB5{byte(v), byte(v >> 8)}
}

func (p RGBA4) RGBA() (r, g, b, a uint32) {
	v := p.Value()
	return premultiply(expand(v, 4), expand(v>>4, 4), expand(v>>8, 4), expand(v>>12, 4))
}

func rgba4Model(c color.Color) color.Color {
	if _, ok := c.(RGBA4); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA4{n.R>>4 | n.G&0xf0, n.B>>4 | n.A&0xf0}
}
