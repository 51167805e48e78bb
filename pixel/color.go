package pixel

import "image/color"

// XRGBModel converts any color to XRGB.
var XRGBModel color.Model = color.ModelFunc(xrgbModel)

// XRGB represents a 24-bit color packed as 0x00RRGGBB. The top byte is ignored.
type XRGB struct {
	V uint32
}

func (c XRGB) RGBA() (r, g, b, a uint32) {
	red, grn, blu := XRGB8888.Unpack(c.V)
	r = uint32(red)
	r |= r << 8
	g = uint32(grn)
	g |= g << 8
	b = uint32(blu)
	b |= b << 8
	return r, g, b, 0xffff
}

func xrgbModel(c color.Color) color.Color {
	if c, ok := c.(XRGB); ok {
		return XRGB{c.V & 0x00ffffff}
	}
	r, g, b, _ := c.RGBA()
	return XRGB{XRGB8888.Pack(uint8(r>>8), uint8(g>>8), uint8(b>>8))}
}
