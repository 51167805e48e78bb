package pixel

import (
	"encoding/binary"
	"image"
	"image/color"

	"github.com/BeatGlow/framebuffer/draw"
)

// Image is a drawable framebuffer image that can be cleared and filled in one call.
type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

// Bounds of the image.
func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

// Clear zeroes every byte, padding included.
func (p *Buffer) Clear() {
	clear(p.Pix)
}

var _ Image = (*XRGBImage)(nil)

// XRGBImage is a 32-bit per pixel image in the [XRGB8888] layout.
type XRGBImage struct {
	Buffer

	// Order of the bytes within one pixel; framebuffers on ARM and x86 are little endian.
	Order binary.ByteOrder
}

// NewXRGBImage allocates a w×h image.
func NewXRGBImage(w, h int) *XRGBImage {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return WrapXRGBImage(make([]byte, w*h*4), w, h, w*4)
}

// WrapXRGBImage uses pix as backing storage, no copy is made. Rows that do not fit in
// pix are cut off.
func WrapXRGBImage(pix []byte, w, h, stride int) *XRGBImage {
	if stride < w*4 {
		stride = w * 4
	}
	if stride > 0 && len(pix) < h*stride {
		h = len(pix) / stride
	}
	return &XRGBImage{
		Buffer: Buffer{
			Rect:   image.Rect(0, 0, w, h),
			Pix:    pix,
			Stride: stride,
		},
		Order: binary.LittleEndian,
	}
}

func (p *XRGBImage) ColorModel() color.Model {
	return XRGBModel
}

// PixOffset is the index of the first byte of pixel (x, y).
func (p *XRGBImage) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*4
}

func (p *XRGBImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	v := p.Order.Uint32(p.Pix[p.PixOffset(x, y):])
	return XRGB{v & 0x00ffffff}
}

func (p *XRGBImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	v := xrgbModel(c).(XRGB).V
	p.Order.PutUint32(p.Pix[p.PixOffset(x, y):], v)
}

func (p *XRGBImage) Fill(c color.Color) {
	var (
		v   = xrgbModel(c).(XRGB).V
		pix = make([]byte, 4)
		w   = p.Rect.Dx()
	)
	p.Order.PutUint32(pix, v)
	for y := 0; y < p.Rect.Dy(); y++ {
		row := p.Pix[y*p.Stride:]
		for x := 0; x < w; x++ {
			copy(row[x*4:], pix)
		}
	}
}
