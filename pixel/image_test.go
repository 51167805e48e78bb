package pixel

import (
	"encoding/binary"
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestXRGB(t *testing.T) {
	for _, v := range []uint32{0x000000, 0xffffff, 0x123456, 0x00ff00} {
		c := XRGB{V: v}
		r, g, b, a := c.RGBA()
		if want := (v >> 16) & 0xff * 0x101; r != want {
			t.Errorf("expected red to be %#04x, got %#04x", want, r)
		}
		if want := (v >> 8) & 0xff * 0x101; g != want {
			t.Errorf("expected green to be %#04x, got %#04x", want, g)
		}
		if want := v & 0xff * 0x101; b != want {
			t.Errorf("expected blue to be %#04x, got %#04x", want, b)
		}
		if a != 0xffff {
			t.Errorf("expected opaque, got alpha %#04x", a)
		}
	}
}

func TestXRGBImage(t *testing.T) {
	testCases := []image.Point{
		{},
		image.Pt(1, 1),
		image.Pt(2, 2),
		image.Pt(320, 144),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := NewXRGBImage(test.X, test.Y)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}
			if v := len(i.Pix); v != test.X*test.Y*4 {
				it.Errorf("expected %d bytes, got %d", test.X*test.Y*4, v)
			}

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomColor()
						i.Set(x, y, c)
						if v := i.ColorModel().Convert(c); i.At(x, y) != v {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
						}
					}
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				for _, p := range []image.Point{{-1, 0}, {0, -1}, {test.X, 0}, {0, test.Y}} {
					i.Set(p.X, p.Y, testRandomColor())
					if v := i.At(p.X, p.Y); v != color.Transparent {
						itt.Fatalf("pixel %s is %#+v, expected transparent", p, v)
					}
				}
			})

			it.Run("fill", func(itt *testing.T) {
				c := testRandomColor()
				i.Fill(c)
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := i.ColorModel().Convert(c); i.At(x, y) != v {
						itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
					}
				}
			})

			it.Run("clear", func(itt *testing.T) {
				i.Clear()
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := i.At(x, y); v != (XRGB{}) {
						itt.Fatalf("pixel (%d,%d) is not black", x, y)
					}
				}
			})
		})
	}
}

func TestXRGBImageByteOrder(t *testing.T) {
	i := NewXRGBImage(1, 1)
	i.Set(0, 0, color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff})
	if want := []byte{0x33, 0x22, 0x11, 0x00}; string(i.Pix) != string(want) {
		t.Errorf("expected little endian pixel % x, got % x", want, i.Pix)
	}

	i.Order = binary.BigEndian
	i.Set(0, 0, color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff})
	if want := []byte{0x00, 0x11, 0x22, 0x33}; string(i.Pix) != string(want) {
		t.Errorf("expected big endian pixel % x, got % x", want, i.Pix)
	}
}

func TestWrapXRGBImage(t *testing.T) {
	// Padded rows: 3 pixels wide with a 16 byte stride, only 2 full rows available.
	pix := make([]byte, 16*2+4)
	i := WrapXRGBImage(pix, 3, 4, 16)
	if v := i.Bounds().Size(); !v.Eq(image.Pt(3, 2)) {
		t.Fatalf("expected image size (3,2), got %s", v)
	}
	i.Fill(color.White)
	for x := 12; x < 16; x++ {
		if pix[x] != 0 {
			t.Fatalf("padding byte %d was written", x)
		}
	}
	i.Set(2, 1, color.RGBA{B: 0xff, A: 0xff})
	if pix[16+8] != 0xff || pix[16+9] != 0 {
		t.Errorf("expected blue at row 1 column 2, got % x", pix[16+8:16+12])
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(255)),
		G: uint8(rand.Intn(255)),
		B: uint8(rand.Intn(255)),
		A: 0xFF,
	}
}
