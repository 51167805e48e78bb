package pixel

import (
	"errors"
	"fmt"
	"math/bits"
)

// Layout errors.
var (
	ErrMask = errors.New("pixel: invalid channel mask")
)

// BitField is the position of a single color channel within a pixel value.
type BitField struct {
	// Shift is the bit offset of the least significant channel bit.
	Shift uint8

	// Bits is the channel depth.
	Bits uint8
}

// Mask returns the channel bits in place.
func (f BitField) Mask() uint32 {
	if f.Bits == 0 {
		return 0
	}
	return (uint32(1)<<f.Bits - 1) << f.Shift
}

func (f BitField) String() string {
	return fmt.Sprintf("%d@%d", f.Bits, f.Shift)
}

// put scales an 8-bit channel value to the field depth and shifts it in place.
func (f BitField) put(v uint8) uint32 {
	if f.Bits == 0 {
		return 0
	}
	if f.Bits < 8 {
		return uint32(v>>(8-f.Bits)) << f.Shift
	}
	return uint32(v) << (f.Shift + f.Bits - 8)
}

// get extracts the channel from a pixel value and scales it to 8 bits.
func (f BitField) get(v uint32) uint8 {
	if f.Bits == 0 {
		return 0
	}
	c := (v >> f.Shift) & (uint32(1)<<f.Bits - 1)
	if f.Bits >= 8 {
		return uint8(c >> (f.Bits - 8))
	}
	// Replicate the high bits into the low bits.
	c <<= 8 - f.Bits
	return uint8(c | c>>f.Bits)
}

// Layout describes how red, green and blue are packed into one pixel.
type Layout struct {
	// BytesPerPixel is the storage size of one pixel.
	BytesPerPixel int

	Red, Green, Blue BitField
}

// XRGB8888 is 0x00RRGGBB stored in 4 bytes.
var XRGB8888 = Layout{
	BytesPerPixel: 4,
	Red:           BitField{Shift: 16, Bits: 8},
	Green:         BitField{Shift: 8, Bits: 8},
	Blue:          BitField{Shift: 0, Bits: 8},
}

// LayoutFromMasks derives the channel shifts and depths from their masks.
//
// Each mask must be a non-empty run of contiguous bits, and masks may not overlap.
func LayoutFromMasks(bytesPerPixel int, red, green, blue uint32) (Layout, error) {
	l := Layout{BytesPerPixel: bytesPerPixel}
	var err error
	if l.Red, err = fieldFromMask("red", red); err != nil {
		return Layout{}, err
	}
	if l.Green, err = fieldFromMask("green", green); err != nil {
		return Layout{}, err
	}
	if l.Blue, err = fieldFromMask("blue", blue); err != nil {
		return Layout{}, err
	}
	if red&green != 0 || red&blue != 0 || green&blue != 0 {
		return Layout{}, fmt.Errorf("%w: channels overlap (%#08x, %#08x, %#08x)", ErrMask, red, green, blue)
	}
	if top := bits.Len32(red | green | blue); top > bytesPerPixel*8 {
		return Layout{}, fmt.Errorf("%w: %d bits do not fit in %d bytes", ErrMask, top, bytesPerPixel)
	}
	return l, nil
}

func fieldFromMask(name string, mask uint32) (BitField, error) {
	if mask == 0 {
		return BitField{}, fmt.Errorf("%w: %s mask is empty", ErrMask, name)
	}
	var (
		shift = bits.TrailingZeros32(mask)
		depth = bits.OnesCount32(mask)
	)
	if mask>>shift != uint32(1)<<depth-1 {
		return BitField{}, fmt.Errorf("%w: %s mask %#08x is not contiguous", ErrMask, name, mask)
	}
	return BitField{Shift: uint8(shift), Bits: uint8(depth)}, nil
}

// BitsPerPixel is the number of significant color bits.
func (l Layout) BitsPerPixel() int {
	return int(l.Red.Bits) + int(l.Green.Bits) + int(l.Blue.Bits)
}

// Pack 8-bit channel values into a pixel value.
func (l Layout) Pack(r, g, b uint8) uint32 {
	return l.Red.put(r) | l.Green.put(g) | l.Blue.put(b)
}

// Unpack a pixel value into 8-bit channel values.
func (l Layout) Unpack(v uint32) (r, g, b uint8) {
	return l.Red.get(v), l.Green.get(v), l.Blue.get(v)
}

func (l Layout) String() string {
	return fmt.Sprintf("%dbpp R%s G%s B%s", l.BytesPerPixel*8, l.Red, l.Green, l.Blue)
}
