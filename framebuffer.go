// Package framebuffer lets a host runtime query and toggle a device framebuffer.
//
// The screen geometry comes from a [Screen], and the actual mapping of the framebuffer
// region for display is delegated to a host object implementing [Enabler] and
// [Disabler]. The pixel layout reported by [Provider.Info] is fixed to 32-bit XRGB.
package framebuffer

import (
	"fmt"
	"os"

	"github.com/BeatGlow/framebuffer/pixel"
)

var debug bool

func init() {
	debug = os.Getenv("FRAMEBUFFER_DEBUG") != ""
}

// Pixel layout reported in every [Info].
const (
	BitsPerPixel  = 24
	BytesPerPixel = 4

	RedMask   = 0x00ff0000
	GreenMask = 0x0000ff00
	BlueMask  = 0x000000ff

	RedShift = 16
	// GreenShift does not match GreenMask, which implies 8. Hosts compiled against
	// the 9 expect it verbatim; use [Info.Layout] for the shift derived from the mask.
	GreenShift = 9
	BlueShift  = 0

	RedBits   = 8
	GreenBits = 8
	BlueBits  = 8
)

// Size is a packed screen size: width in the high 16 bits, height in the low 16 bits.
type Size uint32

// PackSize packs width and height, truncating each to 16 bits.
func PackSize(width, height int) Size {
	return Size(uint32(width&0xffff)<<16 | uint32(height&0xffff))
}

// Width in pixels.
func (s Size) Width() int {
	return int(s>>16) & 0xffff
}

// Height in pixels.
func (s Size) Height() int {
	return int(s) & 0xffff
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width(), s.Height())
}

// Screen reports the current screen size.
type Screen interface {
	ScreenSize() Size
}

// ScreenFunc is an adapter to use a plain function as a [Screen].
type ScreenFunc func() Size

// ScreenSize calls f.
func (f ScreenFunc) ScreenSize() Size {
	return f()
}

// Info describes the framebuffer geometry and pixel layout at the moment of query.
type Info struct {
	BitsPerPixel  int
	BytesPerPixel int

	RedMask   uint32
	GreenMask uint32
	BlueMask  uint32

	// SizeInBytes is Pitch × Height.
	SizeInBytes int

	Width  int
	Height int

	// Pitch is the row stride in bytes.
	Pitch int

	RedShift   int
	GreenShift int
	BlueShift  int

	RedBits   int
	GreenBits int
	BlueBits  int

	SupportsGfxSyscalls bool
}

func newInfo(size Size) Info {
	var (
		width  = size.Width()
		height = size.Height()
	)
	return Info{
		BitsPerPixel:        BitsPerPixel,
		BytesPerPixel:       BytesPerPixel,
		RedMask:             RedMask,
		GreenMask:           GreenMask,
		BlueMask:            BlueMask,
		SizeInBytes:         width * height * BytesPerPixel,
		Width:               width,
		Height:              height,
		Pitch:               width * BytesPerPixel,
		RedShift:            RedShift,
		GreenShift:          GreenShift,
		BlueShift:           BlueShift,
		RedBits:             RedBits,
		GreenBits:           GreenBits,
		BlueBits:            BlueBits,
		SupportsGfxSyscalls: false,
	}
}

// Layout derives the pixel layout from the channel masks.
func (info Info) Layout() (pixel.Layout, error) {
	return pixel.LayoutFromMasks(info.BytesPerPixel, info.RedMask, info.GreenMask, info.BlueMask)
}

// ShiftsConsistent reports whether the reported shifts agree with the masks.
func (info Info) ShiftsConsistent() bool {
	l, err := info.Layout()
	if err != nil {
		return false
	}
	return int(l.Red.Shift) == info.RedShift &&
		int(l.Green.Shift) == info.GreenShift &&
		int(l.Blue.Shift) == info.BlueShift
}

// Image wraps pix as an image with this geometry. No copy is made.
func (info Info) Image(pix []byte) *pixel.XRGBImage {
	return pixel.WrapXRGBImage(pix, info.Width, info.Height, info.Pitch)
}

func (info Info) String() string {
	return fmt.Sprintf("%dx%d %dbpp pitch %d (%d bytes)", info.Width, info.Height, info.BitsPerPixel, info.Pitch, info.SizeInBytes)
}
