// Package fbdev provides the framebuffer geometry of a Linux framebuffer device
// (fbdev) and mirrors host framebuffer memory onto it.
//
// A [Device] is a [framebuffer.Screen], so it can back a [framebuffer.Provider]. A
// [Mirror] is a [framebuffer.Target] that copies the enabled region of a memory
// arena to the device on every [Mirror.Flush].
package fbdev

import (
	"github.com/juju/errors"

	"github.com/BeatGlow/framebuffer"
	"github.com/BeatGlow/framebuffer/pixel"
)

// DefaultDevice is the first framebuffer device.
const DefaultDevice = "/dev/fb0"

// Device is an opened and memory mapped framebuffer device.
type Device struct {
	name  string
	fd    int
	mem   []byte
	fixed fixScreenInfo
	vinfo varScreenInfo
}

// ScreenSize is the visible resolution.
func (d *Device) ScreenSize() framebuffer.Size {
	return framebuffer.PackSize(int(d.vinfo.Xres), int(d.vinfo.Yres))
}

// BitsPerPixel of the device memory.
func (d *Device) BitsPerPixel() int {
	return int(d.vinfo.BitsPerPixel)
}

// LineLength is the device row stride in bytes.
func (d *Device) LineLength() int {
	return int(d.fixed.LineLength)
}

// Memory is the mapped device memory.
func (d *Device) Memory() []byte {
	return d.mem
}

// Layout of one device pixel.
func (d *Device) Layout() (pixel.Layout, error) {
	return parseLayout(&d.vinfo)
}

// Mirror returns a target that shows the enabled region of arena on this device.
func (d *Device) Mirror(arena []byte, info framebuffer.Info) (*Mirror, error) {
	if bpp := d.BitsPerPixel(); bpp != info.BytesPerPixel*8 {
		return nil, errors.NotSupportedf("device %s with %d bits per pixel", d.name, bpp)
	}
	return NewMirror(d.mem, d.LineLength(), arena, info), nil
}

func (d *Device) String() string {
	return d.name
}

// fixScreenInfo is struct fb_fix_screeninfo from <linux/fb.h>.
type fixScreenInfo struct {
	ID           [16]byte
	SmemStart    uintptr
	SmemLen      uint32
	Type         uint32
	TypeAux      uint32
	Visual       uint32
	Xpanstep     uint16
	Ypanstep     uint16
	Ywrapstep    uint16
	LineLength   uint32
	MmioStart    uintptr
	MmioLen      uint32
	Accel        uint32
	Capabilities uint16
	Reserved     [2]uint16
}

// bitField is struct fb_bitfield.
type bitField struct {
	Offset   uint32
	Length   uint32
	MsbRight uint32
}

// varScreenInfo is struct fb_var_screeninfo.
type varScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha bitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}

func parseLayout(info *varScreenInfo) (pixel.Layout, error) {
	if info.BitsPerPixel == 0 || info.BitsPerPixel%8 != 0 {
		return pixel.Layout{}, errors.NotSupportedf("%d bits per pixel", info.BitsPerPixel)
	}
	if info.Red.MsbRight != 0 || info.Green.MsbRight != 0 || info.Blue.MsbRight != 0 {
		return pixel.Layout{}, errors.NotSupportedf("MSB right bit fields")
	}
	l, err := pixel.LayoutFromMasks(int(info.BitsPerPixel/8),
		fieldMask(info.Red), fieldMask(info.Green), fieldMask(info.Blue))
	if err != nil {
		return pixel.Layout{}, errors.Annotatef(err, "%d bpp", info.BitsPerPixel)
	}
	return l, nil
}

func fieldMask(f bitField) uint32 {
	return pixel.BitField{Shift: uint8(f.Offset), Bits: uint8(f.Length)}.Mask()
}
