package fbdev

import (
	"math"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeatGlow/framebuffer"
	"github.com/BeatGlow/framebuffer/pixel"
)

func testDevice(width, height, bpp, lineLength int) *Device {
	d := &Device{
		name: "/dev/fbtest",
		mem:  make([]byte, lineLength*height),
	}
	d.vinfo.Xres = uint32(width)
	d.vinfo.Yres = uint32(height)
	d.vinfo.BitsPerPixel = uint32(bpp)
	d.vinfo.Red = bitField{Offset: 16, Length: 8}
	d.vinfo.Green = bitField{Offset: 8, Length: 8}
	d.vinfo.Blue = bitField{Offset: 0, Length: 8}
	d.fixed.LineLength = uint32(lineLength)
	d.fixed.SmemLen = uint32(lineLength * height)
	return d
}

func TestDeviceScreen(t *testing.T) {
	t.Parallel()

	d := testDevice(320, 144, 32, 1280)
	var screen framebuffer.Screen = d
	assert.Equal(t, framebuffer.Size(0x01400090), screen.ScreenSize())

	info := framebuffer.NewProvider(d, &framebuffer.Config{Logger: framebuffer.Discard}).Info()
	assert.Equal(t, 320, info.Width)
	assert.Equal(t, 144, info.Height)
	assert.Equal(t, 184320, info.SizeInBytes)
}

func TestParseLayout(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		vinfo  varScreenInfo
		expect pixel.Layout
		fail   bool
	}{
		{
			name: "xrgb8888",
			vinfo: varScreenInfo{
				BitsPerPixel: 32,
				Red:          bitField{Offset: 16, Length: 8},
				Green:        bitField{Offset: 8, Length: 8},
				Blue:         bitField{Offset: 0, Length: 8},
			},
			expect: pixel.XRGB8888,
		},
		{
			name: "rgb565",
			vinfo: varScreenInfo{
				BitsPerPixel: 16,
				Red:          bitField{Offset: 11, Length: 5},
				Green:        bitField{Offset: 5, Length: 6},
				Blue:         bitField{Offset: 0, Length: 5},
			},
			expect: pixel.Layout{
				BytesPerPixel: 2,
				Red:           pixel.BitField{Shift: 11, Bits: 5},
				Green:         pixel.BitField{Shift: 5, Bits: 6},
				Blue:          pixel.BitField{Shift: 0, Bits: 5},
			},
		},
		{
			name: "rgb555-packed",
			vinfo: varScreenInfo{
				BitsPerPixel: 15,
				Red:          bitField{Offset: 10, Length: 5},
				Green:        bitField{Offset: 5, Length: 5},
				Blue:         bitField{Offset: 0, Length: 5},
			},
			fail: true,
		},
		{
			name: "msb-right",
			vinfo: varScreenInfo{
				BitsPerPixel: 32,
				Red:          bitField{Offset: 16, Length: 8, MsbRight: 1},
				Green:        bitField{Offset: 8, Length: 8},
				Blue:         bitField{Offset: 0, Length: 8},
			},
			fail: true,
		},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			l, err := parseLayout(&c.vinfo)
			if c.fail {
				require.Error(t, err)
				assert.True(t, errors.IsNotSupported(errors.Cause(err)), errors.ErrorStack(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.expect, l)
		})
	}
}

func TestDeviceMirrorRejectsDepth(t *testing.T) {
	t.Parallel()

	d := testDevice(4, 4, 16, 8)
	info := framebuffer.NewProvider(d, &framebuffer.Config{Logger: framebuffer.Discard}).Info()
	_, err := d.Mirror(make([]byte, info.SizeInBytes), info)
	require.Error(t, err)
	assert.True(t, errors.IsNotSupported(err))
}

func TestMirror(t *testing.T) {
	t.Parallel()

	// Device rows are padded to 20 bytes, host rows are 4 pixels wide.
	d := testDevice(4, 2, 32, 20)
	info := framebuffer.NewProvider(d, &framebuffer.Config{Logger: framebuffer.Discard}).Info()
	require.Equal(t, 16, info.Pitch)

	const base = 8
	arena := make([]byte, base+info.SizeInBytes)
	for i := range arena[base:] {
		arena[base+i] = byte(i + 1)
	}

	m, err := d.Mirror(arena, info)
	require.NoError(t, err)
	require.NoError(t, m.Flush())
	assert.Equal(t, make([]byte, 40), d.Memory(), "flush while disabled must not write")

	bridge, err := framebuffer.Bind(m, &framebuffer.Config{Logger: framebuffer.Discard})
	require.NoError(t, err)
	bridge.Enable(0x1000+base, 0x1000)
	assert.True(t, m.Enabled())
	require.NoError(t, m.Flush())

	mem := d.Memory()
	assert.Equal(t, arena[base:base+16], mem[0:16])
	assert.Equal(t, []byte{0, 0, 0, 0}, mem[16:20])
	assert.Equal(t, arena[base+16:base+32], mem[20:36])

	bridge.Disable()
	assert.False(t, m.Enabled())
}

func TestMirrorOutOfRange(t *testing.T) {
	t.Parallel()

	info := framebuffer.NewProvider(framebuffer.ScreenFunc(func() framebuffer.Size {
		return framebuffer.PackSize(2, 2)
	}), &framebuffer.Config{Logger: framebuffer.Discard}).Info()
	m := NewMirror(make([]byte, info.SizeInBytes), info.Pitch, make([]byte, info.SizeInBytes), info)

	m.EnableFramebuffer(4)
	err := m.Flush()
	require.Error(t, err)
	assert.True(t, errors.IsNotValid(err))

	m.EnableFramebuffer(-1)
	assert.Error(t, m.Flush())

	// Offsets near the int limit must not wrap the bounds check.
	for _, offset := range []int{math.MaxInt - 4, math.MaxInt, len(m.arena) + 1} {
		m.EnableFramebuffer(offset)
		assert.NotPanics(t, func() {
			err = m.Flush()
		})
		assert.True(t, errors.IsNotValid(err), "offset=%d", offset)
	}

	m.EnableFramebuffer(0)
	assert.NoError(t, m.Flush())
}
