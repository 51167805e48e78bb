package fbdev

import (
	"unsafe"

	"github.com/juju/errors"
	"golang.org/x/sys/unix"

	"github.com/BeatGlow/framebuffer/internal/ioctl"
)

// From <linux/fb.h>
const (
	fbioGetVScreenInfo ioctl.Command = 0x4600
	fbioGetFScreenInfo ioctl.Command = 0x4602
)

// Open a Linux framebuffer device by name, typically /dev/fb[0..x], and map its memory.
func Open(name string) (*Device, error) {
	fd, err := unix.Open(name, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, errors.Annotatef(err, "open %s", name)
	}

	d := &Device{
		name: name,
		fd:   fd,
	}
	if err = ioctl.Pointer(fd, fbioGetFScreenInfo, unsafe.Pointer(&d.fixed)); err != nil {
		_ = unix.Close(fd)
		return nil, errors.Annotatef(err, "%s fixed screen info", name)
	}
	if err = ioctl.Pointer(fd, fbioGetVScreenInfo, unsafe.Pointer(&d.vinfo)); err != nil {
		_ = unix.Close(fd)
		return nil, errors.Annotatef(err, "%s variable screen info", name)
	}

	if d.mem, err = unix.Mmap(fd, 0, int(d.fixed.SmemLen), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED); err != nil {
		_ = unix.Close(fd)
		return nil, errors.Annotatef(err, "mmap %s", name)
	}
	return d, nil
}

// Close unmaps the device memory and closes the device.
func (d *Device) Close() error {
	if d.mem != nil {
		if err := unix.Munmap(d.mem); err != nil {
			return errors.Trace(err)
		}
		d.mem = nil
	}
	return errors.Trace(unix.Close(d.fd))
}
