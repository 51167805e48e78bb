// Package ioctl wraps the ioctl system call for device drivers.
package ioctl

import "fmt"

// Mode is the ioctl transfer direction.
type Mode uint8

// Modes
const (
	None Mode = iota
	Write
	Read
)

// Command to be sent over ioctl.
type Command uintptr

// Encode an ioctl command.
func Encode(mode Mode, size uint16, nr uintptr) Command {
	return Command(mode)<<30 | Command(size&0x3fff)<<16 | Command(nr&0xffff)
}

// Mode of the command; legacy commands such as FBIOGET_VSCREENINFO report None.
func (c Command) Mode() Mode {
	return Mode(c >> 30 & 0x03)
}

// Size of the argument in bytes.
func (c Command) Size() int {
	return int(c >> 16 & 0x3fff)
}

func (c Command) String() string {
	var str string
	if c.Mode()&Write > 0 {
		str += " write"
	}
	if c.Mode()&Read > 0 {
		str += " read"
	}
	return fmt.Sprintf("ioctl%s (%d bytes) 0x%04x", str, c.Size(), uintptr(c&0xffff))
}
