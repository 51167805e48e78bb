package ioctl

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Pointer issues command on fd with a pointer argument, typically a struct the
// kernel fills in.
func Pointer(fd int, command Command, ptr unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(command), uintptr(ptr))
	if errno != 0 {
		return &os.SyscallError{
			Syscall: command.String(),
			Err:     errno,
		}
	}
	return nil
}
