//go:build !linux

package fbdev

import "github.com/juju/errors"

// ErrNotSupported is returned by [Open] on systems without fbdev.
var ErrNotSupported = errors.New("fbdev: not supported")

func Open(_ string) (*Device, error) {
	return nil, ErrNotSupported
}

func (d *Device) Close() error {
	return nil
}
