package framebuffer

import (
	"errors"
	"fmt"
	"log"
	"reflect"
)

// Bridge errors.
var (
	ErrUnresolved = errors.New("framebuffer: callback method not found")
)

// Enabler is a host object that maps the framebuffer for display.
type Enabler interface {
	// EnableFramebuffer is called with the framebuffer offset relative to the start
	// of the host's memory region.
	EnableFramebuffer(offset int)
}

// Disabler is a host object that stops displaying the framebuffer.
type Disabler interface {
	DisableFramebuffer()
}

// Target implements both callbacks.
type Target interface {
	Enabler
	Disabler
}

// Enable computes the offset of data within the region starting at memStart and
// passes it to handle. It returns false, without calling anything, if handle is not
// an [Enabler] or is a nil pointer.
func Enable(data, memStart uintptr, handle interface{}) bool {
	return enable(nil, data, memStart, handle)
}

// Disable asks handle to stop displaying the framebuffer. It returns false if handle
// is not a [Disabler] or is a nil pointer.
func Disable(handle interface{}) bool {
	return disable(handle)
}

func enable(config *Config, data, memStart uintptr, handle interface{}) bool {
	offset := int(data) - int(memStart)
	config.logf("Framebuffer data: %d", offset)

	e, ok := handle.(Enabler)
	if !ok || isNil(handle) {
		if debug {
			log.Printf("framebuffer: %T has no EnableFramebuffer(int) method", handle)
		}
		return false
	}
	e.EnableFramebuffer(offset)
	return true
}

func disable(handle interface{}) bool {
	d, ok := handle.(Disabler)
	if !ok || isNil(handle) {
		if debug {
			log.Printf("framebuffer: %T has no DisableFramebuffer() method", handle)
		}
		return false
	}
	d.DisableFramebuffer()
	return true
}

// isNil reports whether handle is nil or a nil pointer, map, slice, func, channel
// or interface wrapped in a non-nil interface.
func isNil(handle interface{}) bool {
	if handle == nil {
		return true
	}
	switch v := reflect.ValueOf(handle); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Bridge forwards enable and disable calls to a host object whose callbacks were
// resolved when the bridge was bound.
type Bridge struct {
	target Target
	config *Config
}

// Bind resolves both callbacks on handle. A nil config uses [DefaultConfig].
func Bind(handle interface{}, config *Config) (*Bridge, error) {
	if isNil(handle) {
		return nil, fmt.Errorf("%w: nil %T has no EnableFramebuffer(int)", ErrUnresolved, handle)
	}
	if _, ok := handle.(Enabler); !ok {
		return nil, fmt.Errorf("%w: %T.EnableFramebuffer(int)", ErrUnresolved, handle)
	}
	if _, ok := handle.(Disabler); !ok {
		return nil, fmt.Errorf("%w: %T.DisableFramebuffer()", ErrUnresolved, handle)
	}
	if config == nil {
		config = new(Config)
		*config = DefaultConfig
	}
	return &Bridge{
		target: handle.(Target),
		config: config,
	}, nil
}

// Enable the framebuffer at data, relative to memStart.
func (b *Bridge) Enable(data, memStart uintptr) {
	enable(b.config, data, memStart, b.target)
}

// Disable the framebuffer.
func (b *Bridge) Disable() {
	disable(b.target)
}

func (b *Bridge) String() string {
	return fmt.Sprintf("bridge to %T", b.target)
}

// Targets fans callbacks out to several targets, in order.
type Targets []Target

// EnableFramebuffer calls every target.
func (ts Targets) EnableFramebuffer(offset int) {
	for _, t := range ts {
		t.EnableFramebuffer(offset)
	}
}

// DisableFramebuffer calls every target, in reverse order.
func (ts Targets) DisableFramebuffer() {
	for i := len(ts) - 1; i >= 0; i-- {
		ts[i].DisableFramebuffer()
	}
}
