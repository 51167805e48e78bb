package framebuffer

import (
	"log"

	"periph.io/x/conn/v3/gpio"
)

// Backlight switches a display backlight with the framebuffer: on when the
// framebuffer is enabled and off when it is disabled.
type Backlight struct {
	// Pin drives the backlight.
	Pin gpio.PinOut

	// ActiveLow inverts the pin level.
	ActiveLow bool
}

// EnableFramebuffer turns the backlight on.
func (b Backlight) EnableFramebuffer(_ int) {
	b.set(true)
}

// DisableFramebuffer turns the backlight off.
func (b Backlight) DisableFramebuffer() {
	b.set(false)
}

func (b Backlight) set(on bool) {
	if b.Pin == nil || b.Pin == gpio.INVALID {
		if debug {
			log.Println("framebuffer: no backlight control")
		}
		return
	}
	level := gpio.Level(on != b.ActiveLow)
	if err := b.Pin.Out(level); err != nil {
		log.Printf("framebuffer: backlight %s to %s: %v", b.Pin, level, err)
	}
}
