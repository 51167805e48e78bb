// Package config loads the framebuffer-test configuration file.
package config

import (
	"os"

	"github.com/hashicorp/hcl"
	"github.com/juju/errors"
)

// Config of the framebuffer-test command.
type Config struct {
	// Device is the fbdev path.
	Device string `hcl:"device"`

	// Tag for diagnostic messages.
	Tag string `hcl:"tag"`

	// Debug enables verbose logging.
	Debug bool `hcl:"debug"`

	// HoldSec is how long the test pattern is shown, 0 runs until interrupted.
	HoldSec int `hcl:"hold_sec"`

	// FPS is the mirror flush rate.
	FPS int `hcl:"fps"`

	Backlight struct {
		// Pin name as known to periph, empty for no backlight control.
		Pin       string `hcl:"pin"`
		ActiveLow bool   `hcl:"active_low"`
	} `hcl:"backlight"`

	Pattern struct {
		Label    bool    `hcl:"label"`
		FontSize float64 `hcl:"font_size"`
	} `hcl:"pattern"`
}

// Default configuration.
func Default() *Config {
	c := &Config{
		Device:  "/dev/fb0",
		Tag:     "framebuffer",
		HoldSec: 10,
		FPS:     20,
	}
	c.Pattern.Label = true
	c.Pattern.FontSize = 16
	return c
}

// Parse HCL source on top of the defaults.
func Parse(src []byte) (*Config, error) {
	c := Default()
	if err := hcl.Unmarshal(src, c); err != nil {
		return nil, errors.Annotatef(err, "config unmarshal content='%s'", string(src))
	}
	if err := c.validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return c, nil
}

// Load reads the file at path. A missing file is an error unless optional is set,
// in which case the defaults are returned.
func Load(path string, optional bool) (*Config, error) {
	src, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if optional {
			return Default(), nil
		}
		return nil, errors.NotFoundf("config path=%s", path)
	}
	if err != nil {
		return nil, errors.Annotatef(err, "config path=%s", path)
	}
	c, err := Parse(src)
	if err != nil {
		return nil, errors.Annotatef(err, "config path=%s", path)
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.Device == "" {
		return errors.NotValidf("empty device")
	}
	if c.HoldSec < 0 {
		return errors.NotValidf("hold_sec=%d", c.HoldSec)
	}
	if c.FPS <= 0 {
		return errors.NotValidf("fps=%d", c.FPS)
	}
	if c.Pattern.FontSize <= 0 {
		return errors.NotValidf("pattern font_size=%g", c.Pattern.FontSize)
	}
	return nil
}
