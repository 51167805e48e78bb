package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	c, err := Parse([]byte(`
device = "/dev/fb1"
tag = "JNI"
hold_sec = 0
backlight {
  pin = "GPIO19"
  active_low = true
}
pattern {
  label = false
}
`))
	require.NoError(t, err)
	assert.Equal(t, "/dev/fb1", c.Device)
	assert.Equal(t, "JNI", c.Tag)
	assert.Equal(t, 0, c.HoldSec)
	assert.Equal(t, 20, c.FPS)
	assert.Equal(t, "GPIO19", c.Backlight.Pin)
	assert.True(t, c.Backlight.ActiveLow)
	assert.False(t, c.Pattern.Label)
	assert.Equal(t, 16.0, c.Pattern.FontSize)
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		src  string
	}{
		{"syntax", `device = "unterminated`},
		{"block", `backlight {`},
		{"device", `device = ""`},
		{"fps", `fps = 0`},
		{"hold", `hold_sec = -1`},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.src))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "framebuffer.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`fps = 5`), 0o600))

	c, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, 5, c.FPS)
	assert.Equal(t, "/dev/fb0", c.Device)

	missing := filepath.Join(dir, "missing.hcl")
	_, err = Load(missing, false)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	c, err = Load(missing, true)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}
