package framebuffer

// Provider reports framebuffer information for a screen.
type Provider struct {
	screen Screen
	config *Config
}

// NewProvider returns a provider for screen. A nil config uses [DefaultConfig].
func NewProvider(screen Screen, config *Config) *Provider {
	if config == nil {
		config = new(Config)
		*config = DefaultConfig
	}
	return &Provider{
		screen: screen,
		config: config,
	}
}

// Info queries the screen size and returns the framebuffer description. It logs the
// decoded geometry once per call.
func (p *Provider) Info() Info {
	info := newInfo(p.screen.ScreenSize())
	p.config.logf("Framebuffer width: %d height: %d", info.Width, info.Height)
	return info
}

// GetInfo returns the framebuffer description for screen, logging to the standard logger.
func GetInfo(screen Screen) Info {
	return NewProvider(screen, nil).Info()
}
