package config

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		DelayMs:     10,
		HistorySize: 8,
		Renderer:    "auto",
		Quality:     "high",
	}
}

// ApplyDefaults fills in zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	d := Default()

	if c.DelayMs == 0 {
		c.DelayMs = d.DelayMs
	}
	if c.HistorySize == 0 {
		c.HistorySize = d.HistorySize
	}
	if c.Renderer == "" {
		c.Renderer = d.Renderer
	}
	if c.Quality == "" {
		c.Quality = d.Quality
	}
}
