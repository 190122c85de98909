// Package config loads vidstep settings from a TOML file, the environment
// and command-line flags, in that order of precedence.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds every playback and presentation setting.
type Config struct {
	// Path is the video file. It comes from the command line only.
	Path string `toml:"-"`

	FPS         float64 `toml:"fps"`
	Width       int     `toml:"width"`
	Height      int     `toml:"height"`
	Monochrome  bool    `toml:"monochrome"`
	DelayMs     int     `toml:"delay_ms"`
	HistorySize int     `toml:"history_size"`

	Renderer string `toml:"renderer"`
	Quality  string `toml:"quality"`
	HWAccel  bool   `toml:"hwaccel"`

	Debug   bool   `toml:"debug"`
	LogFile string `toml:"log_file"`
}

// Load reads configuration from standard locations with environment overrides.
// Search order: $XDG_CONFIG_HOME/vidstep/config.toml, ~/.config/vidstep/config.toml, ~/.vidsteprc
func Load() (*Config, error) {
	cfg := &Config{}

	path := findConfigFile()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

func findConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}

	paths := []string{
		filepath.Join(xdgConfig, "vidstep", "config.toml"),
		filepath.Join(home, ".vidsteprc"),
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("VIDSTEP_FPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.FPS = f
		}
	}
	if v := os.Getenv("VIDSTEP_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.DelayMs = n
		}
	}
	if v := os.Getenv("VIDSTEP_MONOCHROME"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Monochrome = b
		}
	}
	if v := os.Getenv("VIDSTEP_RENDERER"); v != "" {
		cfg.Renderer = v
	}
	if v := os.Getenv("VIDSTEP_QUALITY"); v != "" {
		cfg.Quality = v
	}
	if v := os.Getenv("VIDSTEP_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if os.Getenv("VIDSTEP_DEBUG") == "1" {
		cfg.Debug = true
	}
}

// FrameDelay is the fixed interval between advance steps.
func (c *Config) FrameDelay() time.Duration {
	return time.Duration(c.DelayMs) * time.Millisecond
}

// HasDisplayResolution reports whether frames are scaled to a fixed size.
func (c *Config) HasDisplayResolution() bool {
	return c.Width > 0 && c.Height > 0
}
