package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.FPS < 0 {
		errs = append(errs, errors.New("fps must be non-negative"))
	}
	if c.Width < 0 || c.Height < 0 {
		errs = append(errs, errors.New("width and height must be non-negative"))
	}
	if (c.Width > 0) != (c.Height > 0) {
		errs = append(errs, errors.New("width and height must be set together"))
	}
	if c.DelayMs <= 0 {
		errs = append(errs, errors.New("delay_ms must be positive"))
	}
	if c.HistorySize <= 0 {
		errs = append(errs, errors.New("history_size must be positive"))
	}

	switch c.Renderer {
	case "auto", "chafa", "blocks":
		// valid
	default:
		errs = append(errs, fmt.Errorf("invalid renderer %q (auto, chafa, blocks)", c.Renderer))
	}

	switch strings.ToLower(c.Quality) {
	case "low", "medium", "high":
		// valid
	default:
		errs = append(errs, fmt.Errorf("invalid quality %q (low, medium, high)", c.Quality))
	}

	return errors.Join(errs...)
}

// ParseSize parses a WIDTHxHEIGHT display resolution such as "400x400".
func ParseSize(s string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q, want WIDTHxHEIGHT", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("invalid width in %q", s)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("invalid height in %q", s)
	}
	return width, height, nil
}
