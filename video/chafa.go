package video

import (
	"bytes"
	"fmt"
	"image"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/image/bmp"
)

type QualityPreset int

const (
	QualityLow QualityPreset = iota
	QualityMedium
	QualityHigh
)

func (q QualityPreset) String() string {
	switch q {
	case QualityLow:
		return "LOW"
	case QualityMedium:
		return "MEDIUM"
	case QualityHigh:
		return "HIGH"
	}
	return "UNKNOWN"
}

func (q QualityPreset) Next() QualityPreset {
	return (q + 1) % 3
}

// ParseQuality accepts low, medium or high in any case.
func ParseQuality(s string) (QualityPreset, error) {
	switch strings.ToLower(s) {
	case "low":
		return QualityLow, nil
	case "medium":
		return QualityMedium, nil
	case "high", "":
		return QualityHigh, nil
	}
	return QualityHigh, fmt.Errorf("unknown quality %q", s)
}

type ChafaConfig struct {
	Colors         string
	Optimize       int
	Work           int
	ColorSpace     string
	Dither         string
	ColorExtractor string
}

var ChafaPresets = map[QualityPreset]ChafaConfig{
	QualityLow: {
		Colors: "256", Optimize: 9, Work: 1,
		ColorSpace: "rgb", Dither: "none", ColorExtractor: "average",
	},
	QualityMedium: {
		Colors: "256", Optimize: 5, Work: 5,
		ColorSpace: "rgb", Dither: "ordered", ColorExtractor: "average",
	},
	QualityHigh: {
		Colors: "full", Optimize: 3, Work: 9,
		ColorSpace: "din99d", Dither: "diffusion", ColorExtractor: "median",
	},
}

func (c ChafaConfig) BuildArgs(width, height int) []string {
	return []string{
		"--format=symbols",
		"--size", fmt.Sprintf("%dx%d", width, height),
		"--colors", c.Colors,
		"-O", strconv.Itoa(c.Optimize),
		"--work", strconv.Itoa(c.Work),
		"--color-space", c.ColorSpace,
		"--dither", c.Dither,
		"--color-extractor", c.ColorExtractor,
		"-",
	}
}

// ChafaRenderer turns frames into terminal symbols by piping them through
// the chafa tool as BMP images.
type ChafaRenderer struct {
	mu      sync.Mutex
	quality QualityPreset
}

func NewChafaRenderer(quality QualityPreset) *ChafaRenderer {
	return &ChafaRenderer{quality: quality}
}

func (r *ChafaRenderer) Name() string {
	return "chafa"
}

func (r *ChafaRenderer) CreateSurface(width, height int) *Surface {
	return NewSurface(width, height)
}

func (r *ChafaRenderer) DrawImage(s *Surface, img image.Image, x, y int) error {
	cols, rows := s.Cells()
	cols, rows = max(1, cols-x), max(1, rows-y)

	var frame bytes.Buffer
	if err := bmp.Encode(&frame, img); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}

	config := ChafaPresets[r.Quality()]
	chafaCmd := exec.Command("chafa", config.BuildArgs(cols, rows)...)
	chafaCmd.Stdin = &frame

	var chafaOut, chafaErr bytes.Buffer
	chafaCmd.Stdout = &chafaOut
	chafaCmd.Stderr = &chafaErr

	if err := chafaCmd.Run(); err != nil {
		return fmt.Errorf("chafa: %w: %s", err, strings.TrimSpace(chafaErr.String()))
	}

	s.put(img, offsetContent(strings.TrimRight(chafaOut.String(), "\n"), x, y))
	return nil
}

func (r *ChafaRenderer) Quality() QualityPreset {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.quality
}

func (r *ChafaRenderer) CycleQuality() QualityPreset {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quality = r.quality.Next()
	return r.quality
}
