package video

import (
	"fmt"
	"image"
	"os/exec"
)

// Renderer paints frames into a surface.
type Renderer interface {
	Name() string
	CreateSurface(width, height int) *Surface
	DrawImage(s *Surface, img image.Image, x, y int) error
}

func CheckDependencies() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return fmt.Errorf("%w: ffmpeg. Install: brew install ffmpeg", ErrDependencyMissing)
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return fmt.Errorf("%w: ffprobe. Install: brew install ffmpeg", ErrDependencyMissing)
	}
	return nil
}

// NewRenderer picks a renderer by name. "auto" prefers chafa when it is
// installed and falls back to half blocks.
func NewRenderer(kind string, quality QualityPreset) (Renderer, error) {
	switch kind {
	case "chafa":
		if _, err := exec.LookPath("chafa"); err != nil {
			return nil, fmt.Errorf("%w: chafa. Install: brew install chafa", ErrDependencyMissing)
		}
		return NewChafaRenderer(quality), nil
	case "blocks":
		return NewBlockRenderer(), nil
	case "auto", "":
		if _, err := exec.LookPath("chafa"); err == nil {
			return NewChafaRenderer(quality), nil
		}
		LogInfo("chafa not found, using block renderer")
		return NewBlockRenderer(), nil
	}
	return nil, fmt.Errorf("unknown renderer %q", kind)
}
