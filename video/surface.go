package video

import (
	"image"
	"strings"
	"sync"
)

// Surface is the drawing target a renderer paints frames into. Its pixel
// size is fixed at creation; the terminal cell area it is shown in can
// change with the window.
type Surface struct {
	Width  int
	Height int

	mu      sync.Mutex
	cols    int
	rows    int
	content string
	last    image.Image
}

func NewSurface(width, height int) *Surface {
	return &Surface{Width: width, Height: height}
}

// SetCells sets the cell area and reports whether it changed.
func (s *Surface) SetCells(cols, rows int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cols == cols && s.rows == rows {
		return false
	}
	s.cols, s.rows = cols, rows
	return true
}

// Cells returns the cell area, falling back to one derived from the pixel
// size when none was set.
func (s *Surface) Cells() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cols > 0 && s.rows > 0 {
		return s.cols, s.rows
	}
	return max(1, s.Width/8), max(1, s.Height/16)
}

func (s *Surface) Content() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.content
}

// Image returns the frame last drawn, or nil.
func (s *Surface) Image() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *Surface) put(img image.Image, content string) {
	s.mu.Lock()
	s.last = img
	s.content = content
	s.mu.Unlock()
}

// offsetContent shifts rendered text right by x cells and down by y rows.
func offsetContent(content string, x, y int) string {
	if x <= 0 && y <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	if x > 0 {
		pad := strings.Repeat(" ", x)
		for i, line := range lines {
			lines[i] = pad + line
		}
	}
	if y > 0 {
		lines = append(make([]string, y), lines...)
	}
	return strings.Join(lines, "\n")
}
