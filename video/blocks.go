package video

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// BlockRenderer draws frames with upper half block characters, two pixel
// rows per terminal row. It needs no external tools.
type BlockRenderer struct{}

func NewBlockRenderer() *BlockRenderer {
	return &BlockRenderer{}
}

func (r *BlockRenderer) Name() string {
	return "blocks"
}

func (r *BlockRenderer) CreateSurface(width, height int) *Surface {
	return NewSurface(width, height)
}

func (r *BlockRenderer) DrawImage(s *Surface, img image.Image, x, y int) error {
	cols, rows := s.Cells()
	cols, rows = max(1, cols-x), max(1, rows-y)

	scaled := Resize(img, cols, rows*2)
	b := scaled.Bounds()

	var sb strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < cols; col++ {
			top := hexAt(scaled, b.Min.X+col, b.Min.Y+row*2)
			bottom := hexAt(scaled, b.Min.X+col, b.Min.Y+row*2+1)
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render("▀"))
		}
	}

	s.put(img, offsetContent(sb.String(), x, y))
	return nil
}

func hexAt(img image.Image, x, y int) string {
	c, ok := colorful.MakeColor(img.At(x, y))
	if !ok {
		return "#000000"
	}
	return c.Hex()
}
