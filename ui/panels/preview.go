package panels

import (
	"vidstep/playback"

	"github.com/charmbracelet/lipgloss"
)

// Preview represents the video preview panel
type Preview struct {
	ctrl *playback.Controller
}

// NewPreview creates a new Preview panel
func NewPreview(ctrl *playback.Controller) *Preview {
	return &Preview{
		ctrl: ctrl,
	}
}

// Render renders the preview panel. Frames are anchored at the top-left
// corner of the panel.
func (p *Preview) Render(width, height int) string {
	frame := p.ctrl.Surface().Content()

	if frame == "" {
		placeholder := "Press p to play"
		switch {
		case p.ctrl.Err() != nil:
			placeholder = "No video"
		case p.ctrl.Ended():
			placeholder = "End of stream"
		}
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(placeholder)
	}

	if p.ctrl.Ended() && height > 1 {
		status := lipgloss.NewStyle().
			Width(width).
			Foreground(lipgloss.Color("241")).
			Render("End of stream")
		return lipgloss.JoinVertical(lipgloss.Left, fit(frame, width, height-1), status)
	}

	return fit(frame, width, height)
}

func fit(content string, width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxWidth(width).
		MaxHeight(height).
		Render(content)
}
