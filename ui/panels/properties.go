package panels

import (
	"fmt"
	"path/filepath"
	"strings"

	"vidstep/playback"
	"vidstep/video"

	"github.com/charmbracelet/lipgloss"
)

// SessionInfo is the static part of what the properties panel shows.
type SessionInfo struct {
	Path       string
	Properties *video.VideoProperties
	Renderer   string
	Decode     string
}

// Properties represents the video properties panel
type Properties struct {
	ctrl    *playback.Controller
	info    SessionInfo
	quality func() string
}

// NewProperties creates a new Properties panel. quality may be nil when the
// renderer has no quality presets.
func NewProperties(ctrl *playback.Controller, info SessionInfo, quality func() string) *Properties {
	return &Properties{
		ctrl:    ctrl,
		info:    info,
		quality: quality,
	}
}

// Render renders the properties panel
func (p *Properties) Render(width, height int) string {
	var lines []string

	labelStyle := lipgloss.NewStyle().Width(12)
	valueStyle := lipgloss.NewStyle().MaxWidth(max(1, width-12))

	addLine := func(label, value string) {
		line := labelStyle.Render(label) + valueStyle.Render(value)
		lines = append(lines, line)
	}

	addLine("File", filepath.Base(p.info.Path))
	if props := p.info.Properties; props != nil {
		addLine("Resolution", props.Resolution())
		addLine("Codec", props.Codec)
		addLine("FPS", props.FormattedFPS())
		if fps := p.ctrl.FPS(); fps > 0 && fps != props.FPS {
			addLine("Target FPS", fmt.Sprintf("%.2f fps", fps))
		}
		addLine("Bitrate", props.FormattedBitrate())
		addLine("Size", props.FormattedFileSize())
		addLine("Duration", props.FormattedDuration())
	}

	lines = append(lines, "", "Playback")
	w, h := p.ctrl.DisplaySize()
	display := fmt.Sprintf("%dx%d", w, h)
	if !p.ctrl.Resized() {
		display += " (native)"
	}
	addLine("Display", display)
	addLine("Mono", yesNo(p.ctrl.Monochrome()))
	addLine("Delay", p.ctrl.FrameDelay().String())
	addLine("Renderer", p.info.Renderer)
	if p.quality != nil {
		addLine("Quality", qualityStyle(p.quality()).Render(p.quality()))
	}
	if p.info.Decode != "" {
		addLine("Decode", p.info.Decode)
	}
	addLine("Frames", fmt.Sprintf("%d", p.ctrl.FramesShown()))
	history := p.ctrl.History()
	addLine("History", fmt.Sprintf("%d/%d", history.Len(), history.Cap()))

	content := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxHeight(height).
		Render(content)
}

func qualityStyle(quality string) lipgloss.Style {
	color := "243" // gray for LOW
	switch quality {
	case video.QualityMedium.String():
		color = "214" // orange
	case video.QualityHigh.String():
		color = "46" // green
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
