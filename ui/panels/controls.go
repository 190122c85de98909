package panels

import (
	"strings"

	"vidstep/playback"

	"github.com/charmbracelet/lipgloss"
)

// Action is a user command triggered from the controls panel.
type Action int

const (
	ActionNone Action = iota
	ActionPlay
	ActionPause
	ActionStepBack
)

type button struct {
	label  string
	action Action
}

var buttons = []button{
	{"Play", ActionPlay},
	{"Pause", ActionPause},
	{"Reverse Frame", ActionStepBack},
}

const buttonGap = 2

var (
	buttonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("237"))

	activeButtonStyle = buttonStyle.
				Foreground(lipgloss.Color("16")).
				Background(lipgloss.Color("46"))

	pendingButtonStyle = buttonStyle.
				Foreground(lipgloss.Color("16")).
				Background(lipgloss.Color("214"))

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Controls shows the Play, Pause and Reverse Frame buttons with a status line.
type Controls struct {
	ctrl *playback.Controller
	help string
}

func NewControls(ctrl *playback.Controller) *Controls {
	return &Controls{ctrl: ctrl}
}

// SetHelp sets the one-line key help shown under the buttons.
func (c *Controls) SetHelp(help string) {
	c.help = help
}

func (c *Controls) Render(width, height int) string {
	var row []string
	for i, b := range buttons {
		if i > 0 {
			row = append(row, strings.Repeat(" ", buttonGap))
		}
		row = append(row, c.styleFor(b.action).Render(b.label))
	}

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, row...),
		c.status(),
		c.help,
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxHeight(height).
		Render(strings.Join(lines, "\n"))
}

func (c *Controls) styleFor(a Action) lipgloss.Style {
	switch a {
	case ActionPlay:
		if c.ctrl.State() == playback.Advancing {
			return activeButtonStyle
		}
	case ActionPause:
		if c.ctrl.PauseRequested() {
			return pendingButtonStyle
		}
	case ActionStepBack:
		if c.ctrl.StepBackRequested() {
			return pendingButtonStyle
		}
	}
	return buttonStyle
}

func (c *Controls) status() string {
	switch {
	case c.ctrl.Err() != nil:
		return errorStyle.Render("⚠ source unavailable")
	case c.ctrl.State() == playback.Advancing:
		return statusStyle.Render("▶ playing")
	case c.ctrl.Ended():
		return statusStyle.Render("⏹ end of stream")
	case c.ctrl.FramesShown() > 0:
		return statusStyle.Render("❚❚ paused")
	default:
		return statusStyle.Render("○ ready")
	}
}

// HitTest maps a position relative to the panel content to the button under
// it, if any.
func (c *Controls) HitTest(x, y int) Action {
	if y != 0 || x < 0 {
		return ActionNone
	}
	left := 0
	for _, b := range buttons {
		w := lipgloss.Width(buttonStyle.Render(b.label))
		if x >= left && x < left+w {
			return b.action
		}
		left += w + buttonGap
	}
	return ActionNone
}
