package ui

import (
	"strings"

	"vidstep/playback"
	"vidstep/ui/panels"
	"vidstep/video"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// qualityCycler is implemented by renderers with quality presets.
type qualityCycler interface {
	Quality() video.QualityPreset
	CycleQuality() video.QualityPreset
}

type Model struct {
	width      int
	height     int
	ctrl       *playback.Controller
	sched      *Scheduler
	notice     *Notice
	renderer   playback.Renderer
	preview    *panels.Preview
	properties *panels.Properties
	controls   *panels.Controls
	help       help.Model
	ready      bool

	showHelpModal bool
}

// NewModel wires a controller to the terminal. sched and notice must be the
// scheduler and notifier the controller was opened with.
func NewModel(ctrl *playback.Controller, sched *Scheduler, notice *Notice, renderer playback.Renderer, info panels.SessionInfo) Model {
	var quality func() string
	if q, ok := renderer.(qualityCycler); ok {
		quality = func() string { return q.Quality().String() }
	}
	return Model{
		ctrl:       ctrl,
		sched:      sched,
		notice:     notice,
		renderer:   renderer,
		preview:    panels.NewPreview(ctrl),
		properties: panels.NewProperties(ctrl, info, quality),
		controls:   panels.NewControls(ctrl),
		help:       help.New(),
		ready:      false,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AdvanceMsg:
		m.sched.Fire(msg.ID)
		return m, m.sched.Flush()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		dims := CalculatePanelDimensions(m.width, m.height)
		m.resizeSurface(dims.PreviewContentWidth, dims.PreviewContentHeight)
		return m, nil

	case tea.MouseMsg:
		if m.notice.Visible() || m.showHelpModal {
			return m, nil
		}
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		dims := CalculatePanelDimensions(m.width, m.height)
		action := m.controls.HitTest(msg.X-dims.ControlsContentX, msg.Y-dims.ControlsContentY)
		m.apply(action)
		return m, m.sched.Flush()

	case tea.KeyMsg:
		if m.notice.Visible() {
			return m.handleNoticeKey(msg)
		}
		if m.showHelpModal {
			return m.handleHelpModalKey(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			m.ctrl.Close()
			return m, tea.Quit
		case key.Matches(msg, keys.Play):
			m.apply(panels.ActionPlay)
		case key.Matches(msg, keys.Pause):
			m.apply(panels.ActionPause)
		case key.Matches(msg, keys.Toggle):
			if m.ctrl.State() == playback.Advancing {
				m.apply(panels.ActionPause)
			} else {
				m.apply(panels.ActionPlay)
			}
		case key.Matches(msg, keys.StepBack):
			m.apply(panels.ActionStepBack)
		case key.Matches(msg, keys.Quality):
			m.cycleQuality()
		case key.Matches(msg, keys.Help):
			m.showHelpModal = true
		}
		return m, m.sched.Flush()
	}

	return m, nil
}

func (m Model) apply(action panels.Action) {
	switch action {
	case panels.ActionPlay:
		m.ctrl.Play()
	case panels.ActionPause:
		m.ctrl.Pause()
	case panels.ActionStepBack:
		m.ctrl.StepBack()
	}
}

// resizeSurface fits the surface to the preview area and repaints the last
// frame at the new size.
func (m Model) resizeSurface(cols, rows int) {
	surface := m.ctrl.Surface()
	if cols <= 0 || rows <= 0 || !surface.SetCells(cols, rows) {
		return
	}
	if img := surface.Image(); img != nil {
		if err := m.renderer.DrawImage(surface, img, 0, 0); err != nil {
			video.LogWarn("redraw after resize: %v", err)
		}
	}
}

func (m Model) cycleQuality() {
	q, ok := m.renderer.(qualityCycler)
	if !ok {
		return
	}
	q.CycleQuality()
	surface := m.ctrl.Surface()
	if img := surface.Image(); img != nil {
		if err := m.renderer.DrawImage(surface, img, 0, 0); err != nil {
			video.LogWarn("redraw after quality change: %v", err)
		}
	}
}

func renderPanel(content, title string, width, height int) string {
	innerWidth := width - 2
	innerHeight := height - 2

	// Combine title and content only if title provided
	inner := content
	if strings.TrimSpace(title) != "" {
		inner = title + "\n" + content
	}
	lines := strings.Split(inner, "\n")
	for len(lines) < innerHeight {
		lines = append(lines, "")
	}
	paddedContent := strings.Join(lines[:innerHeight], "\n")

	return BorderStyle.
		Width(innerWidth).
		Height(innerHeight).
		Render(paddedContent)
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	dims := CalculatePanelDimensions(m.width, m.height)

	if dims.PreviewContentWidth < minPanelWidth || dims.PreviewContentHeight < minPanelHeight {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("Terminal too small")
	}

	previewContent := m.preview.Render(dims.PreviewContentWidth, dims.PreviewContentHeight)
	previewPanel := renderPanel(previewContent, "", dims.PreviewWidth, dims.PreviewHeight)

	propertiesContent := m.properties.Render(dims.PropertiesContentWidth, dims.PropertiesContentHeight-1)
	propertiesPanel := renderPanel(propertiesContent, FormatTitle("Properties"), dims.PropertiesWidth, dims.PropertiesHeight)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, previewPanel, propertiesPanel)

	m.controls.SetHelp(m.help.View(keys))
	controlsContent := m.controls.Render(dims.ControlsContentWidth, dims.ControlsContentHeight)
	controlsPanel := renderPanel(controlsContent, "", dims.ControlsWidth, dims.ControlsHeight)

	base := lipgloss.JoinVertical(lipgloss.Left, topRow, controlsPanel)

	if m.notice.Visible() {
		return m.renderNotice()
	}
	if m.showHelpModal {
		return m.renderHelpModal()
	}

	return base
}

func (m Model) handleNoticeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", " ":
		m.notice.Dismiss()
	case "ctrl+c":
		m.ctrl.Close()
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleHelpModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?", "esc", "q", "enter", " ":
		m.showHelpModal = false
		return m, nil
	}
	return m, nil
}

func (m Model) renderNotice() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("196")).
		Render(m.notice.Title)

	modal := errorModalStyle.
		Width(60).
		Render(title + "\n\n" + m.notice.Message + "\n\n[enter] OK")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func (m Model) renderHelpModal() string {
	full := m.help
	full.ShowAll = true

	title := lipgloss.NewStyle().
		Bold(true).
		Render("Help")

	content := full.View(keys) + "\n\nMouse     Click Play, Pause or Reverse Frame\n\n[?] or [Esc] to close"

	modal := modalStyle.
		Width(60).
		Render(title + "\n\n" + content)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
