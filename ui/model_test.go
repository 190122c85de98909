package ui

import (
	"io"
	"strings"
	"testing"

	"vidstep/playback"
	"vidstep/ui/panels"
	"vidstep/video"

	tea "github.com/charmbracelet/bubbletea"
)

type stubSource struct {
	remaining int
	released  bool
}

func (s *stubSource) IsOpen() bool { return !s.released }

func (s *stubSource) Read() (*video.NativeFrame, error) {
	if s.remaining == 0 {
		return nil, io.EOF
	}
	s.remaining--
	return &video.NativeFrame{Width: 16, Height: 8, Pix: make([]byte, 16*8*3)}, nil
}

func (s *stubSource) Property(p video.Property) float64 {
	switch p {
	case video.PropFrameWidth:
		return 16
	case video.PropFrameHeight:
		return 8
	}
	return 25
}

func (s *stubSource) SetProperty(video.Property, float64) error { return nil }

func (s *stubSource) Release() { s.released = true }

func newTestModel(t *testing.T, open playback.Opener) (Model, *playback.Controller, *Scheduler, *Notice) {
	t.Helper()
	sched := NewScheduler()
	notice := NewNotice()
	renderer := video.NewBlockRenderer()
	ctrl := playback.Open("clip.mp4", open, playback.Config{}, renderer, sched, notice)
	m := NewModel(ctrl, sched, notice, renderer, panels.SessionInfo{Path: "clip.mp4", Renderer: renderer.Name()})
	return m, ctrl, sched, notice
}

func openStub(src *stubSource) playback.Opener {
	return func(string) (playback.Source, error) { return src, nil }
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestPlayKeySchedulesAdvance(t *testing.T) {
	m, ctrl, sched, _ := newTestModel(t, openStub(&stubSource{remaining: 5}))

	m, cmd := update(t, m, runes("p"))

	if ctrl.State() != playback.Advancing {
		t.Errorf("State = %v, want advancing", ctrl.State())
	}
	if cmd == nil {
		t.Error("expected a tick command")
	}
	if sched.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", sched.Pending())
	}

	_, _ = update(t, m, AdvanceMsg{ID: 1})
	if ctrl.FramesShown() != 2 {
		t.Errorf("FramesShown = %d, want 2", ctrl.FramesShown())
	}
}

func TestPauseKeyStopsOnNextTick(t *testing.T) {
	m, ctrl, sched, _ := newTestModel(t, openStub(&stubSource{remaining: 5}))

	m, _ = update(t, m, runes("p"))
	m, _ = update(t, m, runes("s"))
	m, cmd := update(t, m, AdvanceMsg{ID: 1})

	if ctrl.State() != playback.Idle {
		t.Errorf("State = %v, want idle", ctrl.State())
	}
	if cmd != nil {
		t.Error("a tick was scheduled after pause")
	}
	if sched.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", sched.Pending())
	}
}

func TestStaleAdvanceIsIgnored(t *testing.T) {
	m, ctrl, _, _ := newTestModel(t, openStub(&stubSource{remaining: 5}))

	m, _ = update(t, m, AdvanceMsg{ID: 42})

	if ctrl.FramesShown() != 0 {
		t.Errorf("FramesShown = %d, want 0", ctrl.FramesShown())
	}
}

func TestSpaceTogglesPlayback(t *testing.T) {
	m, ctrl, _, _ := newTestModel(t, openStub(&stubSource{remaining: 5}))
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}

	m, _ = update(t, m, space)
	if ctrl.State() != playback.Advancing {
		t.Fatalf("State = %v, want advancing", ctrl.State())
	}
	m, _ = update(t, m, space)
	if !ctrl.PauseRequested() {
		t.Error("second space did not request a pause")
	}
}

func TestReverseKeyLatchesStepBack(t *testing.T) {
	m, ctrl, _, _ := newTestModel(t, openStub(&stubSource{remaining: 5}))

	m, _ = update(t, m, runes("p"))
	m, _ = update(t, m, runes("r"))
	if !ctrl.StepBackRequested() {
		t.Fatal("r did not request a step back")
	}
	before := ctrl.History().Len()

	_, _ = update(t, m, AdvanceMsg{ID: 1})
	if ctrl.History().Len() != before {
		t.Errorf("history len = %d, want %d", ctrl.History().Len(), before)
	}
}

func TestNoticeBlocksInputUntilDismissed(t *testing.T) {
	open := func(path string) (playback.Source, error) {
		return nil, video.ErrSourceUnavailable
	}
	m, ctrl, sched, notice := newTestModel(t, open)

	if !notice.Visible() || notice.Count() != 1 {
		t.Fatalf("notice visible = %v count = %d", notice.Visible(), notice.Count())
	}

	m, _ = update(t, m, runes("p"))
	if ctrl.FramesShown() != 0 || sched.Pending() != 0 {
		t.Error("input reached the controller while the notice was shown")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if notice.Visible() {
		t.Error("enter did not dismiss the notice")
	}

	// Playing a missing file does not raise the dialog again.
	_, _ = update(t, m, runes("p"))
	if notice.Count() != 1 {
		t.Errorf("Count = %d, want 1", notice.Count())
	}
	if ctrl.State() != playback.Idle {
		t.Errorf("State = %v, want idle", ctrl.State())
	}
}

func TestMouseClickPressesButton(t *testing.T) {
	m, ctrl, _, _ := newTestModel(t, openStub(&stubSource{remaining: 5}))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	dims := CalculatePanelDimensions(120, 40)

	click := tea.MouseMsg{
		X:      dims.ControlsContentX + 1,
		Y:      dims.ControlsContentY,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}
	_, cmd := update(t, m, click)

	if ctrl.State() != playback.Advancing {
		t.Errorf("State = %v, want advancing", ctrl.State())
	}
	if cmd == nil {
		t.Error("expected a tick command")
	}
}

func TestQuitReleasesSource(t *testing.T) {
	src := &stubSource{remaining: 5}
	m, _, sched, _ := newTestModel(t, openStub(src))

	m, _ = update(t, m, runes("p"))
	_, cmd := update(t, m, runes("q"))

	if cmd == nil {
		t.Fatal("expected tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
	if !src.released {
		t.Error("source not released on quit")
	}
	if sched.Pending() != 0 {
		t.Errorf("Pending = %d after quit", sched.Pending())
	}
}

func TestViewShowsControls(t *testing.T) {
	m, _, _, _ := newTestModel(t, openStub(&stubSource{remaining: 5}))

	if got := m.View(); got != "Initializing..." {
		t.Errorf("View before size = %q", got)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	view := m.View()
	for _, want := range []string{"Play", "Pause", "Reverse Frame", "clip.mp4", "Press p to play"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m, _ = update(t, m, runes("p"))
	if strings.Contains(m.View(), "Press p to play") {
		t.Error("placeholder still shown after the first frame")
	}
}

func TestViewTooSmall(t *testing.T) {
	m, _, _, _ := newTestModel(t, openStub(&stubSource{}))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 8})

	if !strings.Contains(m.View(), "Terminal too small") {
		t.Error("expected the too-small message")
	}
}

func TestHelpModal(t *testing.T) {
	m, ctrl, _, _ := newTestModel(t, openStub(&stubSource{remaining: 5}))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	m, _ = update(t, m, runes("?"))
	if !strings.Contains(m.View(), "reverse frame") {
		t.Error("help modal does not list the reverse frame key")
	}

	m, _ = update(t, m, runes("p"))
	if ctrl.FramesShown() != 0 {
		t.Error("keys reached the controller while help was open")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = update(t, m, runes("p"))
	if ctrl.FramesShown() != 1 {
		t.Errorf("FramesShown = %d, want 1", ctrl.FramesShown())
	}
}
