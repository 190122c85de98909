package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Play     key.Binding
	Pause    key.Binding
	Toggle   key.Binding
	StepBack key.Binding
	Quality  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Pause, k.StepBack, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Pause, k.Toggle, k.StepBack},
		{k.Quality, k.Help, k.Quit},
	}
}

var keys = keyMap{
	Play: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "play"),
	),
	Pause: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "pause"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "play/pause"),
	),
	StepBack: key.NewBinding(
		key.WithKeys("r", ","),
		key.WithHelp("r/,", "reverse frame"),
	),
	Quality: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "cycle quality"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
