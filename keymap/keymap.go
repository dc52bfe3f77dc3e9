package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type Mapping struct {
	Start   key.Binding
	Skip    key.Binding
	End     key.Binding
	Restart key.Binding
	Quit    key.Binding
}

var DefaultMapping = Mapping{
	Start: key.NewBinding(
		key.WithKeys(tea.KeyEnter.String()),
		key.WithHelp("enter", "start practice"),
	),
	Skip: key.NewBinding(
		key.WithKeys(tea.KeyTab.String()),
		key.WithHelp("tab", "skip note"),
	),
	End: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "end practice"),
	),
	Restart: key.NewBinding(
		key.WithKeys(tea.KeyEnter.String()),
		key.WithHelp("enter", "practice again"),
	),
	Quit: key.NewBinding(
		key.WithKeys(tea.KeyCtrlC.String()),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (m Mapping) ShortHelp() []key.Binding {
	return []key.Binding{m.Skip, m.End, m.Quit}
}

// FullHelp implements help.KeyMap.
func (m Mapping) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.Start},
		{m.Skip, m.End},
		{m.Restart, m.Quit},
	}
}
