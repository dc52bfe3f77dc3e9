// Package drillerr carries errors through tea models as messages.
package drillerr

import tea "github.com/charmbracelet/bubbletea"

type (
	ErrMsg struct {
		Err error
	}
)

func (m ErrMsg) Error() string {
	return m.Err.Error()
}

func (m ErrMsg) Unwrap() error {
	return m.Err
}

// Cmd wraps err in a command. A nil err yields a nil command.
func Cmd(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	return func() tea.Msg {
		return ErrMsg{Err: err}
	}
}
