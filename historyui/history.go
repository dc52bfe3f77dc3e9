package historyui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rapidmidiex/notedrill/pitch"
	"github.com/rapidmidiex/notedrill/styles"
)

// Reference:
// https://github.com/charmbracelet/bubbletea/blob/master/examples/chat/main.go

type (
	Outcome int

	// EntryMsg adds one line to the history.
	EntryMsg struct {
		Outcome Outcome
		Target  pitch.Note
		// Played is unset for skipped and timed out rounds.
		Played  pitch.Note
		Elapsed time.Duration
	}

	ClearMsg struct{}
)

const (
	Correct Outcome = iota
	Wrong
	Skipped
	TimedOut
)

// MaxEntries is how many lines the history keeps.
const MaxEntries = 50

type Model struct {
	viewport     viewport.Model
	entries      []string
	correctStyle lipgloss.Style
	wrongStyle   lipgloss.Style
	missStyle    lipgloss.Style
}

func New() Model {
	vp := viewport.New(36, 5)
	vp.SetContent(`History
Play the note shown on the staff.`)

	return Model{
		viewport:     vp,
		entries:      []string{},
		correctStyle: styles.CorrectStyle.Copy().Bold(false),
		wrongStyle:   styles.WrongStyle.Copy().Bold(false),
		missStyle:    styles.HintStyle,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)

	switch msg := msg.(type) {
	case EntryMsg:
		m.entries = append(m.entries, m.render(msg))
		if len(m.entries) > MaxEntries {
			m.entries = m.entries[len(m.entries)-MaxEntries:]
		}
		m.viewport.SetContent(strings.Join(m.entries, "\n"))
		m.viewport.GotoBottom()

	case ClearMsg:
		m.entries = m.entries[:0]
		m.viewport.SetContent("")
	}

	return m, vpCmd
}

func (m Model) View() string {
	return m.viewport.View() + "\n"
}

// Entries returns the rendered lines, oldest first.
func (m Model) Entries() []string {
	return append([]string(nil), m.entries...)
}

func (m Model) render(e EntryMsg) string {
	switch e.Outcome {
	case Correct:
		return m.correctStyle.Render(fmt.Sprintf("✓ %s in %.1fs", e.Target, e.Elapsed.Seconds()))
	case Wrong:
		return m.wrongStyle.Render(fmt.Sprintf("✗ %s, wanted %s", e.Played, e.Target))
	case Skipped:
		return m.missStyle.Render(fmt.Sprintf("» %s skipped", e.Target))
	case TimedOut:
		return m.missStyle.Render(fmt.Sprintf("⏱ %s timed out", e.Target))
	}
	return ""
}
