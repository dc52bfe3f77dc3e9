package summaryui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/rapidmidiex/notedrill/keymap"
	"github.com/rapidmidiex/notedrill/reaction"
	"github.com/rapidmidiex/notedrill/styles"
)

var docStyle = styles.DocStyle

type (
	// RestartMsg asks to go back to the start screen.
	RestartMsg struct{}

	// Result is what the summary shows about a finished session.
	Result struct {
		Correct int
		Total   int
		// Accuracy in percent.
		Accuracy float64
		Score    int
		Stats    reaction.StatsMsg
	}

	keyMap struct {
		restart key.Binding
		quit    key.Binding
	}

	Model struct {
		result Result
		help   help.Model
		keys   keyMap
	}
)

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.restart, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func New(result Result) Model {
	return Model{
		result: result,
		help:   help.New(),
		keys: keyMap{
			restart: keymap.DefaultMapping.Restart,
			quit:    keymap.DefaultMapping.Quit,
		},
	}
}

// Message grades an accuracy percentage.
func Message(accuracy float64) string {
	switch {
	case accuracy >= 80:
		return "Excellent Work!"
	case accuracy >= 60:
		return "Good Job!"
	}
	return "Keep Practicing!"
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.restart) {
		return m, restart
	}
	return m, nil
}

func (m Model) View() string {
	physicalWidth, _, _ := term.GetSize(int(os.Stdout.Fd()))
	doc := strings.Builder{}
	r := m.result

	doc.WriteString(styles.TitleStyle.Render("Practice Complete") + "\n")

	accuracy := styles.CorrectStyle
	if r.Accuracy < 60 {
		accuracy = styles.WrongStyle
	}
	rows := []string{
		accuracy.Render(fmt.Sprintf("%.0f%%", r.Accuracy)) + styles.TextStyle.Render(" accuracy"),
		fmt.Sprintf("Correct: %d / %d", r.Correct, r.Total),
		fmt.Sprintf("Score:   %d", r.Score),
	}
	if r.Stats.Count > 0 {
		rows = append(rows,
			"",
			fmt.Sprintf("Average: %s", r.Stats.Avg),
			fmt.Sprintf("Fastest: %s", r.Stats.Min.Round(10*time.Millisecond)),
			fmt.Sprintf("Slowest: %s", r.Stats.Max.Round(10*time.Millisecond)),
		)
	}
	doc.WriteString(styles.BaseStyle.Copy().Padding(1, 4).Render(lipgloss.JoinVertical(lipgloss.Left, rows...)) + "\n\n")
	doc.WriteString(styles.BoldStyle.Render(Message(r.Accuracy)) + "\n")

	doc.WriteString(styles.HelpMenu.Render(m.help.View(m.keys)))

	if physicalWidth > 0 {
		docStyle = styles.DocStyle.MaxWidth(physicalWidth)
	}
	return docStyle.Render(doc.String())
}

func restart() tea.Msg {
	return RestartMsg{}
}
