package startui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/rapidmidiex/notedrill/keymap"
	"github.com/rapidmidiex/notedrill/practice"
	"github.com/rapidmidiex/notedrill/styles"
)

var (
	docStyle = styles.DocStyle
)

// Rough time a player spends on one note, used for the length column.
const secondsPerNote = 4

type (
	// StartMsg asks for a practice session of NoteCount notes.
	StartMsg struct {
		NoteCount int
	}

	keyMap struct {
		start key.Binding
		quit  key.Binding
	}
)

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.start, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type Model struct {
	countTable table.Model
	help       help.Model
	keys       keyMap
	// Lines about audio and MIDI shown under the table.
	info []string
}

// New builds the start screen with noteCount preselected. An unknown
// noteCount selects the first option.
func New(noteCount int, info ...string) Model {
	return Model{
		countTable: makeCountTable(noteCount),
		help:       help.New(),
		keys: keyMap{
			start: keymap.DefaultMapping.Start,
			quit:  keymap.DefaultMapping.Quit,
		},
		info: info,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.countTable.SetWidth(min(msg.Width-10, styles.Width))
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.start) {
			cmds = append(cmds, start(m.Selected()))
		}
	}
	newTable, tCmd := m.countTable.Update(msg)
	m.countTable = newTable

	cmds = append(cmds, tCmd)
	return m, tea.Batch(cmds...)
}

// Selected returns the highlighted note count.
func (m Model) Selected() int {
	i := m.countTable.Cursor()
	if i < 0 || i >= len(practice.NoteCountOptions) {
		return practice.DefaultNoteCount
	}
	return practice.NoteCountOptions[i]
}

func (m Model) View() string {
	physicalWidth, _, _ := term.GetSize(int(os.Stdout.Fd()))
	doc := strings.Builder{}

	doc.WriteString(styles.TitleStyle.Render("Note Drill") + "\n")
	doc.WriteString(styles.MessageText.Render("Read the note on the staff and play it on the keyboard.\nHow many notes?") + "\n\n")
	doc.WriteString(styles.BaseStyle.Render(m.countTable.View()) + "\n")

	for _, line := range m.info {
		doc.WriteString("\n" + styles.HintStyle.Render(line))
	}

	doc.WriteString("\n" + styles.HelpMenu.Render(m.help.View(m.keys)))

	if physicalWidth > 0 {
		docStyle = styles.DocStyle.MaxWidth(physicalWidth)
	}
	return docStyle.Render(doc.String())
}

func makeCountTable(selected int) table.Model {
	columns := []table.Column{
		{Title: "Notes", Width: 10},
		{Title: "Length", Width: 12},
	}

	rows := make([]table.Row, 0, len(practice.NoteCountOptions))
	cursor := 0
	for i, n := range practice.NoteCountOptions {
		if n == selected {
			cursor = i
		}
		rows = append(rows, table.Row{strconv.Itoa(n), fmt.Sprintf("~%d min", max(1, n*secondsPerNote/60))})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)),
	)
	t.SetCursor(cursor)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func start(count int) tea.Cmd {
	return func() tea.Msg {
		return StartMsg{NoteCount: count}
	}
}
