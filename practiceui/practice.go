package practiceui

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/rapidmidiex/notedrill/historyui"
	"github.com/rapidmidiex/notedrill/keymap"
	"github.com/rapidmidiex/notedrill/midiin"
	"github.com/rapidmidiex/notedrill/pitch"
	"github.com/rapidmidiex/notedrill/practice"
	"github.com/rapidmidiex/notedrill/reaction"
	"github.com/rapidmidiex/notedrill/styles"
	"github.com/rapidmidiex/notedrill/synth"
	"github.com/rapidmidiex/notedrill/vpiano"
)

var docStyle = styles.DocStyle

const (
	// How long a pressed key stays highlighted.
	keyRelease = 150 * time.Millisecond

	promptText  = "Press the key!"
	correctText = "Correct! ✓"
	wrongText   = "Try again! ✗"

	cellWidth = 5
)

const (
	verdictNone verdict = iota
	verdictCorrect
	verdictWrong
)

type (
	// Player is the audio side of a key press.
	Player interface {
		Play(n pitch.Note)
		Status() synth.Status
	}

	// FinishedMsg is sent once the session has moved to the summary.
	FinishedMsg struct{}

	tickMsg struct {
		round uuid.UUID
	}

	advanceMsg struct {
		round uuid.UUID
	}

	releaseKeyMsg struct {
		seq int
	}

	verdict int

	Options struct {
		// Time allowed per note before it counts as missed.
		RoundTimeout time.Duration
		// Pause after a correct answer before the next note.
		AdvanceDelay time.Duration
		Logger       *log.Logger
	}

	Model struct {
		game    *practice.Game
		session *practice.Session
		player  Player

		// Piano keys, B2..C5.
		keys     vpiano.Keys
		bindings vpiano.KeyBindingMap
		// Binding of the highlighted key, "" when none.
		pressed  string
		pressSeq int

		feedback string
		verdict  verdict
		// A correct answer was given; waiting for the next note.
		advancing bool

		roundTimeout time.Duration
		advanceDelay time.Duration
		remaining    time.Duration

		history tea.Model
		help    help.Model
		stats   reaction.StatsMsg

		log *log.Logger
	}
)

func New(game *practice.Game, session *practice.Session, player Player, opts Options) Model {
	if opts.RoundTimeout <= 0 {
		opts.RoundTimeout = 30 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	keys := vpiano.Layout()
	return Model{
		game:         game,
		session:      session,
		player:       player,
		keys:         keys,
		bindings:     keys.ToBindingMap(),
		feedback:     promptText,
		roundTimeout: opts.RoundTimeout,
		advanceDelay: opts.AdvanceDelay,
		remaining:    opts.RoundTimeout,
		history:      historyui.New(),
		help:         help.New(),
		log:          opts.Logger,
	}
}

func (m Model) Init() tea.Cmd {
	return m.history.Init()
}

// Begin resets the score and starts the first round of the session.
func (m Model) Begin() (Model, tea.Cmd) {
	m.game.Reset()
	m.stats = reaction.StatsMsg{}
	m.history, _ = m.history.Update(historyui.ClearMsg{})
	return m, m.startRound()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keymap.DefaultMapping.End):
			m.session.End()
			return m, finished
		case key.Matches(msg, keymap.DefaultMapping.Skip):
			return m.miss(historyui.Skipped)
		}
		if k, ok := m.bindings[msg.String()]; ok {
			return m.press(k.Note)
		}

	case midiin.NoteMsg:
		return m.press(msg.Note)

	case tickMsg:
		if msg.round != m.game.Round().ID || m.advancing {
			return m, nil
		}
		m.remaining -= time.Second
		if m.remaining > 0 {
			return m, m.tick()
		}
		return m.miss(historyui.TimedOut)

	case advanceMsg:
		if msg.round != m.game.Round().ID {
			return m, nil
		}
		m.game.Next()
		return m, m.startRound()

	case releaseKeyMsg:
		if msg.seq == m.pressSeq {
			m.pressed = ""
		}

	case reaction.StatsMsg:
		m.stats = msg

	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

// press plays n and, unless the round is already won, scores it.
func (m Model) press(n pitch.Note) (tea.Model, tea.Cmd) {
	m.player.Play(n)

	var cmds []tea.Cmd
	if k, ok := m.keys.Find(n); ok {
		m.pressSeq++
		m.pressed = k.KeyBinding
		seq := m.pressSeq
		cmds = append(cmds, tea.Tick(keyRelease, func(time.Time) tea.Msg {
			return releaseKeyMsg{seq: seq}
		}))
	}
	if m.advancing || m.session.State() != practice.StatePractice {
		return m, tea.Batch(cmds...)
	}

	res := m.game.Check(n)
	m.log.Printf("practice: round %s: played %s, target %s, correct=%t score=%d",
		res.Round.ID, res.Played, res.Round.Target, res.Correct, res.Score)

	if !res.Correct {
		m.verdict, m.feedback = verdictWrong, wrongText
		m.history, _ = m.history.Update(historyui.EntryMsg{
			Outcome: historyui.Wrong,
			Target:  res.Round.Target,
			Played:  n,
		})
		return m, tea.Batch(cmds...)
	}

	m.verdict, m.feedback = verdictCorrect, correctText
	m.advancing = true
	m.history, _ = m.history.Update(historyui.EntryMsg{
		Outcome: historyui.Correct,
		Target:  res.Round.Target,
		Played:  n,
		Elapsed: res.Elapsed,
	})

	done := m.session.Record(true, res.Elapsed)
	cmds = append(cmds, reaction.CalcStats(res.Elapsed, m.session.ResponseTimes()))
	if done {
		cmds = append(cmds, finished)
	} else {
		id := res.Round.ID
		cmds = append(cmds, tea.Tick(m.advanceDelay, func(time.Time) tea.Msg {
			return advanceMsg{round: id}
		}))
	}
	return m, tea.Batch(cmds...)
}

// miss closes the round without a correct answer.
func (m Model) miss(outcome historyui.Outcome) (tea.Model, tea.Cmd) {
	if m.advancing || m.session.State() != practice.StatePractice {
		return m, nil
	}
	m.history, _ = m.history.Update(historyui.EntryMsg{
		Outcome: outcome,
		Target:  m.game.Target(),
	})
	if m.session.Record(false, 0) {
		return m, finished
	}
	m.game.Skip()
	return m, m.startRound()
}

func (m *Model) startRound() tea.Cmd {
	m.remaining = m.roundTimeout
	m.advancing = false
	m.verdict, m.feedback = verdictNone, promptText
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	id := m.game.Round().ID
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{round: id}
	})
}

func finished() tea.Msg {
	return FinishedMsg{}
}

func (m Model) View() string {
	physicalWidth, _, _ := term.GetSize(int(os.Stdout.Fd()))
	doc := strings.Builder{}

	if physicalWidth > 0 {
		docStyle = docStyle.MaxWidth(physicalWidth)
	}

	doc.WriteString(m.statusView() + "\n\n")
	doc.WriteString(RenderStaff(m.game.Target()) + "\n")
	doc.WriteString(m.feedbackView() + "\n\n")
	doc.WriteString(m.pianoView() + "\n\n")
	doc.WriteString(m.history.View())
	doc.WriteString(styles.HelpMenu.Render(m.help.View(keymap.DefaultMapping)))
	return docStyle.Render(doc.String())
}

func (m Model) statusView() string {
	progress := styles.StatusStyle.Render(
		fmt.Sprintf("Note %d/%d", min(m.session.Current(), m.session.NoteCount()), m.session.NoteCount()),
	)
	status := fmt.Sprintf("Accuracy: %.0f%%  Score: %d", m.session.Accuracy(), m.game.Score())
	if m.stats.Count > 0 {
		status += fmt.Sprintf("  Avg: %s", m.stats.Avg)
	}
	text := styles.StatusText.Render(status)

	timer := styles.TimerStyle
	if m.remaining <= 10*time.Second {
		timer = styles.TimerLowStyle
	}
	clock := timer.Render(fmt.Sprintf("%2ds", int(m.remaining/time.Second)))

	audio := styles.AudioOffStyle.Render("audio off")
	if m.player.Status() == synth.StatusRunning {
		audio = styles.AudioOnStyle.Render("♪ audio")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, progress, text, " ", clock, audio)
}

func (m Model) feedbackView() string {
	switch m.verdict {
	case verdictCorrect:
		return styles.CorrectStyle.Render(m.feedback)
	case verdictWrong:
		return styles.WrongStyle.Render(m.feedback)
	}
	return styles.BoldStyle.Render(m.feedback)
}

func (m Model) pianoView() string {
	whites := m.keys.White()

	// Black key bindings sit above the border between their white keys.
	var top strings.Builder
	col := 0
	for _, b := range m.keys.Black() {
		natural := b.Note
		natural.Accidental = pitch.Natural
		idx := -1
		for i, w := range whites {
			if pitch.Equal(w.Note, natural) {
				idx = i
				break
			}
		}
		if idx < 0 {
			continue
		}
		at := (idx+1)*cellWidth - 1
		top.WriteString(strings.Repeat(" ", at-col))
		style := styles.BlackKeyLabel
		if b.KeyBinding == m.pressed {
			style = styles.PressedKeyLabel
		}
		top.WriteString(style.Render(b.KeyBinding))
		col = at + 1
	}

	boxes := make([]string, 0, len(whites))
	for _, w := range whites {
		style := styles.WhiteKeyStyle
		if w.KeyBinding == m.pressed {
			style = styles.PressedKeyStyle
		}
		boxes = append(boxes, style.Render(fmt.Sprintf("%s%d\n(%s)", w.Note.Letter, w.Note.Octave, w.KeyBinding)))
	}
	return top.String() + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

// Remaining returns the time left in the current round.
func (m Model) Remaining() time.Duration {
	return m.remaining
}

// Feedback returns the text shown under the staff.
func (m Model) Feedback() string {
	return m.feedback
}

// Stats returns the latest response time summary.
func (m Model) Stats() reaction.StatsMsg {
	return m.stats
}

// Pressed returns the binding of the highlighted key.
func (m Model) Pressed() string {
	return m.pressed
}
