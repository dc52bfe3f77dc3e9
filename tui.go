package notedrill

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rapidmidiex/notedrill/config"
	"github.com/rapidmidiex/notedrill/drillerr"
	"github.com/rapidmidiex/notedrill/keymap"
	"github.com/rapidmidiex/notedrill/midiin"
	"github.com/rapidmidiex/notedrill/pitch"
	"github.com/rapidmidiex/notedrill/practice"
	"github.com/rapidmidiex/notedrill/practiceui"
	"github.com/rapidmidiex/notedrill/reaction"
	"github.com/rapidmidiex/notedrill/selector"
	"github.com/rapidmidiex/notedrill/startui"
	"github.com/rapidmidiex/notedrill/styles"
	"github.com/rapidmidiex/notedrill/summaryui"
	"github.com/rapidmidiex/notedrill/synth"
)

// ********
// Code heavily based on "Project Journal"
// https://github.com/bashbunni/pjs
// https://www.youtube.com/watch?v=uJ2egAkSkjg&t=319s
// ********

type (
	// Options wires the TUI to its collaborators.
	Options struct {
		Config *config.Config
		// Plays every key press, usually a *synth.Engine. Nil plays nothing.
		Player practiceui.Player
		// Optional MIDI keyboard.
		Keyboard *midiin.Keyboard
		// Seeds note selection. Nil uses Config.Practice.Seed, or the clock
		// when that is 0.
		Source rand.Source
		Logger *log.Logger
	}

	appView int

	silentPlayer struct{}

	mainModel struct {
		curView  appView
		start    tea.Model
		practice practiceui.Model
		summary  tea.Model

		game     *practice.Game
		session  *practice.Session
		player   practiceui.Player
		keyboard *midiin.Keyboard

		err error
		log *log.Logger
	}
)

const (
	startView appView = iota
	practiceView
	summaryView
)

func NewModel(opts Options) mainModel {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	src := opts.Source
	if src == nil {
		seed := cfg.Practice.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		src = rand.NewSource(seed)
	}

	if opts.Player == nil {
		opts.Player = silentPlayer{}
	}

	sel := selector.New(src, selector.WithLogger(logger))
	game := practice.NewGame(sel)
	session := practice.NewSession()

	return mainModel{
		curView: startView,
		start:   startui.New(cfg.Practice.NoteCount, statusLines(opts.Player, opts.Keyboard)...),
		practice: practiceui.New(game, session, opts.Player, practiceui.Options{
			RoundTimeout: cfg.Practice.RoundTimeout,
			AdvanceDelay: cfg.Practice.AdvanceDelay,
			Logger:       logger,
		}),
		game:     game,
		session:  session,
		player:   opts.Player,
		keyboard: opts.Keyboard,
		log:      logger,
	}
}

func (silentPlayer) Play(pitch.Note)      {}
func (silentPlayer) Status() synth.Status { return synth.StatusIdle }

func statusLines(p practiceui.Player, kb *midiin.Keyboard) []string {
	audio := "Audio: off"
	if p.Status() == synth.StatusRunning {
		audio = "Audio: on"
	}
	midi := "MIDI: no keyboard, use the qwerty keys"
	if kb != nil {
		midi = fmt.Sprintf("MIDI: %s", kb.Port())
	}
	return []string{audio, midi}
}

func (m mainModel) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.start.Init(),
		m.practice.Init(),
	}
	if m.keyboard != nil {
		cmds = append(cmds, m.keyboard.Wait())
	}
	return tea.Batch(cmds...)
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case drillerr.ErrMsg:
		m.err = msg
		m.log.Printf("notedrill: %v", msg)
		return m, nil

	case tea.KeyMsg:
		// Ctrl+c exits from every screen.
		if key.Matches(msg, keymap.DefaultMapping.Quit) {
			return m, tea.Quit
		}

	case midiin.NoteMsg:
		// Keep listening for the next key.
		cmds = append(cmds, m.keyboard.Wait())
		if m.curView != practiceView {
			m.player.Play(msg.Note)
			return m, tea.Batch(cmds...)
		}

	case startui.StartMsg:
		if err := m.session.Begin(msg.NoteCount); err != nil {
			return m, drillerr.Cmd(fmt.Errorf("start: %w", err))
		}
		m.err = nil
		m.curView = practiceView
		m.log.Printf("notedrill: practicing %d notes", msg.NoteCount)
		m.practice, cmd = m.practice.Begin()
		return m, cmd

	case practiceui.FinishedMsg:
		m.curView = summaryView
		m.summary = summaryui.New(m.result())
		return m, m.summary.Init()

	case summaryui.RestartMsg:
		m.session.Reset()
		m.curView = startView
		m.start = startui.New(m.session.NoteCount(), statusLines(m.player, m.keyboard)...)
		return m, m.start.Init()
	}

	// Call sub-model Updates
	switch m.curView {
	case startView:
		m.start, cmd = m.start.Update(msg)
	case practiceView:
		var next tea.Model
		next, cmd = m.practice.Update(msg)
		m.practice = next.(practiceui.Model)
	case summaryView:
		m.summary, cmd = m.summary.Update(msg)
	}

	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m mainModel) result() summaryui.Result {
	times := m.session.ResponseTimes()
	var latest time.Duration
	if len(times) > 0 {
		latest = times[len(times)-1]
	}
	return summaryui.Result{
		Correct:  m.session.Correct(),
		Total:    m.session.Total(),
		Accuracy: m.session.Accuracy(),
		Score:    m.game.Score(),
		Stats:    reaction.Summarize(latest, times),
	}
}

func (m mainModel) View() string {
	var errLine string
	if m.err != nil {
		errLine = "\n" + styles.RenderError(m.err.Error()) + "\n"
	}

	switch m.curView {
	case practiceView:
		return errLine + m.practice.View()
	case summaryView:
		return errLine + m.summary.View()
	default:
		return errLine + m.start.View()
	}
}

// Run starts the TUI and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
