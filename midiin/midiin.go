// Package midiin reads notes from an attached MIDI keyboard.
//
// A driver has to be registered by the importing program, for example with
// _ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv".
package midiin

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"github.com/rapidmidiex/notedrill/pitch"
	"github.com/rapidmidiex/notedrill/vpiano"
)

var ErrNoPort = errors.New("no MIDI input port")

type (
	// NoteMsg is sent for every key struck on the keyboard.
	NoteMsg struct {
		Note     pitch.Note
		Velocity uint8
		Port     string
	}

	// Keyboard listens to one MIDI input port.
	Keyboard struct {
		port  string
		stop  func()
		notes chan NoteMsg

		// mu guards closed so the driver never sends on a closed channel.
		mu     sync.Mutex
		closed bool
	}
)

// Ports lists the names of the available MIDI input ports.
func Ports() []string {
	ins := gomidi.GetInPorts()
	names := make([]string, 0, len(ins))
	for _, in := range ins {
		names = append(names, in.String())
	}
	return names
}

// Open starts listening on the first input port whose name contains name
// (case-insensitive). An empty name picks the first port.
func Open(name string) (*Keyboard, error) {
	in, err := findPort(name)
	if err != nil {
		return nil, err
	}
	return Listen(in)
}

func findPort(name string) (drivers.In, error) {
	want := strings.ToLower(name)
	for _, in := range gomidi.GetInPorts() {
		if want == "" || strings.Contains(strings.ToLower(in.String()), want) {
			return in, nil
		}
	}
	if name == "" {
		return nil, ErrNoPort
	}
	return nil, fmt.Errorf("%w matching %q", ErrNoPort, name)
}

// Listen starts listening on in.
func Listen(in drivers.In) (*Keyboard, error) {
	kb := newKeyboard(in.String())
	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		if n, ok := Decode(msg, kb.port); ok {
			kb.deliver(n)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", kb.port, err)
	}
	kb.stop = stop
	return kb, nil
}

func newKeyboard(port string) *Keyboard {
	return &Keyboard{
		port:  port,
		notes: make(chan NoteMsg, 32),
	}
}

// deliver queues n without ever blocking the driver's callback.
func (kb *Keyboard) deliver(n NoteMsg) {
	kb.mu.Lock()
	defer kb.mu.Unlock()
	if kb.closed {
		return
	}
	select {
	case kb.notes <- n:
	default:
	}
}

// Decode turns a note-on message into a NoteMsg. Note-ons with zero velocity
// are note-offs and are ignored, as are keys outside the piano range.
func Decode(msg gomidi.Message, port string) (NoteMsg, bool) {
	var channel, key, velocity uint8
	if !msg.GetNoteOn(&channel, &key, &velocity) || velocity == 0 {
		return NoteMsg{}, false
	}
	if !vpiano.InRange(int(key)) {
		return NoteMsg{}, false
	}
	return NoteMsg{
		Note:     pitch.FromNumber(int(key)),
		Velocity: velocity,
		Port:     port,
	}, true
}

func (kb *Keyboard) Port() string {
	return kb.port
}

func (kb *Keyboard) Notes() <-chan NoteMsg {
	return kb.notes
}

// Wait returns a command that delivers the next note as a NoteMsg. Re-issue
// it after each note, like a socket listener.
func (kb *Keyboard) Wait() tea.Cmd {
	return func() tea.Msg {
		n, ok := <-kb.notes
		if !ok {
			return nil
		}
		return n
	}
}

// Close stops listening and closes Notes, which ends a pending Wait.
func (kb *Keyboard) Close() error {
	if kb.stop != nil {
		kb.stop()
		kb.stop = nil
	}
	kb.mu.Lock()
	defer kb.mu.Unlock()
	if !kb.closed {
		kb.closed = true
		close(kb.notes)
	}
	return nil
}
