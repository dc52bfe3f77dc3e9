package practice

import (
	"fmt"
	"time"
)

type State int

const (
	StateStart State = iota
	StatePractice
	StateSummary
)

const DefaultNoteCount = 20

// NoteCountOptions are the practice lengths offered on the start screen.
var NoteCountOptions = []int{20, 40, 60, 80, 100}

// Session counts answered rounds over one practice run. A round is answered
// when it is played correctly, skipped, or runs out of time.
type Session struct {
	state     State
	noteCount int
	total     int
	correct   int
	times     []time.Duration
}

func NewSession() *Session {
	return &Session{noteCount: DefaultNoteCount}
}

func ValidNoteCount(n int) bool {
	for _, o := range NoteCountOptions {
		if o == n {
			return true
		}
	}
	return false
}

// Begin starts practicing count notes.
func (s *Session) Begin(count int) error {
	if !ValidNoteCount(count) {
		return fmt.Errorf("note count %d: want one of %v", count, NoteCountOptions)
	}
	s.noteCount = count
	s.clear()
	s.state = StatePractice
	return nil
}

// Record closes the current round. Elapsed is kept for correct rounds only.
// It switches to the summary once the last round is recorded and reports
// whether that happened.
func (s *Session) Record(correct bool, elapsed time.Duration) bool {
	if s.state != StatePractice {
		return false
	}
	s.total++
	if correct {
		s.correct++
		s.times = append(s.times, elapsed)
	}
	if s.Complete() {
		s.state = StateSummary
		return true
	}
	return false
}

// End stops practicing early.
func (s *Session) End() {
	s.state = StateSummary
}

// Reset returns to the start screen, keeping the chosen note count.
func (s *Session) Reset() {
	s.clear()
	s.state = StateStart
}

func (s *Session) clear() {
	s.total = 0
	s.correct = 0
	s.times = nil
}

func (s *Session) State() State { return s.state }

func (s *Session) NoteCount() int { return s.noteCount }

func (s *Session) Total() int { return s.total }

func (s *Session) Correct() int { return s.correct }

// Current is the 1-based number of the round being played.
func (s *Session) Current() int {
	return s.total + 1
}

func (s *Session) Complete() bool {
	return s.total >= s.noteCount
}

func (s *Session) Remaining() int {
	return max(0, s.noteCount-s.total)
}

// Accuracy is the share of answered rounds played correctly, in percent.
func (s *Session) Accuracy() float64 {
	if s.total == 0 {
		return 0
	}
	return float64(s.correct) / float64(s.total) * 100
}

// ResponseTimes returns how long each correct answer took.
func (s *Session) ResponseTimes() []time.Duration {
	return append([]time.Duration(nil), s.times...)
}

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePractice:
		return "practice"
	case StateSummary:
		return "summary"
	}
	return fmt.Sprintf("State(%d)", int(s))
}
