// Package selector picks the next note to practice.
package selector

import (
	"io"
	"log"
	"math/rand"

	"github.com/rapidmidiex/notedrill/pitch"
)

const (
	DefaultBonusProbability = 0.05
	DefaultMaxAttempts      = 1000
)

// Bonus is the occasional note drawn outside the regular octave range.
var Bonus = pitch.Note{
	Letter:     pitch.C,
	Accidental: pitch.Natural,
	Octave:     5,
	Clef:       pitch.Treble,
	Duration:   pitch.Quarter,
}

type (
	// Selector draws practice targets. Octaves 3 and 4 are drawn uniformly,
	// the Bonus note is mixed in with a small probability, and a draw that would
	// repeat the current target exactly is thrown away.
	//
	// A Selector is not safe for concurrent use.
	Selector struct {
		rnd         *rand.Rand
		bonusProb   float64
		maxAttempts int
		log         *log.Logger

		current pitch.Note
		hasCur  bool
	}

	Option func(*Selector)
)

func WithBonusProbability(p float64) Option {
	return func(s *Selector) { s.bonusProb = p }
}

// WithMaxAttempts bounds the redraw loop. After n rejected draws the last
// draw is accepted even if it repeats the current target.
func WithMaxAttempts(n int) Option {
	return func(s *Selector) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(s *Selector) { s.log = l }
}

func New(src rand.Source, opts ...Option) *Selector {
	s := &Selector{
		rnd:         rand.New(src),
		bonusProb:   DefaultBonusProbability,
		maxAttempts: DefaultMaxAttempts,
		log:         log.New(io.Discard, "", 0),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Current returns the note last returned by Next.
func (s *Selector) Current() (pitch.Note, bool) {
	return s.current, s.hasCur
}

// Next draws a new target and makes it current.
func (s *Selector) Next() pitch.Note {
	var n pitch.Note
	for attempt := 1; ; attempt++ {
		n = s.draw()
		if !s.hasCur || !pitch.Identical(n, s.current) {
			break
		}
		if attempt >= s.maxAttempts {
			s.log.Printf("selector: gave up avoiding repeat of %s after %d draws", n, attempt)
			break
		}
	}
	s.current, s.hasCur = n, true
	return n
}

func (s *Selector) draw() pitch.Note {
	if s.rnd.Float64() < s.bonusProb {
		return Bonus
	}
	octave := 3 + s.rnd.Intn(2)
	return pitch.Note{
		Letter:     pitch.Letters[s.rnd.Intn(len(pitch.Letters))],
		Accidental: pitch.Accidentals[s.rnd.Intn(len(pitch.Accidentals))],
		Octave:     octave,
		Clef:       pitch.ClefFor(octave),
		Duration:   pitch.Durations[s.rnd.Intn(len(pitch.Durations))],
	}
}
