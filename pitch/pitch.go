// Package pitch contains the note model: symbolic notes, their canonical pitch
// numbers and their vertical position on a staff.
package pitch

import (
	"errors"
	"fmt"
)

type (
	// Letter is a note name. The zero value is C; letters are ordered by
	// diatonic step within an octave.
	Letter int

	Accidental int

	// Clef only affects how a note is displayed.
	Clef int

	// Duration only affects how a note is displayed.
	Duration int

	// Note is a symbolic note as drawn on the staff. Notes are plain values;
	// == compares every field, Equal compares only the sound.
	Note struct {
		Letter     Letter
		Accidental Accidental
		Octave     int
		Clef       Clef
		Duration   Duration
	}
)

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

const (
	Natural Accidental = iota
	Sharp
	Flat
)

const (
	Treble Clef = iota
	Bass
)

const (
	Whole Duration = iota
	Half
	Quarter
)

// MiddleC is the canonical number of C4.
const MiddleC = 60

var (
	ErrInvalidNote = errors.New("invalid note")

	Letters     = []Letter{C, D, E, F, G, A, B}
	Accidentals = []Accidental{Natural, Sharp, Flat}
	Durations   = []Duration{Whole, Half, Quarter}

	// semitones above C within one octave, indexed by Letter.
	semitones = [...]int{0, 2, 4, 5, 7, 9, 11}
)

// Canonical returns the semitone index of a note, with C4 = 60.
// It panics if letter or accidental is outside its enumeration.
func Canonical(letter Letter, accidental Accidental, octave int) int {
	if !letter.Valid() || !accidental.Valid() {
		panic(fmt.Sprintf("pitch: canonical of invalid note %d/%d", letter, accidental))
	}
	return semitones[letter] + (octave+1)*12 + accidental.Offset()
}

// StaffOffset returns the number of diatonic steps from C4. It is only meant
// for vertical placement.
func StaffOffset(letter Letter, octave int) int {
	if !letter.Valid() {
		panic(fmt.Sprintf("pitch: staff offset of invalid letter %d", letter))
	}
	return int(letter) + (octave-4)*7
}

// Equal reports whether a and b sound the same, so C♯4 and D♭4 are equal.
func Equal(a, b Note) bool {
	return a.Number() == b.Number()
}

// Identical reports whether a and b would be drawn the same way.
func Identical(a, b Note) bool {
	return a == b
}

// ClefFor picks the clef a note in the given octave is shown on.
func ClefFor(octave int) Clef {
	if octave < 4 {
		return Bass
	}
	return Treble
}

// New builds a note shown on the clef matching its octave, as a quarter note.
func New(letter Letter, accidental Accidental, octave int) (Note, error) {
	if !letter.Valid() {
		return Note{}, fmt.Errorf("%w: letter %d", ErrInvalidNote, letter)
	}
	if !accidental.Valid() {
		return Note{}, fmt.Errorf("%w: accidental %d", ErrInvalidNote, accidental)
	}
	return Note{
		Letter:     letter,
		Accidental: accidental,
		Octave:     octave,
		Clef:       ClefFor(octave),
		Duration:   Quarter,
	}, nil
}

func MustNew(letter Letter, accidental Accidental, octave int) Note {
	n, err := New(letter, accidental, octave)
	if err != nil {
		panic(err)
	}
	return n
}

// FromNumber spells a canonical number using sharps for the black keys.
func FromNumber(number int) Note {
	octave := number/12 - 1
	pc := number % 12
	if pc < 0 {
		pc += 12
		octave--
	}
	for i := len(semitones) - 1; i >= 0; i-- {
		if semitones[i] <= pc {
			acc := Natural
			if semitones[i] < pc {
				acc = Sharp
			}
			return MustNew(Letter(i), acc, octave)
		}
	}
	// unreachable: semitones[C] is 0
	panic("pitch: no letter below pitch class")
}

func (n Note) Number() int {
	return Canonical(n.Letter, n.Accidental, n.Octave)
}

func (n Note) StaffOffset() int {
	return StaffOffset(n.Letter, n.Octave)
}

func (n Note) Equal(o Note) bool {
	return Equal(n, o)
}

// String renders the note with music symbols, ex: "C♯4".
func (n Note) String() string {
	return fmt.Sprintf("%s%s%d", n.Letter, n.Accidental.Symbol(), n.Octave)
}

// Name renders the note in plain ASCII, ex: "C#4", "Db4".
func (n Note) Name() string {
	return fmt.Sprintf("%s%s%d", n.Letter, n.Accidental.ASCII(), n.Octave)
}

func (l Letter) Valid() bool {
	return l >= C && l <= B
}

func (l Letter) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Letter(%d)", int(l))
	}
	return string("CDEFGAB"[l])
}

func (a Accidental) Valid() bool {
	return a >= Natural && a <= Flat
}

// Offset is the number of semitones the accidental adds.
func (a Accidental) Offset() int {
	switch a {
	case Sharp:
		return 1
	case Flat:
		return -1
	}
	return 0
}

func (a Accidental) Symbol() string {
	switch a {
	case Sharp:
		return "♯"
	case Flat:
		return "♭"
	}
	return ""
}

func (a Accidental) ASCII() string {
	switch a {
	case Sharp:
		return "#"
	case Flat:
		return "b"
	}
	return ""
}

func (c Clef) String() string {
	if c == Bass {
		return "bass"
	}
	return "treble"
}

func (d Duration) String() string {
	switch d {
	case Whole:
		return "whole"
	case Half:
		return "half"
	case Quarter:
		return "quarter"
	}
	return fmt.Sprintf("Duration(%d)", int(d))
}
