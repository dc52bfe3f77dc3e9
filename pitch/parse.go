package pitch

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a note name such as "C4", "c#3", "D♭4" or "Bb-1".
// The clef follows the octave and the duration is a quarter.
func Parse(s string) (Note, error) {
	rest := strings.TrimSpace(s)
	if rest == "" {
		return Note{}, fmt.Errorf("%w: empty name", ErrInvalidNote)
	}

	letter := Letter(strings.IndexByte("CDEFGAB", upper(rest[0])))
	if !letter.Valid() {
		return Note{}, fmt.Errorf("%w: %q: unknown letter", ErrInvalidNote, s)
	}
	rest = rest[1:]

	acc := Natural
	switch {
	case strings.HasPrefix(rest, "#"):
		acc, rest = Sharp, rest[1:]
	case strings.HasPrefix(rest, "♯"):
		acc, rest = Sharp, strings.TrimPrefix(rest, "♯")
	case strings.HasPrefix(rest, "b"):
		acc, rest = Flat, rest[1:]
	case strings.HasPrefix(rest, "♭"):
		acc, rest = Flat, strings.TrimPrefix(rest, "♭")
	}

	octave, err := strconv.Atoi(rest)
	if err != nil {
		return Note{}, fmt.Errorf("%w: %q: bad octave", ErrInvalidNote, s)
	}
	return New(letter, acc, octave)
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
