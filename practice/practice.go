// Package practice scores played notes against the current target.
package practice

import (
	"time"

	"github.com/google/uuid"
	"github.com/rapidmidiex/notedrill/pitch"
	"github.com/rapidmidiex/notedrill/selector"
)

type (
	// Round is one target note on screen.
	Round struct {
		ID        uuid.UUID
		Target    pitch.Note
		StartedAt time.Time
	}

	// Result is the outcome of one key press.
	Result struct {
		Round   Round
		Played  pitch.Note
		Correct bool
		// Score change caused by this press: +1, -1, or 0 when the score was
		// already at zero.
		Delta int
		Score int
		// Time from the start of the round to the press.
		Elapsed time.Duration
	}

	// Game holds the score and the current round. It is driven by a single
	// goroutine.
	Game struct {
		sel   *selector.Selector
		round Round
		score int
		now   func() time.Time
	}
)

// Check reports whether played matches target. Enharmonic spellings match.
func Check(played, target pitch.Note) bool {
	return pitch.Equal(played, target)
}

func NewGame(sel *selector.Selector) *Game {
	g := &Game{sel: sel, now: time.Now}
	g.Next()
	return g
}

// Next draws a new target and starts a new round.
func (g *Game) Next() Round {
	g.round = Round{
		ID:        uuid.New(),
		Target:    g.sel.Next(),
		StartedAt: g.now(),
	}
	return g.round
}

// Skip abandons the current round without touching the score.
func (g *Game) Skip() Round {
	return g.Next()
}

// Check scores played against the current target. It does not advance to
// the next round; callers do that once they have shown the feedback.
func (g *Game) Check(played pitch.Note) Result {
	res := Result{
		Round:   g.round,
		Played:  played,
		Correct: Check(played, g.round.Target),
		Elapsed: g.now().Sub(g.round.StartedAt),
	}
	switch {
	case res.Correct:
		res.Delta = 1
	case g.score > 0:
		res.Delta = -1
	}
	g.score += res.Delta
	res.Score = g.score
	return res
}

func (g *Game) Round() Round {
	return g.round
}

func (g *Game) Target() pitch.Note {
	return g.round.Target
}

func (g *Game) Score() int {
	return g.score
}

// Reset zeroes the score and starts a new round.
func (g *Game) Reset() Round {
	g.score = 0
	return g.Next()
}

// SetClock replaces the game's time source.
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
	g.round.StartedAt = now()
}
