package practice_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/rapidmidiex/notedrill/pitch"
	"github.com/rapidmidiex/notedrill/practice"
	"github.com/rapidmidiex/notedrill/selector"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	all := []pitch.Note{}
	for _, l := range pitch.Letters {
		for _, a := range pitch.Accidentals {
			for _, oct := range []int{3, 4, 5} {
				all = append(all, pitch.MustNew(l, a, oct))
			}
		}
	}

	t.Run("is symmetric and agrees with pitch equality", func(t *testing.T) {
		for _, a := range all {
			for _, b := range all {
				require.Equal(t, practice.Check(a, b), practice.Check(b, a))
				require.Equal(t, pitch.Equal(a, b), practice.Check(a, b))
			}
		}
	})

	t.Run("accepts enharmonic spellings", func(t *testing.T) {
		require.True(t, practice.Check(
			pitch.MustNew(pitch.G, pitch.Sharp, 3),
			pitch.MustNew(pitch.A, pitch.Flat, 3),
		))
	})
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newGame(t *testing.T) (*practice.Game, *clock) {
	t.Helper()
	c := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	g := practice.NewGame(selector.New(rand.NewSource(11)))
	g.SetClock(c.now)
	return g, c
}

func TestGame(t *testing.T) {
	t.Run("scores correct and wrong presses", func(t *testing.T) {
		g, c := newGame(t)
		target := g.Target()
		wrong := pitch.FromNumber(target.Number() + 1)

		res := g.Check(wrong)
		require.False(t, res.Correct)
		require.Equal(t, 0, res.Delta, "score is floored at zero")
		require.Equal(t, 0, g.Score())

		c.t = c.t.Add(1500 * time.Millisecond)
		res = g.Check(pitch.FromNumber(target.Number()))
		require.True(t, res.Correct)
		require.Equal(t, 1, res.Delta)
		require.Equal(t, 1, res.Score)
		require.Equal(t, 1500*time.Millisecond, res.Elapsed)
		require.Equal(t, g.Round().ID, res.Round.ID)

		res = g.Check(wrong)
		require.Equal(t, -1, res.Delta)
		require.Equal(t, 0, g.Score())
	})

	t.Run("starts a new round on next", func(t *testing.T) {
		g, _ := newGame(t)
		first := g.Round()
		second := g.Next()
		require.NotEqual(t, first.ID, second.ID)
		require.False(t, pitch.Identical(first.Target, second.Target))
		require.Equal(t, second, g.Round())
	})

	t.Run("keeps the score on skip and clears it on reset", func(t *testing.T) {
		g, _ := newGame(t)
		g.Check(g.Target())
		g.Skip()
		require.Equal(t, 1, g.Score())
		g.Reset()
		require.Equal(t, 0, g.Score())
	})
}

func TestSession(t *testing.T) {
	t.Run("rejects unknown note counts", func(t *testing.T) {
		s := practice.NewSession()
		require.Error(t, s.Begin(25))
		require.Equal(t, practice.StateStart, s.State())
	})

	t.Run("moves to the summary after the last round", func(t *testing.T) {
		s := practice.NewSession()
		require.NoError(t, s.Begin(20))
		require.Equal(t, practice.StatePractice, s.State())

		for i := 0; i < 19; i++ {
			require.False(t, s.Record(i%2 == 0, time.Second))
		}
		require.Equal(t, 20, s.Current())
		require.Equal(t, 1, s.Remaining())

		require.True(t, s.Record(true, 2*time.Second))
		require.Equal(t, practice.StateSummary, s.State())
		require.Equal(t, 20, s.Total())
		require.Equal(t, 11, s.Correct())
		require.InDelta(t, 55.0, s.Accuracy(), 1e-9)
		require.Len(t, s.ResponseTimes(), 11)
		require.Zero(t, s.Remaining())

		require.False(t, s.Record(true, time.Second), "no rounds after the summary")
	})

	t.Run("can end early and reset", func(t *testing.T) {
		s := practice.NewSession()
		require.NoError(t, s.Begin(40))
		s.Record(false, 0)
		s.End()
		require.Equal(t, practice.StateSummary, s.State())
		require.Zero(t, s.Accuracy())

		s.Reset()
		require.Equal(t, practice.StateStart, s.State())
		require.Equal(t, 40, s.NoteCount())
		require.Zero(t, s.Total())
	})
}
