package selector_test

import (
	"bytes"
	"log"
	"math/rand"
	"testing"

	"github.com/rapidmidiex/notedrill/pitch"
	"github.com/rapidmidiex/notedrill/selector"
	"github.com/stretchr/testify/require"
)

func TestNext(t *testing.T) {
	const draws = 10000

	t.Run("mixes in the bonus note about 5% of the time", func(t *testing.T) {
		s := selector.New(rand.NewSource(42))
		bonus := 0
		for i := 0; i < draws; i++ {
			if s.Next() == selector.Bonus {
				bonus++
			}
		}
		rate := float64(bonus) / draws
		require.InDelta(t, 0.05, rate, 0.015, "bonus rate %.4f", rate)
	})

	t.Run("never repeats the same note twice in a row", func(t *testing.T) {
		s := selector.New(rand.NewSource(7))
		prev := s.Next()
		for i := 0; i < draws; i++ {
			n := s.Next()
			require.False(t, pitch.Identical(prev, n), "draw %d repeated %+v", i, n)
			prev = n
		}
	})

	t.Run("keeps regular draws in octaves 3 and 4 with matching clef", func(t *testing.T) {
		s := selector.New(rand.NewSource(1))
		for i := 0; i < draws; i++ {
			n := s.Next()
			if n == selector.Bonus {
				continue
			}
			require.Contains(t, []int{3, 4}, n.Octave)
			require.Equal(t, pitch.ClefFor(n.Octave), n.Clef)
		}
	})

	t.Run("updates the current target", func(t *testing.T) {
		s := selector.New(rand.NewSource(3))
		_, ok := s.Current()
		require.False(t, ok)

		n := s.Next()
		cur, ok := s.Current()
		require.True(t, ok)
		require.Equal(t, n, cur)
	})

	t.Run("gives up after the attempt cap", func(t *testing.T) {
		var logs bytes.Buffer
		s := selector.New(rand.NewSource(9),
			selector.WithBonusProbability(1),
			selector.WithMaxAttempts(5),
			selector.WithLogger(log.New(&logs, "", 0)),
		)
		require.Equal(t, selector.Bonus, s.Next())
		// Every draw is the bonus note, so the loop can only end at the cap.
		require.Equal(t, selector.Bonus, s.Next())
		require.Contains(t, logs.String(), "gave up")
	})
}
