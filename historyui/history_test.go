package historyui_test

import (
	"testing"
	"time"

	"github.com/rapidmidiex/notedrill/historyui"
	"github.com/rapidmidiex/notedrill/pitch"
	"github.com/stretchr/testify/require"
)

func TestHistory(t *testing.T) {
	c4 := pitch.MustNew(pitch.C, pitch.Natural, 4)
	d4 := pitch.MustNew(pitch.D, pitch.Natural, 4)

	t.Run("adds one line per entry", func(t *testing.T) {
		var m = historyui.New()
		msgs := []historyui.EntryMsg{
			{Outcome: historyui.Wrong, Target: c4, Played: d4},
			{Outcome: historyui.Correct, Target: c4, Played: c4, Elapsed: 1200 * time.Millisecond},
			{Outcome: historyui.Skipped, Target: d4},
			{Outcome: historyui.TimedOut, Target: d4},
		}
		for _, msg := range msgs {
			next, _ := m.Update(msg)
			m = next.(historyui.Model)
		}

		got := m.Entries()
		require.Len(t, got, 4)
		require.Contains(t, got[0], "D4, wanted C4")
		require.Contains(t, got[1], "C4 in 1.2s")
		require.Contains(t, got[2], "skipped")
		require.Contains(t, got[3], "timed out")
	})

	t.Run("keeps the latest entries", func(t *testing.T) {
		var m = historyui.New()
		for i := 0; i < historyui.MaxEntries+5; i++ {
			next, _ := m.Update(historyui.EntryMsg{Outcome: historyui.Skipped, Target: c4})
			m = next.(historyui.Model)
		}
		require.Len(t, m.Entries(), historyui.MaxEntries)

		next, _ := m.Update(historyui.ClearMsg{})
		require.Empty(t, next.(historyui.Model).Entries())
	})
}
