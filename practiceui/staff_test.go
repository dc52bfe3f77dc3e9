package practiceui

import (
	"strings"
	"testing"

	"github.com/rapidmidiex/notedrill/pitch"
	"github.com/stretchr/testify/require"
)

func TestStaff(t *testing.T) {
	t.Run("middle C sits on its own ledger line", func(t *testing.T) {
		rows := Staff(pitch.MustNew(pitch.C, pitch.Natural, 4))
		require.Len(t, rows, 25)
		require.Contains(t, rows[12], "──●──")
		// Rows above and below are blank around the head.
		require.NotContains(t, rows[13], "─")
	})

	t.Run("staff lines run the full width", func(t *testing.T) {
		rows := Staff(pitch.MustNew(pitch.C, pitch.Natural, 4))
		// F5 tops the treble staff, G2 is the bottom of the bass staff.
		require.Equal(t, strings.Repeat("─", staffWidth), rows[2][labelWidth:])
		require.Equal(t, strings.Repeat("─", staffWidth), rows[22][labelWidth:])
	})

	t.Run("accidental precedes the head", func(t *testing.T) {
		rows := Staff(pitch.MustNew(pitch.F, pitch.Sharp, 4))
		// F4 is a space, so no line runs through it.
		require.Contains(t, rows[9], "♯●")
	})

	t.Run("note head on a line", func(t *testing.T) {
		rows := Staff(pitch.MustNew(pitch.E, pitch.Natural, 4))
		require.Contains(t, rows[10], "─●─")
	})

	t.Run("stems", func(t *testing.T) {
		low := pitch.MustNew(pitch.F, pitch.Natural, 4)
		rows := Staff(low)
		// Upward stem for notes below the middle line.
		require.Equal(t, '│', []rune(rows[8])[labelWidth+noteCol+1])

		high := pitch.MustNew(pitch.B, pitch.Natural, 4)
		high.Duration = pitch.Half
		rows = Staff(high)
		require.Contains(t, rows[6], "─o─")
		require.Equal(t, '│', []rune(rows[7])[labelWidth+noteCol-1])

		whole := pitch.MustNew(pitch.A, pitch.Natural, 4)
		whole.Duration = pitch.Whole
		for _, row := range Staff(whole) {
			require.NotContains(t, row, "│")
		}
	})

	t.Run("bass notes extend below the staff", func(t *testing.T) {
		rows := Staff(pitch.MustNew(pitch.C, pitch.Natural, 2))
		// C2 is two ledger lines below G2.
		require.Len(t, rows, 12-(-20)+1)
		require.Contains(t, rows[12+12], "───│─")
		require.Contains(t, rows[12+14], "──●──")
	})

	t.Run("labels", func(t *testing.T) {
		rows := Staff(pitch.MustNew(pitch.C, pitch.Natural, 4))
		require.True(t, strings.HasPrefix(rows[6], "treble"))
		require.True(t, strings.HasPrefix(rows[18], "bass"))
	})

	t.Run("render keeps every row", func(t *testing.T) {
		n := pitch.MustNew(pitch.C, pitch.Natural, 4)
		out := RenderStaff(n)
		require.Equal(t, len(Staff(n)), strings.Count(out, "\n"))
	})
}
