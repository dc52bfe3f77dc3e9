package midiin

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/rapidmidiex/notedrill/pitch"
)

func TestKeyboard(t *testing.T) {
	c4 := NoteMsg{Note: pitch.MustNew(pitch.C, pitch.Natural, 4), Velocity: 90, Port: "kbd"}

	t.Run("wait delivers queued notes", func(t *testing.T) {
		kb := newKeyboard("kbd")
		kb.deliver(c4)
		require.Equal(t, c4, kb.Wait()())
		require.NoError(t, kb.Close())
	})

	t.Run("close ends a pending wait", func(t *testing.T) {
		kb := newKeyboard("kbd")
		got := make(chan tea.Msg)
		go func() { got <- kb.Wait()() }()

		require.NoError(t, kb.Close())
		select {
		case msg := <-got:
			require.Nil(t, msg)
		case <-time.After(time.Second):
			t.Fatal("Wait still blocked after Close")
		}
	})

	t.Run("notes after close are ignored", func(t *testing.T) {
		kb := newKeyboard("kbd")
		require.NoError(t, kb.Close())
		require.NoError(t, kb.Close())
		require.NotPanics(t, func() { kb.deliver(c4) })
	})
}
