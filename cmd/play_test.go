package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/faiface/beep/wav"
	"github.com/stretchr/testify/require"

	"github.com/rapidmidiex/notedrill/config"
	"github.com/rapidmidiex/notedrill/pitch"
	"github.com/rapidmidiex/notedrill/synth"
)

func TestPlayNotes(t *testing.T) {
	t.Run("writes more notes than the default queue holds", func(t *testing.T) {
		cfg := config.DefaultConfig()
		notes := make([]pitch.Note, synth.DefaultQueueSize+6)
		for i := range notes {
			notes[i] = pitch.MustNew(pitch.C, pitch.Natural, 4)
		}
		path := filepath.Join(t.TempDir(), "long.wav")
		require.NoError(t, playNotes(cfg, synth.NewWAVOutput(path), notes, 0, 0))

		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()

		s, _, err := wav.Decode(f)
		require.NoError(t, err)
		require.Equal(t, len(notes)*44100, s.Len())
	})

	t.Run("parses every argument", func(t *testing.T) {
		notes, err := parseNotes([]string{"C4", "F#3", "Bb4"})
		require.NoError(t, err)
		require.Len(t, notes, 3)

		_, err = parseNotes([]string{"C4", "H2"})
		require.Error(t, err)
	})
}
