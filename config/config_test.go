package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rapidmidiex/notedrill/config"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("returns defaults when the file is missing", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		require.Equal(t, config.DefaultConfig(), cfg)
		require.NoError(t, cfg.Validate())
	})

	t.Run("overrides only the keys present", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		err := os.WriteFile(path, []byte(`
audio:
  enabled: false
  latency: 50ms
practice:
  note_count: 60
  seed: 7
midi:
  enabled: true
  port: keystation
`), 0644)
		require.NoError(t, err)

		cfg, err := config.Load(path)
		require.NoError(t, err)
		require.False(t, cfg.Audio.Enabled)
		require.Equal(t, 50*time.Millisecond, cfg.Audio.Latency)
		require.Equal(t, config.DefaultConfig().Audio.QueueSize, cfg.Audio.QueueSize)
		require.Equal(t, 60, cfg.Practice.NoteCount)
		require.EqualValues(t, 7, cfg.Practice.Seed)
		require.Equal(t, 30*time.Second, cfg.Practice.RoundTimeout)
		require.True(t, cfg.MIDI.Enabled)
		require.Equal(t, "keystation", cfg.MIDI.Port)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("practice:\n  note_count: 33\n"), 0644))
		_, err := config.Load(path)
		require.Error(t, err)
		require.Contains(t, err.Error(), "note_count")
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("audio: [\n"), 0644))
		_, err := config.Load(path)
		require.Error(t, err)
	})
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := config.DefaultConfig()
	cfg.Practice.NoteCount = 100
	require.NoError(t, cfg.Save(path))

	got, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}
