package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rapidmidiex/notedrill/practice"
	"github.com/rapidmidiex/notedrill/synth"
)

type (
	AudioConfig struct {
		// Play notes on the default output device.
		Enabled bool `yaml:"enabled"`
		// Speaker buffer length.
		Latency time.Duration `yaml:"latency"`
		// Requests waiting for the audio worker before new ones are dropped.
		QueueSize int `yaml:"queue_size"`
	}

	PracticeConfig struct {
		// Preselected practice length, one of practice.NoteCountOptions.
		NoteCount int `yaml:"note_count"`
		// Time allowed per note before it counts as missed.
		RoundTimeout time.Duration `yaml:"round_timeout"`
		// Pause after a correct answer before the next note is shown.
		AdvanceDelay time.Duration `yaml:"advance_delay"`
		// Random seed for note selection, 0 seeds from the clock.
		Seed int64 `yaml:"seed,omitempty"`
	}

	MIDIConfig struct {
		Enabled bool `yaml:"enabled"`
		// Substring of the input port name, empty for the first port.
		Port string `yaml:"port,omitempty"`
	}

	LogConfig struct {
		Debug bool   `yaml:"debug"`
		File  string `yaml:"file,omitempty"`
	}

	Config struct {
		Audio    AudioConfig    `yaml:"audio"`
		Practice PracticeConfig `yaml:"practice"`
		MIDI     MIDIConfig     `yaml:"midi"`
		Log      LogConfig      `yaml:"log"`
	}
)

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Audio: AudioConfig{
			Enabled:   true,
			Latency:   synth.DefaultLatency,
			QueueSize: synth.DefaultQueueSize,
		},
		Practice: PracticeConfig{
			NoteCount:    practice.DefaultNoteCount,
			RoundTimeout: 30 * time.Second,
			AdvanceDelay: 500 * time.Millisecond,
		},
		Log: LogConfig{
			File: "notedrill.log",
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "notedrill"), nil
}

// ConfigPath returns the full path to config.yaml
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config at path, or at ConfigPath when path is empty. A
// missing file yields the defaults. Keys absent from the file keep their
// default values.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if !practice.ValidNoteCount(c.Practice.NoteCount) {
		return fmt.Errorf("practice.note_count %d: want one of %v", c.Practice.NoteCount, practice.NoteCountOptions)
	}
	if c.Practice.RoundTimeout <= 0 {
		return errors.New("practice.round_timeout must be positive")
	}
	if c.Practice.AdvanceDelay < 0 {
		return errors.New("practice.advance_delay must not be negative")
	}
	if c.Audio.Latency <= 0 {
		return errors.New("audio.latency must be positive")
	}
	if c.Audio.QueueSize <= 0 {
		return errors.New("audio.queue_size must be positive")
	}
	return nil
}

// Save writes the config to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
