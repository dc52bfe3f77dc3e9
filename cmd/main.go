package main

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"github.com/rapidmidiex/notedrill"
	"github.com/rapidmidiex/notedrill/config"
	"github.com/rapidmidiex/notedrill/midiin"
	"github.com/rapidmidiex/notedrill/synth"
)

var (
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "notedrill",
	Short: "Sight-reading practice in the terminal",
	Long: `Note Drill shows a note on a grand staff and waits for you to play it,
on the qwerty piano or an attached MIDI keyboard.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		closeLog, err := setupLogging(cfg, true)
		if err != nil {
			return err
		}
		defer closeLog()

		engine := newEngine(cfg, synth.NewSpeaker(cfg.Audio.Latency))
		if cfg.Audio.Enabled {
			// A failed start leaves the engine silent; practice still works.
			_ = engine.Start()
		}
		defer engine.Stop()

		var kb *midiin.Keyboard
		if cfg.MIDI.Enabled {
			kb, err = midiin.Open(cfg.MIDI.Port)
			if err != nil {
				log.Printf("midi: %v", err)
			} else {
				defer kb.Close()
			}
		}

		return notedrill.Run(notedrill.Options{
			Config:   cfg,
			Player:   engine,
			Keyboard: kb,
			Logger:   log.Default(),
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/notedrill/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write a debug log")
}

func main() {
	cobra.CheckErr(rootCmd.Execute())
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if debug {
		cfg.Log.Debug = true
	}
	return cfg, nil
}

// setupLogging points the standard logger at the log file when debugging.
// The TUI owns the terminal, so without a file logs are dropped; command
// line tools log to stderr instead.
func setupLogging(cfg *config.Config, tui bool) (func(), error) {
	if cfg.Log.Debug && cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "notedrill")
		if err != nil {
			return nil, err
		}
		return func() { f.Close() }, nil
	}
	if tui || !cfg.Log.Debug {
		log.SetOutput(io.Discard)
	}
	return func() {}, nil
}

func newEngine(cfg *config.Config, out synth.Output, opts ...synth.EngineOption) *synth.Engine {
	opts = append([]synth.EngineOption{
		synth.WithQueueSize(cfg.Audio.QueueSize),
		synth.WithLogger(log.Default()),
	}, opts...)
	return synth.NewEngine(out, opts...)
}
