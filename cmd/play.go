package main

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/rapidmidiex/notedrill/config"
	"github.com/rapidmidiex/notedrill/pitch"
	"github.com/rapidmidiex/notedrill/synth"
)

var (
	playOut string
	playGap time.Duration
)

func init() {
	playCmd.Flags().StringVarP(&playOut, "out", "o", "", "write the notes to a WAV file instead of the speaker")
	playCmd.Flags().DurationVar(&playGap, "gap", 500*time.Millisecond, "time between notes on the speaker")
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play NOTE...",
	Short: "Plays notes through the synthesizer",
	Long: `Plays notes such as C4, F#3 or Bb4 one after another, letting each one ring
over the next.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := parseNotes(args)
		if err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		closeLog, err := setupLogging(cfg, false)
		if err != nil {
			return err
		}
		defer closeLog()

		var out synth.Output = synth.NewSpeaker(cfg.Audio.Latency)
		gap, ringOut := playGap, synth.NoteDuration
		if playOut != "" {
			out = synth.NewWAVOutput(playOut)
			gap, ringOut = 0, 0
		}
		if err := playNotes(cfg, out, notes, gap, ringOut); err != nil {
			return err
		}
		if playOut != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d notes to %s\n", len(notes), playOut)
		}
		return nil
	},
}

// playNotes plays notes gap apart on out, waits ringOut for the last one to
// fade, then stops the engine. The queue holds every note, so nothing is
// dropped when gap is zero.
func playNotes(cfg *config.Config, out synth.Output, notes []pitch.Note, gap, ringOut time.Duration) error {
	engine := newEngine(cfg, out, synth.WithQueueSize(max(cfg.Audio.QueueSize, len(notes))))
	if err := engine.Start(); err != nil {
		return err
	}
	for i, n := range notes {
		if i > 0 && gap > 0 {
			time.Sleep(gap)
		}
		log.Printf("play %s (%.2f Hz)", n, synth.FrequencyOf(n))
		engine.Play(n)
	}
	time.Sleep(ringOut)
	if err := engine.Stop(); err != nil {
		return err
	}
	if d := engine.Dropped(); d > 0 {
		return fmt.Errorf("%d of %d notes dropped", d, len(notes))
	}
	return nil
}

func parseNotes(args []string) ([]pitch.Note, error) {
	notes := make([]pitch.Note, 0, len(args))
	for _, a := range args {
		n, err := pitch.Parse(a)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, nil
}
