package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rapidmidiex/notedrill/synth"
)

var renderOut string

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "WAV file to write")
	_ = renderCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render NOTE...",
	Short: "Renders notes to a WAV file",
	Long:  `Renders each note for one second and writes them back to back as a 16-bit stereo WAV file.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := parseNotes(args)
		if err != nil {
			return err
		}

		bufs := make([]*synth.Buffer, 0, len(notes))
		for _, n := range notes {
			bufs = append(bufs, synth.Render(n, 2))
		}

		f, err := os.Create(renderOut)
		if err != nil {
			return err
		}
		if err := synth.WriteWAV(f, bufs...); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		for i, b := range bufs {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.2f Hz\t%d samples\n", notes[i].Name(), b.Frequency, b.Len())
		}
		return nil
	},
}
