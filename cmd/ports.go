package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rapidmidiex/notedrill/midiin"
)

func init() {
	rootCmd.AddCommand(portsCmd)
}

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "Lists MIDI input ports",
	Long:  `Lists MIDI input ports. Use part of a name as midi.port in the config file.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ports := midiin.Ports()
		if len(ports) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no MIDI inputs found")
			return
		}
		for i, p := range ports {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i, p)
		}
	},
}
