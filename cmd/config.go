package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rapidmidiex/notedrill/config"
)

var forceInit bool

func init() {
	configInitCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "overwrite an existing file")
	configCmd.AddCommand(configShowCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Shows or creates the config file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Prints the effective config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Writes the default config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			p, err := config.ConfigPath()
			if err != nil {
				return err
			}
			path = p
		}
		if _, err := os.Stat(path); err == nil && !forceInit {
			return fmt.Errorf("%s exists, use --force to overwrite", path)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err := config.DefaultConfig().Save(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}
