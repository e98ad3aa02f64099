package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/jaskterm/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or write the configuration file.",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.Path())
	},
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the effective configuration (defaults, file and env) to the config file.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", config.Path())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configWriteCmd)
}
