package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jask/jaskterm/internal/catalog"
)

var functionsVerbose bool

var functionsCmd = &cobra.Command{
	Use:     "functions [prefix]",
	Aliases: []string{"fn"},
	Short:   "List terminal functions and their usage.",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.Default()
		entries := cat.Entries()
		if len(args) == 1 {
			entries = cat.Complete(args[0])
		}
		w := cmd.OutOrStdout()
		for _, e := range entries {
			fmt.Fprintf(w, "%-32s %s\n", e.Usage(), e.Title)
			if !functionsVerbose {
				continue
			}
			fmt.Fprintf(w, "    %s\n", e.Description)
			if len(e.Aliases) > 0 {
				fmt.Fprintf(w, "    aliases: %s\n", strings.Join(e.Aliases, ", "))
			}
			if e.Example != "" {
				fmt.Fprintf(w, "    example: %s\n", e.Example)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(functionsCmd)
	functionsCmd.Flags().BoolVarP(&functionsVerbose, "verbose", "v", false, "Show descriptions, aliases and examples.")
}
