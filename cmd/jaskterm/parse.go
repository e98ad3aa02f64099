package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jask/jaskterm/internal/command"
)

var subjectFlag string

// parseOutput is the YAML document `jaskterm parse` prints.
type parseOutput struct {
	Input     string              `yaml:"input"`
	Subject   string              `yaml:"subject,omitempty"`
	Kind      command.Kind        `yaml:"kind"`
	Canonical string              `yaml:"canonical,omitempty"`
	Command   command.Command     `yaml:"command,omitempty"`
	Error     *command.ParseError `yaml:"error,omitempty"`
}

var errParseFailed = errors.New("command did not parse")

var parseCmd = &cobra.Command{
	Use:   "parse <command...>",
	Short: "Interpret a command line and print the result as YAML.",
	Long: `Parse runs the command interpreter without opening the terminal.
Use --subject to supply the panel's current ticker, as the workspace would.`,
	Example: "  jaskterm parse AAPL GP 6M\n  jaskterm parse --subject MSFT CN",
	Args:    cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		input := strings.Join(args, " ")
		parsed := command.Parse(input, subjectFlag)

		out := parseOutput{Input: input, Subject: strings.ToUpper(subjectFlag), Kind: parsed.Kind()}
		if e, ok := parsed.(command.Error); ok {
			out.Error = e.Err
		} else {
			out.Command = parsed
			out.Canonical = command.Format(parsed)
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
		if out.Error != nil {
			return errParseFailed
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&subjectFlag, "subject", "s", "", "Current panel subject used as context.")
}
