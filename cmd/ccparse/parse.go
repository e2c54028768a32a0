package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ccparse/internal/diagfmt"
	"ccparse/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file|->",
	Short: "Parse a commit message into its structured form",
	Long:  `Parse validates a commit message against the Conventional Commits grammar and prints the structured commit`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	parseCmd.Flags().StringP("message", "m", "", "commit message text instead of a file")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	in, err := resolveInput(cmd, args)
	if err != nil {
		return err
	}

	result, err := parseInput(in, driver.Options{
		MaxDiagnostics:   maxDiagnostics(cmd),
		MaxSubjectLength: cfg.Lint.MaxSubjectLength,
	})
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	format := outputFormat(cmd, cfg)
	printDiagnostics(cmd, cfg, result, format)

	if result.Commit == nil {
		return errors.New("message is not a valid conventional commit")
	}

	switch format {
	case "pretty":
		return diagfmt.FormatCommitPretty(os.Stdout, result.Commit)
	case "json":
		return diagfmt.FormatCommitJSON(os.Stdout, result.Commit)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
