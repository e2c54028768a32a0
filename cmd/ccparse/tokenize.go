package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ccparse/internal/diagfmt"
	"ccparse/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file|->",
	Short: "Tokenize a commit message",
	Long:  `Tokenize breaks a commit message into its raw token sequence without validating the grammar`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().StringP("message", "m", "", "commit message text instead of a file")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	in, err := resolveInput(cmd, args)
	if err != nil {
		return err
	}

	result, err := tokenizeInput(in, driver.Options{MaxDiagnostics: maxDiagnostics(cmd)})
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	format := outputFormat(cmd, cfg)
	printDiagnostics(cmd, cfg, result, format)

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
