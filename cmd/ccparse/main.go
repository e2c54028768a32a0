package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ccparse/internal/config"
	"ccparse/internal/diagfmt"
	"ccparse/internal/driver"
	"ccparse/internal/version"
)

var rootCmd = &cobra.Command{
	Use:          "ccparse",
	Short:        "Conventional commit message toolchain",
	Long:         `ccparse tokenizes, parses and validates commit messages written in the Conventional Commits format`,
	SilenceUsage: true,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", driver.DefaultMaxDiagnostics, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// loadConfig returns the effective config for the working directory.
func loadConfig() (config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return config.Default(), err
	}
	cfg, _, err := config.Load(cwd)
	return cfg, err
}

// useColor resolves the color mode: the --color flag wins over the config
// file, "auto" asks whether the stream is a terminal.
func useColor(cmd *cobra.Command, cfg config.Config, out *os.File) bool {
	mode := cfg.Output.Color
	if f := cmd.Root().PersistentFlags().Lookup("color"); f != nil && f.Changed {
		mode = f.Value.String()
	}
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(out)
	}
}

// outputFormat resolves pretty|json: the --format flag wins over the config.
func outputFormat(cmd *cobra.Command, cfg config.Config) string {
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		return f.Value.String()
	}
	return cfg.Output.Format
}

// printDiagnostics writes the bag to stderr, machine-readable when the
// output format is json.
func printDiagnostics(cmd *cobra.Command, cfg config.Config, result *driver.Result, format string) {
	if result.Bag.Len() == 0 {
		return
	}
	if format == "json" {
		_ = diagfmt.JSON(os.Stderr, result.Bag, result.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
		})
		return
	}
	diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
		Color:     useColor(cmd, cfg, os.Stderr),
		ShowNotes: true,
	})
}

func maxDiagnostics(cmd *cobra.Command) int {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil || n <= 0 {
		return driver.DefaultMaxDiagnostics
	}
	return n
}
