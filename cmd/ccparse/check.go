package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ccparse/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file>...",
	Short: "Validate many commit messages at once",
	Long:  `Check parses every given message file concurrently and reports which ones violate the Conventional Commits grammar`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "worker count, 0 means one per CPU")
	checkCmd.Flags().Bool("cache", false, "reuse parses of unchanged messages across runs")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	jobs := cfg.Check.Jobs
	if cmd.Flags().Changed("jobs") {
		if jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	useCache := cfg.Check.Cache
	if cmd.Flags().Changed("cache") {
		if useCache, err = cmd.Flags().GetBool("cache"); err != nil {
			return fmt.Errorf("failed to get cache flag: %w", err)
		}
	}

	var cache *driver.DiskCache
	if useCache {
		if cache, err = driver.OpenDiskCache(); err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
	}

	results, err := driver.CheckPaths(cmd.Context(), args, driver.CheckOptions{
		Options: driver.Options{
			MaxDiagnostics:   maxDiagnostics(cmd),
			MaxSubjectLength: cfg.Lint.MaxSubjectLength,
		},
		Jobs:  jobs,
		Cache: cache,
	})
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	format := outputFormat(cmd, cfg)
	valid := 0
	for _, res := range results {
		printDiagnostics(cmd, cfg, res.Result, format)
		if res.Valid() {
			valid++
		}
	}

	invalid := len(results) - valid
	summary := fmt.Sprintf("checked %d messages: %d valid, %d invalid", len(results), valid, invalid)
	if invalid > 0 {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, summary)
		return fmt.Errorf("%d invalid commit messages", invalid)
	}
	color.New(color.FgGreen).Fprintln(os.Stderr, summary)
	return nil
}
