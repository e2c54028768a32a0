package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the config file looked up from the working directory upwards.
const FileName = "ccparse.toml"

type Config struct {
	Output OutputConfig `toml:"output"`
	Lint   LintConfig   `toml:"lint"`
	Check  CheckConfig  `toml:"check"`
}

type OutputConfig struct {
	Format string `toml:"format"` // pretty|json
	Color  string `toml:"color"`  // auto|on|off
}

type LintConfig struct {
	// MaxSubjectLength warns when the header line is longer; 0 disables.
	MaxSubjectLength int `toml:"max-subject-length"`
}

type CheckConfig struct {
	// Jobs bounds check concurrency; 0 means one worker per CPU.
	Jobs  int  `toml:"jobs"`
	Cache bool `toml:"cache"`
}

// Default returns the configuration used when no ccparse.toml exists.
func Default() Config {
	return Config{
		Output: OutputConfig{Format: "pretty", Color: "auto"},
		Lint:   LintConfig{MaxSubjectLength: 72},
		Check:  CheckConfig{Jobs: 0, Cache: false},
	}
}

// Find walks up from startDir looking for ccparse.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load returns the effective config for startDir: defaults overlaid with the
// nearest ccparse.toml, if any. The second return is the path of the file
// used, empty when running on defaults.
func Load(startDir string) (Config, string, error) {
	cfg := Default()

	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return cfg, "", err
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, path, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, path, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, path, nil
}

func (c *Config) validate() error {
	switch c.Output.Format {
	case "pretty", "json":
	default:
		return fmt.Errorf("invalid [output].format %q (want pretty or json)", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("invalid [output].color %q (want auto, on or off)", c.Output.Color)
	}
	if c.Lint.MaxSubjectLength < 0 {
		return fmt.Errorf("invalid [lint].max-subject-length %d", c.Lint.MaxSubjectLength)
	}
	if c.Check.Jobs < 0 {
		return fmt.Errorf("invalid [check].jobs %d", c.Check.Jobs)
	}
	return nil
}
