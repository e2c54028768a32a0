package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	cfg, path, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if path != "" {
		t.Errorf("expected no config file, got %q", path)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	dir := t.TempDir()
	content := "[output]\nformat = \"json\"\n\n[lint]\nmax-subject-length = 50\n"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, path, err := Load(dir)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if path == "" {
		t.Error("expected config path to be reported")
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Format: expected json, got %q", cfg.Output.Format)
	}
	if cfg.Lint.MaxSubjectLength != 50 {
		t.Errorf("MaxSubjectLength: expected 50, got %d", cfg.Lint.MaxSubjectLength)
	}
	// Untouched sections keep defaults.
	if cfg.Output.Color != "auto" {
		t.Errorf("Color: expected default auto, got %q", cfg.Output.Color)
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("failed to create nested dirs: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, FileName), []byte(""), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	path, ok, err := Find(nested)
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if !ok {
		t.Fatal("expected config to be found from nested dir")
	}
	if filepath.Dir(path) != root {
		t.Errorf("expected config in %q, found %q", root, path)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad format", "[output]\nformat = \"xml\"\n"},
		{"bad color", "[output]\ncolor = \"sometimes\"\n"},
		{"negative jobs", "[check]\njobs = -1\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, FileName), []byte(tc.content), 0o644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}
			if _, _, err := Load(dir); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
