package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"ccparse/internal/ast"
)

func TestFormatCommitJSON(t *testing.T) {
	commit := &ast.Commit{
		Type:        "fix",
		Scope:       "auth",
		Breaking:    true,
		Description: "rotate tokens",
		Footers: []ast.Footer{
			{Key: "Refs", Sep: ast.SepColonSpace, Value: "#123"},
			{Key: "See", Sep: ast.SepSpaceHash, Value: "456"},
		},
	}

	var sb strings.Builder
	if err := FormatCommitJSON(&sb, commit); err != nil {
		t.Fatalf("FormatCommitJSON returned error: %v", err)
	}

	var out CommitOutput
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if out.Type != "fix" || out.Scope != "auth" || !out.Breaking {
		t.Errorf("header fields wrong: %+v", out)
	}
	if len(out.Footers) != 2 {
		t.Fatalf("expected 2 footers, got %d", len(out.Footers))
	}
	if out.Footers[0].Separator != "ColonSpace" || out.Footers[1].Separator != "SpaceHash" {
		t.Errorf("separators wrong: %+v", out.Footers)
	}
}

func TestFormatCommitJSONOmitsEmptySections(t *testing.T) {
	commit := &ast.Commit{Type: "docs", Description: "fix typo"}

	var sb strings.Builder
	if err := FormatCommitJSON(&sb, commit); err != nil {
		t.Fatalf("FormatCommitJSON returned error: %v", err)
	}

	out := sb.String()
	for _, field := range []string{"scope", "body", "footers"} {
		if strings.Contains(out, "\""+field+"\"") {
			t.Errorf("empty %s should be omitted:\n%s", field, out)
		}
	}
}

func TestFormatCommitPretty(t *testing.T) {
	commit := &ast.Commit{
		Type:        "feat",
		Scope:       "ui",
		Breaking:    true,
		Description: "new layout",
		Body:        "line one\nline two",
		Footers: []ast.Footer{
			{Key: "Refs", Sep: ast.SepColonSpace, Value: "#9"},
		},
	}

	var sb strings.Builder
	if err := FormatCommitPretty(&sb, commit); err != nil {
		t.Fatalf("FormatCommitPretty returned error: %v", err)
	}

	out := sb.String()
	for _, want := range []string{"Type", "feat", "Scope", "ui", "new layout", "line two", "Refs: #9"} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatTokensJSONStopsAtEOF(t *testing.T) {
	// Covered in driver tests with real token streams; here only the shape.
	var sb strings.Builder
	if err := FormatTokensJSON(&sb, nil); err != nil {
		t.Fatalf("FormatTokensJSON returned error: %v", err)
	}
	if strings.TrimSpace(sb.String()) != "[]" {
		t.Errorf("expected empty JSON array, got %q", sb.String())
	}
}
