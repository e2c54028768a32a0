package driver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ccparse/internal/diag"
	"ccparse/internal/token"
)

func TestParseBytesValid(t *testing.T) {
	msg := "feat(api): add pagination\n\nKeep cursors stable across pages.\n\nRefs: #42\n"
	res, err := ParseBytes("<test>", []byte(msg), Options{})
	if err != nil {
		t.Fatalf("ParseBytes returned error: %v", err)
	}
	if res.Commit == nil {
		t.Fatalf("expected a commit, diagnostics: %+v", res.Bag.Items())
	}
	if res.Bag.HasErrors() {
		t.Errorf("unexpected errors: %+v", res.Bag.Items())
	}
	c := res.Commit
	if c.Type != "feat" || c.Scope != "api" || c.Breaking {
		t.Errorf("header wrong: %+v", c)
	}
	if c.Body != "Keep cursors stable across pages." {
		t.Errorf("body wrong: %q", c.Body)
	}
	if len(c.Footers) != 1 || c.Footers[0].Key != "Refs" || c.Footers[0].Value != "#42" {
		t.Errorf("footers wrong: %+v", c.Footers)
	}
}

func TestParseBytesInvalidGoesToBag(t *testing.T) {
	res, err := ParseBytes("<test>", []byte("Fix: bug"), Options{})
	if err != nil {
		t.Fatalf("ParseBytes returned error: %v", err)
	}
	if res.Commit != nil {
		t.Fatal("expected no commit for invalid type")
	}
	if !res.Bag.HasErrors() {
		t.Fatal("expected a grammar diagnostic in the bag")
	}
	if got := res.Bag.Items()[0].Code; got != diag.SynInvalidType {
		t.Errorf("expected %s, got %s", diag.SynInvalidType.ID(), got.ID())
	}
}

func TestParseFileMissingPath(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "nope.txt"), Options{}); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestParseFileReadsDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	if err := os.WriteFile(path, []byte("docs: fix typo\n"), 0o644); err != nil {
		t.Fatalf("failed to write message: %v", err)
	}
	res, err := ParseFile(path, Options{})
	if err != nil {
		t.Fatalf("ParseFile returned error: %v", err)
	}
	if res.Commit == nil || res.Commit.Type != "docs" {
		t.Errorf("expected docs commit, got %+v", res.Commit)
	}
}

func TestLintSubjectTooLong(t *testing.T) {
	msg := "feat: " + strings.Repeat("x", 80)
	res, err := ParseBytes("<test>", []byte(msg), Options{MaxSubjectLength: 72})
	if err != nil {
		t.Fatalf("ParseBytes returned error: %v", err)
	}
	if res.Commit == nil {
		t.Fatal("long subject must still parse")
	}
	if res.Bag.HasErrors() {
		t.Errorf("lint must not produce errors: %+v", res.Bag.Items())
	}
	if !res.Bag.HasWarnings() {
		t.Fatal("expected a subject length warning")
	}
	if got := res.Bag.Items()[0].Code; got != diag.LintSubjectTooLong {
		t.Errorf("expected %s, got %s", diag.LintSubjectTooLong.ID(), got.ID())
	}

	// Disabled when the limit is zero.
	res, err = ParseBytes("<test>", []byte(msg), Options{MaxSubjectLength: 0})
	if err != nil {
		t.Fatalf("ParseBytes returned error: %v", err)
	}
	if res.Bag.Len() != 0 {
		t.Errorf("expected no diagnostics with lint disabled, got %+v", res.Bag.Items())
	}
}

func TestTokenizeBytesRoundTrip(t *testing.T) {
	msg := "fix(core)!: drop legacy flag\n\nbody line\n\nReviewed-by: Z\n"
	res, err := TokenizeBytes("<test>", []byte(msg), Options{})
	if err != nil {
		t.Fatalf("TokenizeBytes returned error: %v", err)
	}
	if n := len(res.Tokens); n == 0 || res.Tokens[n-1].Kind != token.EOF {
		t.Fatal("token stream must end with EOF")
	}
	var sb strings.Builder
	for _, tok := range res.Tokens {
		sb.WriteString(tok.Text)
	}
	if sb.String() != msg {
		t.Errorf("round trip mismatch:\n got %q\nwant %q", sb.String(), msg)
	}
}
