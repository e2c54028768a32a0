package diagfmt

import (
	"strings"
	"testing"

	"ccparse/internal/diag"
	"ccparse/internal/source"
)

func TestPrettyRendersPositionAndCaret(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("msg", []byte("feat(parser: x"))

	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynUnclosedScope,
		Message:  "scope opened with '(' but never closed",
		Primary:  source.Span{File: id, Start: 11, End: 12},
	})

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})
	out := sb.String()

	if !strings.Contains(out, "msg:1:12: ERROR [SYN2003]: scope opened with '(' but never closed") {
		t.Errorf("missing header line in output:\n%s", out)
	}
	if !strings.Contains(out, "  feat(parser: x") {
		t.Errorf("missing source line in output:\n%s", out)
	}
	caret := "  " + strings.Repeat(" ", 11) + "^"
	if !strings.Contains(out, caret) {
		t.Errorf("missing caret underline in output:\n%s", out)
	}
}

func TestPrettyMultiByteSpanUnderline(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("msg", []byte("Feat: x"))

	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynInvalidType,
		Message:  "invalid type",
		Primary:  source.Span{File: id, Start: 0, End: 4},
	})

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})

	if !strings.Contains(sb.String(), "  ^~~~") {
		t.Errorf("expected 4-wide underline:\n%s", sb.String())
	}
}

func TestCaretLineClampsToLine(t *testing.T) {
	start := source.LineCol{Line: 1, Col: 9}
	end := source.LineCol{Line: 1, Col: 9}
	if got := caretLine(start, end, "feat: x"); got != "       ^" {
		t.Errorf("caretLine past end of line: got %q", got)
	}
}
