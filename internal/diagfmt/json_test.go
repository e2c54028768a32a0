package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"ccparse/internal/diag"
	"ccparse/internal/source"
)

func TestJSONDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<test>", []byte("Fix: bug\n"))

	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynInvalidType,
		Message:  "invalid commit type",
		Primary:  source.Span{File: id, Start: 0, End: 3},
	})

	var sb strings.Builder
	err := JSON(&sb, bag, fs, JSONOpts{IncludePositions: true, IncludeNotes: true})
	if err != nil {
		t.Fatalf("JSON returned error: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("expected one diagnostic, got %+v", out)
	}

	d := out.Diagnostics[0]
	if d.Code != "SYN2002" || d.Severity != "ERROR" {
		t.Errorf("code/severity wrong: %+v", d)
	}
	if d.Location.File != "<test>" || d.Location.StartByte != 0 || d.Location.EndByte != 3 {
		t.Errorf("location wrong: %+v", d.Location)
	}
	if d.Location.StartLine != 1 || d.Location.StartCol != 1 || d.Location.EndCol != 4 {
		t.Errorf("positions wrong: %+v", d.Location)
	}
}

func TestJSONDiagnosticsEmptyBag(t *testing.T) {
	fs := source.NewFileSet()
	bag := diag.NewBag(8)

	var sb strings.Builder
	if err := JSON(&sb, bag, fs, JSONOpts{}); err != nil {
		t.Fatalf("JSON returned error: %v", err)
	}
	if !strings.Contains(sb.String(), "\"diagnostics\": []") {
		t.Errorf("empty bag should encode an empty array:\n%s", sb.String())
	}
}
