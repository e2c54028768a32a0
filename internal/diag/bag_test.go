package diag

import (
	"testing"

	"ccparse/internal/source"
)

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)

	if !bag.Add(Diagnostic{Severity: SevError, Code: SynMissingType}) {
		t.Error("first Add should succeed")
	}
	if !bag.Add(Diagnostic{Severity: SevWarning, Code: LintSubjectTooLong}) {
		t.Error("second Add should succeed")
	}
	if bag.Add(Diagnostic{Severity: SevError, Code: SynInvalidType}) {
		t.Error("Add beyond limit should report false")
	}
	if bag.Len() != 2 {
		t.Errorf("expected 2 diagnostics, got %d", bag.Len())
	}
}

func TestBagSeverityQueries(t *testing.T) {
	bag := NewBag(8)
	bag.Add(Diagnostic{Severity: SevWarning, Code: LintSubjectTooLong})

	if bag.HasErrors() {
		t.Error("bag with only warnings should not report errors")
	}
	if !bag.HasWarnings() {
		t.Error("bag should report warnings")
	}

	bag.Add(Diagnostic{Severity: SevError, Code: SynUnexpectedToken})
	if !bag.HasErrors() {
		t.Error("bag should report errors after adding one")
	}
}

func TestBagSortIsPositional(t *testing.T) {
	bag := NewBag(8)
	bag.Add(Diagnostic{Severity: SevWarning, Code: LintSubjectTooLong, Primary: source.Span{Start: 10, End: 12}})
	bag.Add(Diagnostic{Severity: SevError, Code: SynUnclosedScope, Primary: source.Span{Start: 4, End: 5}})
	bag.Sort()

	items := bag.Items()
	if items[0].Code != SynUnclosedScope {
		t.Errorf("expected earliest span first, got %v", items[0].Code)
	}
}

func TestCodeID(t *testing.T) {
	cases := []struct {
		code Code
		want string
	}{
		{LexNoProgress, "LEX1001"},
		{SynMissingType, "SYN2001"},
		{SynUnexpectedToken, "SYN2006"},
		{LintSubjectTooLong, "LNT3001"},
		{IOLoadFileError, "IO4001"},
		{UnknownCode, "E0000"},
	}
	for _, tc := range cases {
		if got := tc.code.ID(); got != tc.want {
			t.Errorf("Code(%d).ID(): expected %q, got %q", tc.code, tc.want, got)
		}
	}
}
