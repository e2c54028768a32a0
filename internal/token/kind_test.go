package token

import "testing"

func TestKindString(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{Invalid, "Invalid"},
		{EOF, "EOF"},
		{Word, "Word"},
		{Colon, "Colon"},
		{OpenParen, "OpenParen"},
		{CloseParen, "CloseParen"},
		{Bang, "Bang"},
		{Hash, "Hash"},
		{Space, "Space"},
		{Newline, "Newline"},
		{BlankLine, "BlankLine"},
		{Text, "Text"},
		{Kind(200), "Unknown"},
	}

	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Kind(%d).String(): expected %q, got %q", tc.kind, tc.want, got)
		}
	}
}

func TestEndsLine(t *testing.T) {
	if !(Token{Kind: Newline}).EndsLine() {
		t.Error("Newline should end a line")
	}
	if !(Token{Kind: BlankLine}).EndsLine() {
		t.Error("BlankLine should end a line")
	}
	if !(Token{Kind: EOF}).EndsLine() {
		t.Error("EOF should end a line")
	}
	if (Token{Kind: Text}).EndsLine() {
		t.Error("Text should not end a line")
	}
}
