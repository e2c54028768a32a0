package token

import (
	"ccparse/internal/source"
)

// Token represents a single message token with its location.
// Text is always the exact substring matched, so concatenating the Text of
// every token in order reproduces the input.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsStructural reports whether the token is one of the header punctuation marks.
func (t Token) IsStructural() bool {
	switch t.Kind {
	case Colon, OpenParen, CloseParen, Bang, Hash:
		return true
	default:
		return false
	}
}

// EndsLine reports whether the token terminates the current line.
func (t Token) EndsLine() bool {
	switch t.Kind {
	case Newline, BlankLine, EOF:
		return true
	default:
		return false
	}
}

// IsWord reports whether the token is a word.
func (t Token) IsWord() bool { return t.Kind == Word }
