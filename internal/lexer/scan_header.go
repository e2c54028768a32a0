package lexer

import (
	"ccparse/internal/token"
)

// scanHeader classifies the next run of bytes on the header line.
// Precedence: structural punctuation, space runs, word runs.
func (lx *Lexer) scanHeader() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Peek()

	if kind, ok := structuralKind(b); ok {
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
	}

	if b == ' ' {
		// Runs of spaces are separator noise: one Space token, full run
		// preserved in Text so lexing stays lossless.
		for lx.cursor.Eat(' ') {
		}
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Space, Span: sp, Text: lx.text(sp)}
	}

	return lx.scanWord()
}

// scanWord consumes a contiguous run of non-whitespace, non-structural bytes.
func (lx *Lexer) scanWord() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isWordByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	if sp.Empty() {
		// Unclassifiable byte; consume it so the scan always advances.
		lx.cursor.Bump()
		sp = lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	return token.Token{Kind: token.Word, Span: sp, Text: lx.text(sp)}
}

func structuralKind(b byte) (token.Kind, bool) {
	switch b {
	case ':':
		return token.Colon, true
	case '(':
		return token.OpenParen, true
	case ')':
		return token.CloseParen, true
	case '!':
		return token.Bang, true
	case '#':
		return token.Hash, true
	}
	return token.Invalid, false
}

func isStructuralByte(b byte) bool {
	_, ok := structuralKind(b)
	return ok
}

func isWordByte(b byte) bool {
	return b != ' ' && b != '\n' && !isStructuralByte(b)
}
