package lexer

import (
	"strings"

	"ccparse/internal/token"
)

// scanBodyLine is called at the start of a non-blank line after the header.
// A line matching the footer-key heuristic gets structural tokens for its
// key and separator; any other line is one verbatim Text token.
func (lx *Lexer) scanBodyLine() token.Token {
	if toks, ok := lx.scanFooterLine(); ok {
		tok := toks[0]
		lx.pending = toks[1:]
		return tok
	}
	return lx.scanTextLine()
}

// scanTextLine consumes the rest of the line verbatim, punctuation included.
func (lx *Lexer) scanTextLine() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Text, Span: sp, Text: lx.text(sp)}
}

// scanFooterLine recognizes the two footer forms:
//
//	key: value
//	key #value
//
// plus the two-word breaking-change key (`BREAKING CHANGE: value`), which is
// the only key allowed to contain a space. Returns the tokens of the whole
// line and whether the heuristic matched.
func (lx *Lexer) scanFooterLine() ([]token.Token, bool) {
	n := lx.peekWordLen(0)
	if n == 0 {
		return nil, false
	}
	after0 := lx.cursor.PeekAt(n)
	after1 := lx.cursor.PeekAt(n + 1)

	switch {
	case after0 == ':' && after1 == ' ':
		toks := []token.Token{
			lx.take(token.Word, n),
			lx.take(token.Colon, 1),
			lx.take(token.Space, 1),
		}
		return lx.appendRestText(toks), true

	case after0 == ' ' && after1 == '#':
		toks := []token.Token{
			lx.take(token.Word, n),
			lx.take(token.Space, 1),
			lx.take(token.Hash, 1),
		}
		return lx.appendRestText(toks), true

	case after0 == ' ':
		m := lx.peekWordLen(n + 1)
		if m == 0 || lx.cursor.PeekAt(n+1+m) != ':' || lx.cursor.PeekAt(n+2+m) != ' ' {
			return nil, false
		}
		first := lx.peekString(0, n)
		second := lx.peekString(n+1, m)
		if !strings.EqualFold(first, "BREAKING") || !strings.EqualFold(second, "CHANGE") {
			return nil, false
		}
		toks := []token.Token{
			lx.take(token.Word, n),
			lx.take(token.Space, 1),
			lx.take(token.Word, m),
			lx.take(token.Colon, 1),
			lx.take(token.Space, 1),
		}
		return lx.appendRestText(toks), true
	}

	return nil, false
}

// appendRestText adds the remainder of the line as a Text token, if any.
func (lx *Lexer) appendRestText(toks []token.Token) []token.Token {
	if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
		return toks
	}
	return append(toks, lx.scanTextLine())
}
