package lexer

import (
	"ccparse/internal/token"
)

// peekWordLen counts the word bytes starting at Off+from without consuming.
func (lx *Lexer) peekWordLen(from uint32) uint32 {
	var n uint32
	for {
		b := lx.cursor.PeekAt(from + n)
		if b == 0 || !isWordByte(b) {
			return n
		}
		n++
	}
}

// peekString copies n bytes starting at Off+from without consuming.
func (lx *Lexer) peekString(from, n uint32) string {
	start := lx.cursor.Off + from
	return string(lx.file.Content[start : start+n])
}

// take consumes exactly n bytes as one token of the given kind.
func (lx *Lexer) take(kind token.Kind, n uint32) token.Token {
	start := lx.cursor.Mark()
	for i := uint32(0); i < n; i++ {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}
