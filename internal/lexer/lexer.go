package lexer

import (
	"fmt"

	"ccparse/internal/diag"
	"ccparse/internal/source"
	"ccparse/internal/token"
)

// scanMode selects how structural characters are interpreted. The header
// line treats `: ( ) ! #` as punctuation; after the header everything folds
// into free-form text except footer keys and separators.
type scanMode uint8

const (
	modeHeader scanMode = iota
	modeBody
)

// Lexer scans one commit message left to right. It holds no state besides
// the cursor, the scan mode, and a small queue of tokens pre-scanned for the
// current body line.
type Lexer struct {
	file    *source.File
	cursor  Cursor
	opts    Options
	mode    scanMode
	pending []token.Token // tokens of a footer line, emitted in order
	online  bool          // current line has content before the cursor
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		mode:   modeHeader,
	}
}

// Next returns the next token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if len(lx.pending) > 0 {
		tok := lx.pending[0]
		lx.pending = lx.pending[1:]
		lx.online = true
		return tok
	}

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.EmptySpan(),
			Text: "",
		}
	}

	if lx.cursor.Peek() == '\n' {
		return lx.scanLineBreak()
	}

	var tok token.Token
	switch lx.mode {
	case modeHeader:
		tok = lx.scanHeader()
	default:
		tok = lx.scanBodyLine()
	}
	lx.online = true
	return tok
}

// EmptySpan returns a zero-width span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// scanLineBreak classifies a newline: a pair of newlines is a section
// boundary, and so is a final newline that ends a non-empty line.
func (lx *Lexer) scanLineBreak() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()

	kind := token.Newline
	switch {
	case lx.cursor.Peek() == '\n':
		lx.cursor.Bump()
		kind = token.BlankLine
	case lx.cursor.EOF() && lx.online:
		kind = token.BlankLine
	}

	lx.mode = modeBody
	lx.online = false

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

// Lex scans the whole message into a token sequence ending with EOF.
// It is total over all inputs; the only failure is the internal
// no-progress invariant.
func Lex(file *source.File, opts Options) ([]token.Token, error) {
	lx := New(file, opts)
	tokens := make([]token.Token, 0, 16)
	for {
		before := lx.cursor.Off
		pendingBefore := len(lx.pending)
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
		if lx.cursor.Off == before && len(lx.pending) == pendingBefore {
			sp := lx.EmptySpan()
			lx.report(diag.LexNoProgress, sp, "lexer made no progress")
			return nil, fmt.Errorf("lexer made no progress at offset %d", before)
		}
	}
}
