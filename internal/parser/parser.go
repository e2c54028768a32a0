package parser

import (
	"strconv"
	"strings"

	"ccparse/internal/ast"
	"ccparse/internal/diag"
	"ccparse/internal/source"
	"ccparse/internal/token"
)

type Options struct {
	// Reporter receives the failing diagnostic, if any. May be nil.
	Reporter diag.Reporter
}

// state is the parser's current expectation, threaded through a loop so the
// grammar walk never recurses.
type state uint8

const (
	stStart state = iota
	stAfterType
	stInScope
	stAfterMarker
	stAfterColon
	stHeaderDone
	stBodyOrFooter
	stDone
)

// Parser reads a token sequence with a single cursor and one token of
// lookahead.
type Parser struct {
	toks []token.Token
	pos  int
	opts Options

	commit ast.Commit
	marker bool // `!` seen before the colon
}

// ParseCommit assembles a token sequence into a validated commit.
// On the first grammar violation it reports one diagnostic and returns a
// *Error; no partial commit is ever returned.
func ParseCommit(tokens []token.Token, opts Options) (*ast.Commit, error) {
	p := Parser{toks: tokens, opts: opts}

	st := stStart
	for st != stDone {
		var err error
		switch st {
		case stStart:
			st, err = p.parseType()
		case stAfterType:
			st, err = p.parseAfterType()
		case stInScope:
			st, err = p.parseScope()
		case stAfterMarker:
			st, err = p.parseMarkerColon()
		case stAfterColon:
			st, err = p.parseDescription()
		case stHeaderDone:
			st, err = p.parseHeaderEnd()
		case stBodyOrFooter:
			st, err = p.parseBodyAndFooters()
		}
		if err != nil {
			return nil, err
		}
	}

	p.commit.Breaking = p.marker
	for _, f := range p.commit.Footers {
		if f.IsBreakingChange() {
			p.commit.Breaking = true
			break
		}
	}
	return &p.commit, nil
}

func (p *Parser) peek() token.Token {
	if p.pos >= len(p.toks) {
		var sp source.Span
		if n := len(p.toks); n > 0 {
			sp = p.toks[n-1].Span
		}
		return token.Token{Kind: token.EOF, Span: sp}
	}
	return p.toks[p.pos]
}

func (p *Parser) next() token.Token {
	tok := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return tok
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

// fail emits the diagnostic and builds the returned error.
func (p *Parser) fail(code diag.Code, sp source.Span, msg string) error {
	diag.ReportError(p.opts.Reporter, code, sp, msg)
	return &Error{Code: code, Span: sp, Msg: msg}
}

func (p *Parser) parseType() (state, error) {
	tok := p.peek()
	if tok.Kind != token.Word {
		return stDone, p.fail(diag.SynMissingType, tok.Span,
			"commit message must start with a type, e.g. \"feat: ...\"")
	}
	if !isValidType(tok.Text) {
		return stDone, p.fail(diag.SynInvalidType, tok.Span,
			"commit type must be lowercase letters, digits or '-', got "+strconv.Quote(tok.Text))
	}
	p.next()
	p.commit.Type = tok.Text
	return stAfterType, nil
}

func (p *Parser) parseAfterType() (state, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.OpenParen:
		if p.commit.HasScope() {
			return stDone, p.fail(diag.SynUnexpectedToken, tok.Span,
				"only one scope is allowed")
		}
		p.next()
		return stInScope, nil
	case token.Bang:
		p.next()
		p.marker = true
		return stAfterMarker, nil
	case token.Colon:
		p.next()
		return stAfterColon, nil
	default:
		return stDone, p.fail(diag.SynUnexpectedToken, tok.Span,
			"expected '(', '!' or ':' after the commit type")
	}
}

func (p *Parser) parseScope() (state, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.Word:
		p.next()
	case token.Colon, token.Newline, token.BlankLine, token.EOF:
		return stDone, p.fail(diag.SynUnclosedScope, tok.Span,
			"scope opened with '(' but never closed")
	default:
		return stDone, p.fail(diag.SynUnexpectedToken, tok.Span,
			"scope must be a single word enclosed in parentheses")
	}

	closing := p.peek()
	switch closing.Kind {
	case token.CloseParen:
		p.next()
		p.commit.Scope = tok.Text
		return stAfterType, nil
	case token.Colon, token.Newline, token.BlankLine, token.EOF:
		return stDone, p.fail(diag.SynUnclosedScope, closing.Span,
			"scope opened with '(' but never closed")
	default:
		return stDone, p.fail(diag.SynUnexpectedToken, closing.Span,
			"expected ')' after the scope")
	}
}

func (p *Parser) parseMarkerColon() (state, error) {
	tok := p.peek()
	if tok.Kind != token.Colon {
		return stDone, p.fail(diag.SynMissingColon, tok.Span,
			"expected ':' after the breaking-change marker")
	}
	p.next()
	return stAfterColon, nil
}

func (p *Parser) parseDescription() (state, error) {
	tok := p.peek()
	if tok.Kind != token.Space {
		return stDone, p.fail(diag.SynMissingDescription, tok.Span,
			"description must follow the ':' after one space")
	}
	p.next()

	var sb strings.Builder
	for !p.peek().EndsLine() {
		sb.WriteString(p.next().Text)
	}

	desc := strings.TrimSpace(sb.String())
	if desc == "" {
		return stDone, p.fail(diag.SynMissingDescription, p.peek().Span,
			"description must not be empty")
	}
	p.commit.Description = desc
	return stHeaderDone, nil
}

func (p *Parser) parseHeaderEnd() (state, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.EOF:
		return stDone, nil
	case token.BlankLine:
		p.next()
		return stBodyOrFooter, nil
	case token.Newline:
		p.next()
		if p.at(token.EOF) {
			return stDone, nil
		}
		return stDone, p.fail(diag.SynUnexpectedToken, p.peek().Span,
			"body must be separated from the header by a blank line")
	default:
		return stDone, p.fail(diag.SynUnexpectedToken, tok.Span,
			"unexpected content after the description")
	}
}

func isValidType(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		b := s[i]
		if (b < 'a' || b > 'z') && (b < '0' || b > '9') && b != '-' {
			return false
		}
	}
	return true
}
