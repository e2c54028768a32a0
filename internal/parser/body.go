package parser

import (
	"strings"

	"ccparse/internal/ast"
	"ccparse/internal/diag"
	"ccparse/internal/token"
)

// parseBodyAndFooters reads the sections after the first blank line. Lines
// matching the footer pattern accumulate as footers; everything else is body
// text, paragraphs separated by blank lines. Once the first footer is seen
// the footer block is trailing: later plain lines continue the previous
// footer's value instead of reopening the body.
func (p *Parser) parseBodyAndFooters() (state, error) {
	var paragraphs []string
	var current []string
	footerSeen := false

	closeParagraph := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, "\n"))
			current = nil
		}
	}

	for {
		tok := p.peek()
		switch tok.Kind {
		case token.EOF:
			closeParagraph()
			p.commit.Body = strings.Join(paragraphs, "\n\n")
			return stDone, nil

		case token.BlankLine:
			p.next()
			closeParagraph()

		case token.Newline:
			p.next()

		case token.Word:
			if err := p.parseFooterLine(); err != nil {
				return stDone, err
			}
			footerSeen = true

		case token.Text:
			p.next()
			if footerSeen {
				last := &p.commit.Footers[len(p.commit.Footers)-1]
				last.Value += "\n" + tok.Text
			} else {
				current = append(current, tok.Text)
			}

		default:
			return stDone, p.fail(diag.SynUnexpectedToken, tok.Span,
				"unexpected token in commit body")
		}
	}
}

// parseFooterLine consumes `key: value`, `key #value`, or the two-word
// breaking-change key. The lexer guarantees the line shape; anything else
// here is an internal inconsistency surfaced as an unexpected token.
func (p *Parser) parseFooterLine() error {
	key := p.next().Text

	if p.at(token.Space) && p.toksAhead(1) == token.Word {
		p.next()
		key += " " + p.next().Text
	}

	var sep ast.SeparatorKind
	switch tok := p.peek(); tok.Kind {
	case token.Colon:
		p.next()
		if !p.at(token.Space) {
			return p.fail(diag.SynUnexpectedToken, p.peek().Span,
				"footer value must follow ':' after one space")
		}
		p.next()
		sep = ast.SepColonSpace
	case token.Space:
		p.next()
		if !p.at(token.Hash) {
			return p.fail(diag.SynUnexpectedToken, p.peek().Span,
				"expected '#' after the footer key")
		}
		p.next()
		sep = ast.SepSpaceHash
	default:
		return p.fail(diag.SynUnexpectedToken, tok.Span,
			"expected ':' or '#' after the footer key")
	}

	var value string
	if p.at(token.Text) {
		value = p.next().Text
	}

	p.commit.Footers = append(p.commit.Footers, ast.Footer{
		Key:   key,
		Sep:   sep,
		Value: value,
	})
	return nil
}

// toksAhead peeks n tokens past the cursor, EOF-safe.
func (p *Parser) toksAhead(n int) token.Kind {
	if p.pos+n >= len(p.toks) {
		return token.EOF
	}
	return p.toks[p.pos+n].Kind
}
