package diag

import (
	"fmt"
)

// Code identifies a diagnostic. Numeric ranges are reserved per stage:
// 1000+ lexer, 2000+ grammar, 3000+ lint, 4000+ I/O.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo       Code = 1000
	LexNoProgress Code = 1001

	// Grammar
	SynInfo               Code = 2000
	SynMissingType        Code = 2001
	SynInvalidType        Code = 2002
	SynUnclosedScope      Code = 2003
	SynMissingColon       Code = 2004
	SynMissingDescription Code = 2005
	SynUnexpectedToken    Code = 2006

	// Lint (warnings, never block parsing)
	LintInfo           Code = 3000
	LintSubjectTooLong Code = 3001

	// I/O
	IOInfo          Code = 4000
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:           "unknown diagnostic",
	LexInfo:               "lexer information",
	LexNoProgress:         "lexer made no progress",
	SynInfo:               "grammar information",
	SynMissingType:        "missing commit type",
	SynInvalidType:        "invalid commit type",
	SynUnclosedScope:      "unclosed scope",
	SynMissingColon:       "missing ':' after header prefix",
	SynMissingDescription: "missing description",
	SynUnexpectedToken:    "unexpected token",
	LintInfo:              "lint information",
	LintSubjectTooLong:    "subject line too long",
	IOInfo:                "I/O information",
	IOLoadFileError:       "failed to load message",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("LNT%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
