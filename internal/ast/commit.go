package ast

import (
	"strings"
)

// SeparatorKind distinguishes the two footer syntaxes.
type SeparatorKind uint8

const (
	// SepColonSpace is the `key: value` footer form.
	SepColonSpace SeparatorKind = iota
	// SepSpaceHash is the `key #value` footer form.
	SepSpaceHash
)

func (s SeparatorKind) String() string {
	switch s {
	case SepColonSpace:
		return "ColonSpace"
	case SepSpaceHash:
		return "SpaceHash"
	}
	return "Unknown"
}

// Footer is one trailing metadata entry, e.g. `Refs: #123` or `See #456`.
type Footer struct {
	Key   string
	Sep   SeparatorKind
	Value string
}

// IsBreakingChange reports whether the footer key signals a breaking change.
func (f Footer) IsBreakingChange() bool {
	return strings.EqualFold(f.Key, "BREAKING CHANGE") ||
		strings.EqualFold(f.Key, "BREAKING-CHANGE")
}

// Commit is a fully parsed conventional commit message.
// Scope and Body are empty when absent. Footers preserve source order.
type Commit struct {
	Type        string
	Scope       string
	Breaking    bool
	Description string
	Body        string
	Footers     []Footer
}

// HasScope reports whether a scope was present in the header.
func (c *Commit) HasScope() bool { return c.Scope != "" }

// HasBody reports whether the message carried a body section.
func (c *Commit) HasBody() bool { return c.Body != "" }

// Header reconstructs the canonical header line.
func (c *Commit) Header() string {
	var sb strings.Builder
	sb.WriteString(c.Type)
	if c.Scope != "" {
		sb.WriteByte('(')
		sb.WriteString(c.Scope)
		sb.WriteByte(')')
	}
	if c.Breaking {
		sb.WriteByte('!')
	}
	sb.WriteString(": ")
	sb.WriteString(c.Description)
	return sb.String()
}
