package token

// Kind represents the category of a commit message token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the message.
	EOF

	// Word represents a contiguous run of non-whitespace, non-structural
	// characters: type names, scope content, footer keys.
	Word
	// Colon represents the ':' separating the header prefix from the description.
	Colon // :
	// OpenParen opens a scope.
	OpenParen // (
	// CloseParen closes a scope.
	CloseParen // )
	// Bang is the breaking-change marker.
	Bang // !
	// Hash introduces a footer reference value.
	Hash // #
	// Space is a structural separator. Runs of spaces collapse into a single
	// Space token whose Text keeps the full run.
	Space
	// Newline is a single line break that does not end a section.
	Newline
	// BlankLine is a section boundary: two consecutive newlines, or a final
	// newline that ends the message.
	BlankLine
	// Text is free-form content: descriptions, body lines, footer values.
	Text
)

var kindNames = [...]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Word:       "Word",
	Colon:      "Colon",
	OpenParen:  "OpenParen",
	CloseParen: "CloseParen",
	Bang:       "Bang",
	Hash:       "Hash",
	Space:      "Space",
	Newline:    "Newline",
	BlankLine:  "BlankLine",
	Text:       "Text",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}
