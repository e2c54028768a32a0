package parser

import (
	"fmt"

	"ccparse/internal/diag"
	"ccparse/internal/source"
)

// Error is a grammar violation with its location. Parsing is all-or-nothing:
// on error no partial commit is returned.
type Error struct {
	Code diag.Code
	Span source.Span
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code.ID(), e.Msg)
}

// Is makes errors.Is work against a bare *Error carrying only a code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}
