package lexer

import (
	"ccparse/internal/diag"
	"ccparse/internal/source"
)

type Options struct {
	// Reporter may be nil; lexing never stops on a report.
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, code, sp, msg)
	}
}
