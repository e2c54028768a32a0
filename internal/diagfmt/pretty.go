package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"ccparse/internal/diag"
	"ccparse/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	caretColor   = color.New(color.FgGreen, color.Bold)
)

// Pretty renders diagnostics in a human-readable form:
//
//	<path>:<line>:<col>: <SEVERITY> [<CODE>]: <message>
//	  <source line>
//	  <caret underline>
//
// Callers are expected to Sort() the bag first.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printDiagnostic(w, d, fs, opts)
		if opts.ShowNotes {
			for _, note := range d.Notes {
				file := fs.Get(note.Span.File)
				if file == nil {
					fmt.Fprintf(w, "  note: %s\n", note.Msg)
					continue
				}
				start, _ := fs.Resolve(note.Span)
				fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", file.Path, start.Line, start.Col, note.Msg)
			}
		}
	}
}

func printDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	sev := d.Severity.String()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
	}

	file := fs.Get(d.Primary.File)
	if file == nil {
		// Diagnostics without a source, e.g. unreadable files.
		fmt.Fprintf(w, "%s [%s]: %s\n", sev, d.Code.ID(), d.Message)
		return
	}

	start, end := fs.Resolve(d.Primary)
	fmt.Fprintf(w, "%s:%d:%d: %s [%s]: %s\n",
		file.Path, start.Line, start.Col, sev, d.Code.ID(), d.Message)

	line := file.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	underline := caretLine(start, end, line)
	if opts.Color {
		underline = caretColor.Sprint(underline)
	}
	fmt.Fprintf(w, "  %s\n", underline)
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

// caretLine builds the ^~~~ underline for a span within one line.
func caretLine(start, end source.LineCol, line string) string {
	col := int(start.Col) - 1
	if col > len(line) {
		col = len(line)
	}

	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		width = int(end.Col - start.Col)
	}
	if col+width > len(line)+1 {
		width = len(line) + 1 - col
	}
	if width < 1 {
		width = 1
	}

	return strings.Repeat(" ", col) + "^" + strings.Repeat("~", width-1)
}
