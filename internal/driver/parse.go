package driver

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"ccparse/internal/ast"
	"ccparse/internal/diag"
	"ccparse/internal/lexer"
	"ccparse/internal/parser"
	"ccparse/internal/source"
	"ccparse/internal/token"
)

// DefaultMaxDiagnostics bounds the Bag when the caller does not.
const DefaultMaxDiagnostics = 64

// Result carries everything one pipeline run produced. Commit is nil when
// the message violated the grammar; the violation is in Bag. Hard errors
// (I/O, internal invariants) come back as a Go error instead.
type Result struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Commit  *ast.Commit
	Bag     *diag.Bag
}

type Options struct {
	MaxDiagnostics int
	// MaxSubjectLength warns when the header line has more runes; 0 disables.
	MaxSubjectLength int
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

// TokenizeFile lexes the commit message stored at path.
func TokenizeFile(path string, opts Options) (*Result, error) {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenize(fileSet, fileID, opts)
}

// TokenizeBytes lexes an in-memory commit message.
func TokenizeBytes(name string, content []byte, opts Options) (*Result, error) {
	fileSet := source.NewFileSet()
	fileID := fileSet.AddVirtual(name, content)
	return tokenize(fileSet, fileID, opts)
}

func tokenize(fileSet *source.FileSet, id source.FileID, opts Options) (*Result, error) {
	file := fileSet.Get(id)
	bag := diag.NewBag(opts.maxDiagnostics())

	tokens, err := lexer.Lex(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file.Path, err)
	}
	return &Result{FileSet: fileSet, File: file, Tokens: tokens, Bag: bag}, nil
}

// ParseFile runs the full pipeline on the commit message stored at path.
func ParseFile(path string, opts Options) (*Result, error) {
	res, err := TokenizeFile(path, opts)
	if err != nil {
		return nil, err
	}
	parse(res, opts)
	return res, nil
}

// ParseBytes runs the full pipeline on an in-memory commit message.
func ParseBytes(name string, content []byte, opts Options) (*Result, error) {
	res, err := TokenizeBytes(name, content, opts)
	if err != nil {
		return nil, err
	}
	parse(res, opts)
	return res, nil
}

func parse(res *Result, opts Options) {
	commit, err := parser.ParseCommit(res.Tokens, parser.Options{
		Reporter: diag.BagReporter{Bag: res.Bag},
	})
	if err != nil {
		// The grammar violation is already in the bag; Commit stays nil.
		res.Bag.Sort()
		return
	}
	res.Commit = commit
	lintSubject(res, opts)
	res.Bag.Sort()
}

// lintSubject warns when the header line exceeds the configured rune budget.
func lintSubject(res *Result, opts Options) {
	if opts.MaxSubjectLength <= 0 {
		return
	}
	header := res.File.GetLine(1)
	runes := utf8.RuneCountInString(header)
	if runes <= opts.MaxSubjectLength {
		return
	}
	end, err := safecast.Conv[uint32](len(header))
	if err != nil {
		return
	}
	sp := source.Span{File: res.File.ID, Start: 0, End: end}
	diag.ReportWarning(diag.BagReporter{Bag: res.Bag}, diag.LintSubjectTooLong, sp,
		fmt.Sprintf("subject is %d characters, limit is %d", runes, opts.MaxSubjectLength))
}
