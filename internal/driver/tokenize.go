package driver

import (
	"fmt"
	"strings"

	"minibasic/internal/diag"
	"minibasic/internal/lexer"
	"minibasic/internal/source"
	"minibasic/internal/token"
)

// TokenizeResult bundles everything produced for one source file.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Lines   []token.LineRecord
	Bag     *diag.Bag
}

// TokenizeFile loads a file and tokenizes every physical line independently.
// Blank lines are skipped. A malformed line contributes its diagnostic and
// no record; the remaining lines are still tokenized, so one bad line does
// not hide problems on the others.
func TokenizeFile(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return loadFailure(fs, path, maxDiagnostics, err), err
	}
	return tokenizeLoaded(fs, fileID, maxDiagnostics), nil
}

// loadFailure wraps an unreadable file into a result whose Bag carries the
// I/O diagnostic, so callers print it the same way as lexical ones.
func loadFailure(fs *source.FileSet, path string, maxDiagnostics int, err error) *TokenizeResult {
	bag := diag.NewBag(maxDiagnostics)
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
		fmt.Sprintf("cannot load %q: %v", path, err)))
	return &TokenizeResult{FileSet: fs, Bag: bag}
}

// TokenizeSource tokenizes in-memory text (tests, --line, stdin) under a
// virtual file name.
func TokenizeSource(name string, src []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return tokenizeLoaded(fs, fileID, maxDiagnostics)
}

func tokenizeLoaded(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *TokenizeResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Lines:   tokenizeInto(file, diag.BagReporter{Bag: bag}),
		Bag:     bag,
	}
}

// tokenizeInto maps the per-line tokenizer over a file's physical lines.
// Every line is an independent pure call; no state crosses lines.
func tokenizeInto(file *source.File, reporter diag.Reporter) []token.LineRecord {
	var lines []token.LineRecord
	for n := uint32(1); n <= file.LineCount(); n++ {
		text := file.GetLine(n)
		if strings.TrimSpace(text) == "" {
			continue
		}
		rec, err := lexer.Tokenize(text, lexer.Options{Reporter: reporter, Line: n})
		if err != nil {
			// already reported through the reporter
			continue
		}
		lines = append(lines, rec)
	}
	return lines
}
