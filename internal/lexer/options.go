package lexer

import (
	"minibasic/internal/diag"
	"minibasic/internal/source"
)

type Options struct {
	// Reporter receives diagnostics; may be nil, then they are dropped.
	// Hard errors are additionally returned from Tokenize either way.
	Reporter diag.Reporter
	// Line is the 1-based physical line number stamped into spans,
	// 0 when the text did not come from a file.
	Line uint32
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

func (lx *Lexer) warnLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevWarning, sp, msg, nil)
	}
}
