package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color       bool
	ShowContext bool // print the offending source line with a caret
	ShowNotes   bool
}

// JSONOpts configures JSON output of tokens.
type JSONOpts struct {
	IncludeSpans bool // add start/end columns per token
	Max          int  // truncate output after this many lines, 0 = unlimited
}
