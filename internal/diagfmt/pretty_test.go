package diagfmt_test

import (
	"bytes"
	"strings"
	"testing"

	"minibasic/internal/diag"
	"minibasic/internal/diagfmt"
	"minibasic/internal/source"
)

func testFile(t *testing.T, content string) *source.File {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("prog.bas", []byte(content))
	return fs.Get(id)
}

func TestPrettyHeaderLine(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnknownToken,
		source.Span{Line: 2, Start: 9, End: 11},
		"unrecognized token \"`A\" at offset 9"))

	file := testFile(t, "10 LET A = 1\n20 PRINT `A\n")
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, file, diagfmt.PrettyOpts{})

	want := "prog.bas:2:10: ERROR [LEX1003]: unrecognized token \"`A\" at offset 9\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrettyShowContext(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.NewWarning(diag.LexUnterminatedString,
		source.Span{Line: 1, Start: 9, End: 15},
		"string literal is not terminated"))

	file := testFile(t, "10 PRINT \"HELLO\n")
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, file, diagfmt.PrettyOpts{ShowContext: true})

	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected header, source line and underline, got %q", buf.String())
	}
	if lines[1] != "  10 PRINT \"HELLO" {
		t.Errorf("source line = %q", lines[1])
	}
	if lines[2] != "           ^~~~~~" {
		t.Errorf("underline = %q", lines[2])
	}
}

func TestPrettyShowNotes(t *testing.T) {
	bag := diag.NewBag(10)
	d := diag.NewError(diag.LexBadLineNumber,
		source.Span{Line: 1, Start: 0, End: 3},
		"line must start with a number followed by whitespace: \"10B\"")
	d = d.WithNote(source.Span{Line: 1, Start: 0, End: 3}, "line numbers are unsigned 32-bit integers")
	bag.Add(d)

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, nil, diagfmt.PrettyOpts{ShowNotes: true})

	out := buf.String()
	if !strings.Contains(out, "<input>:1:1: ERROR [LEX1002]:") {
		t.Errorf("missing header for nil file: %q", out)
	}
	if !strings.Contains(out, "  note: line numbers are unsigned 32-bit integers\n") {
		t.Errorf("missing note line: %q", out)
	}
}

func TestPrettyNoContextForUnknownLine(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "cannot read file"))

	file := testFile(t, "10 PRINT A\n")
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, file, diagfmt.PrettyOpts{ShowContext: true})

	if got := strings.Count(buf.String(), "\n"); got != 1 {
		t.Errorf("line-less diagnostics must not print context, got %q", buf.String())
	}
}
