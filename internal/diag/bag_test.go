package diag_test

import (
	"strings"
	"testing"

	"minibasic/internal/diag"
	"minibasic/internal/source"
)

func sp(line, start, end uint32) source.Span {
	return source.Span{Line: line, Start: start, End: end}
}

func TestBagLimit(t *testing.T) {
	bag := diag.NewBag(2)

	if !bag.Add(diag.NewError(diag.LexUnknownToken, sp(1, 0, 1), "one")) {
		t.Fatal("first Add must succeed")
	}
	if !bag.Add(diag.NewError(diag.LexUnknownToken, sp(2, 0, 1), "two")) {
		t.Fatal("second Add must succeed")
	}
	if bag.Add(diag.NewError(diag.LexUnknownToken, sp(3, 0, 1), "three")) {
		t.Fatal("Add past the limit must be dropped")
	}
	if bag.Len() != 2 || bag.Cap() != 2 {
		t.Fatalf("Len=%d Cap=%d", bag.Len(), bag.Cap())
	}
}

func TestBagSeverityQueries(t *testing.T) {
	bag := diag.NewBag(10)
	if bag.HasErrors() || bag.HasWarnings() {
		t.Fatal("empty bag must report nothing")
	}

	bag.Add(diag.New(diag.SevInfo, diag.LexInfo, sp(1, 0, 1), "fyi"))
	if bag.HasWarnings() {
		t.Fatal("info-only bag must not report warnings")
	}

	bag.Add(diag.NewWarning(diag.LexUnterminatedString, sp(1, 3, 9), "unterminated"))
	if !bag.HasWarnings() || bag.HasErrors() {
		t.Fatal("warning must count as warning, not error")
	}

	bag.Add(diag.NewError(diag.LexUnknownToken, sp(2, 0, 2), "bad"))
	if !bag.HasErrors() {
		t.Fatal("error must be visible")
	}
}

func TestBagSort(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnknownToken, sp(3, 5, 6), "later line"))
	bag.Add(diag.NewError(diag.LexUnknownToken, sp(1, 9, 10), "first line, later col"))
	bag.Add(diag.NewError(diag.LexUnknownToken, sp(1, 2, 3), "first line, first col"))

	bag.Sort()
	items := bag.Items()
	if items[0].Message != "first line, first col" ||
		items[1].Message != "first line, later col" ||
		items[2].Message != "later line" {
		t.Fatalf("unexpected order: %v", items)
	}
}

func TestBagDedup(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnknownToken, sp(1, 2, 3), "dup"))
	bag.Add(diag.NewError(diag.LexUnknownToken, sp(1, 2, 3), "dup"))
	bag.Add(diag.NewError(diag.LexUnknownToken, sp(1, 4, 5), "other span"))

	bag.Dedup()
	if bag.Len() != 2 {
		t.Fatalf("Dedup left %d items, want 2", bag.Len())
	}
}

func TestBagMerge(t *testing.T) {
	a := diag.NewBag(1)
	a.Add(diag.NewError(diag.LexUnknownToken, sp(1, 0, 1), "a"))

	b := diag.NewBag(2)
	b.Add(diag.NewError(diag.LexUnknownToken, sp(2, 0, 1), "b"))
	b.Add(diag.NewWarning(diag.LexUnterminatedString, sp(3, 0, 1), "c"))

	a.Merge(b)
	if a.Len() != 3 {
		t.Fatalf("merged Len = %d, want 3", a.Len())
	}
}

func TestBagReporter(t *testing.T) {
	bag := diag.NewBag(5)
	var r diag.Reporter = diag.BagReporter{Bag: bag}

	r.Report(diag.LexUnknownToken, diag.SevError, sp(1, 2, 3), "msg", nil)
	if bag.Len() != 1 {
		t.Fatalf("Len = %d", bag.Len())
	}

	// nil bag is a silent sink
	diag.BagReporter{}.Report(diag.LexInfo, diag.SevInfo, sp(1, 0, 0), "dropped", nil)
	diag.NopReporter{}.Report(diag.LexInfo, diag.SevInfo, sp(1, 0, 0), "dropped", nil)
}

func TestCodeFormatting(t *testing.T) {
	if got := diag.LexUnknownToken.ID(); got != "LEX1003" {
		t.Errorf("ID = %q", got)
	}
	if got := diag.IOLoadFileError.ID(); got != "IO4001" {
		t.Errorf("ID = %q", got)
	}
	if got := diag.Code(9999).ID(); got != "E0000" {
		t.Errorf("out-of-range ID = %q", got)
	}
	if got := diag.LexUnterminatedString.Title(); got != "Unterminated string" {
		t.Errorf("Title = %q", got)
	}
	if got := diag.Code(9999).Title(); got != "Unknown error" {
		t.Errorf("fallback Title = %q", got)
	}
	if !strings.Contains(diag.LexBadLineNumber.String(), "LEX1002") {
		t.Errorf("String = %q", diag.LexBadLineNumber.String())
	}
}

func TestDiagnosticWithNote(t *testing.T) {
	d := diag.NewError(diag.LexUnknownToken, sp(1, 2, 3), "bad").
		WithNote(sp(1, 0, 1), "line starts here")
	if len(d.Notes) != 1 || d.Notes[0].Msg != "line starts here" {
		t.Fatalf("Notes = %v", d.Notes)
	}
}

func TestSeverityForms(t *testing.T) {
	cases := []struct {
		sev   diag.Severity
		upper string
		lower string
	}{
		{diag.SevInfo, "INFO", "info"},
		{diag.SevWarning, "WARNING", "warning"},
		{diag.SevError, "ERROR", "error"},
		{diag.Severity(99), "UNKNOWN", "unknown"},
	}
	for _, c := range cases {
		if got := c.sev.String(); got != c.upper {
			t.Errorf("String() = %q, want %q", got, c.upper)
		}
		if got := c.sev.Label(); got != c.lower {
			t.Errorf("Label() = %q, want %q", got, c.lower)
		}
	}
}
