package lexer

import (
	"testing"

	"minibasic/internal/source"
)

func TestCursorBasics(t *testing.T) {
	c := NewCursor([]rune("AB"), 1)

	if c.EOL() {
		t.Fatal("fresh cursor must not be at end of line")
	}
	if got := c.Peek(); got != 'A' {
		t.Fatalf("Peek = %q, want 'A'", got)
	}
	if got := c.Bump(); got != 'A' {
		t.Fatalf("Bump = %q, want 'A'", got)
	}
	if got := c.Bump(); got != 'B' {
		t.Fatalf("Bump = %q, want 'B'", got)
	}
	if !c.EOL() {
		t.Fatal("cursor must be at end of line after consuming everything")
	}
	if got := c.Peek(); got != 0 {
		t.Fatalf("Peek at EOL = %q, want 0", got)
	}
	if got := c.Bump(); got != 0 {
		t.Fatalf("Bump at EOL = %q, want 0", got)
	}
}

func TestCursorMarkAndSpan(t *testing.T) {
	c := NewCursor([]rune("10 GOTO"), 3)

	c.Bump()
	c.Bump()
	m := c.Mark()
	c.Bump() // ' '
	c.Bump() // 'G'

	sp := c.SpanFrom(m)
	want := source.Span{Line: 3, Start: 2, End: 4}
	if sp != want {
		t.Fatalf("SpanFrom = %v, want %v", sp, want)
	}
}

func TestCursorCountsCharacters(t *testing.T) {
	// 'é' is two bytes in UTF-8 but occupies exactly one column
	c := NewCursor([]rune(`"é"X`), 1)

	if got := c.Bump(); got != '"' {
		t.Fatalf("Bump = %q, want '\"'", got)
	}
	if got := c.Bump(); got != 'é' {
		t.Fatalf("Bump = %q, want 'é'", got)
	}
	if c.Off != 2 {
		t.Fatalf("Off after one multi-byte character = %d, want 2", c.Off)
	}
	c.Bump()
	if got := c.Peek(); got != 'X' {
		t.Fatalf("Peek = %q, want 'X'", got)
	}
	if c.Off != 3 {
		t.Fatalf("Off = %d, want 3", c.Off)
	}
}

func TestCursorEmptyLine(t *testing.T) {
	c := NewCursor(nil, 1)
	if !c.EOL() {
		t.Fatal("cursor over empty line must start at EOL")
	}
	sp := c.SpanFrom(c.Mark())
	if !sp.Empty() {
		t.Fatalf("span over empty line must be empty, got %v", sp)
	}
}
