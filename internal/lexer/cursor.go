package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"minibasic/internal/source"
)

// Cursor is a character position within one source line. Offsets count
// runes, not bytes, so a multi-byte character in a string or comment shifts
// the following tokens by one column, the same as any other character.
type Cursor struct {
	src  []rune
	line uint32 // 1-based physical line for spans, 0 = unknown
	Off  uint32
}

// NewCursor creates a cursor over the provided line.
func NewCursor(src []rune, line uint32) Cursor {
	// validate up front so Off arithmetic stays in uint32
	if _, err := safecast.Conv[uint32](len(src)); err != nil {
		panic(fmt.Errorf("line length overflow: %w", err))
	}
	return Cursor{src: src, line: line, Off: 0}
}

func (c *Cursor) limit() uint32 {
	return uint32(len(c.src))
}

// EOL reports whether the end of the line is reached.
func (c *Cursor) EOL() bool {
	return c.Off >= c.limit()
}

// Peek reads the current character, or 0 at end of line.
func (c *Cursor) Peek() rune {
	if c.EOL() {
		return 0
	}
	return c.src[c.Off]
}

// Bump advances the cursor one character and returns the character read.
func (c *Cursor) Bump() rune {
	if c.EOL() {
		return 0
	}
	r := c.src[c.Off]
	c.Off++
	return r
}

// Mark is a saved position used to build the Span of a scanned fragment.
type Mark uint32

// Mark saves the current cursor position.
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom builds the Span of the fragment scanned since the mark.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		Line:  c.line,
		Start: uint32(m),
		End:   c.Off,
	}
}
