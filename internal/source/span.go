package source

import (
	"fmt"
)

// Span points at a range of characters within one physical source line.
// The language is line-oriented, so spans carry the 1-based line number
// (0 when the text did not come from a file) plus zero-based character
// columns. Columns count runes, not bytes.
type Span struct {
	Line  uint32 // 1-based physical line, 0 = unknown
	Start uint32 // inclusive, zero-based character column
	End   uint32 // exclusive
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.Line, s.Start, s.End)
}

// Cover extends the span to include other. Spans on different lines are
// not comparable; the receiver is returned unchanged.
func (s Span) Cover(other Span) Span {
	if s.Line != other.Line {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}
