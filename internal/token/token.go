package token

import (
	"errors"

	"minibasic/internal/source"
)

// ErrNotAnOperator is returned by Precedence for non-operator kinds.
var ErrNotAnOperator = errors.New("not an operator")

// LineNumber is the numeric label of a source line. Lines are conceptually
// ordered by this value; comparison is plain integer comparison.
type LineNumber uint32

// Token represents a single positioned token within one source line.
// Text carries the token's payload: comment text, variable name, string
// contents with the quotes stripped, or the raw spelling otherwise.
type Token struct {
	Kind Kind        `msgpack:"kind"`
	Span source.Span `msgpack:"span"`
	Text string      `msgpack:"text,omitempty"`
	Num  int32       `msgpack:"num,omitempty"` // parsed value, Number only
}

// LineRecord is the tokenizer's sole result: a line number plus the line's
// tokens in left-to-right source order.
type LineRecord struct {
	Number LineNumber `msgpack:"number"`
	Tokens []Token    `msgpack:"tokens"`
}

// Pos returns the zero-based character column at which recognition of the
// token began.
func (t Token) Pos() uint32 { return t.Span.Start }

// IsOperator reports whether the token is one of the ten binary operators.
func (t Token) IsOperator() bool {
	switch t.Kind {
	case Eq, Lt, Gt, LtEq, GtEq, NotEq, Star, Slash, Minus, Plus:
		return true
	default:
		return false
	}
}

// IsValue reports whether the token produces a value: a variable, a number,
// or a string literal. The scanner relies on this to tell binary minus from
// unary minus.
func (t Token) IsValue() bool {
	switch t.Kind {
	case Variable, Number, StringLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwGoto, KwIf, KwInput, KwLet, KwPrint, KwRem, KwThen:
		return true
	default:
		return false
	}
}

// Precedence returns the binding strength of a binary operator: higher binds
// tighter. Multiplicative operators outrank additive ones, comparisons are
// the lowest tier. Non-operator kinds return ErrNotAnOperator.
func (t Token) Precedence() (uint8, error) {
	switch t.Kind {
	case Star, Slash:
		return 10, nil
	case Minus, Plus:
		return 8, nil
	case Eq, Lt, Gt, LtEq, GtEq, NotEq:
		return 4, nil
	default:
		return 0, ErrNotAnOperator
	}
}
