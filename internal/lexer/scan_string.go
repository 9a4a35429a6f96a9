package lexer

import (
	"minibasic/internal/diag"
	"minibasic/internal/token"
)

// scanString consumes a quoted literal. No escape handling: every character
// up to the next '"' belongs to the string. A literal with no closing quote
// runs to the end of the line and is still emitted, with a warning.
func (lx *Lexer) scanString() {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	for !lx.cursor.EOL() && lx.cursor.Peek() != '"' {
		lx.cursor.Bump()
	}

	terminated := !lx.cursor.EOL()
	textEnd := lx.cursor.Off
	if terminated {
		lx.cursor.Bump() // closing '"'
	}

	sp := lx.cursor.SpanFrom(start)
	if !terminated {
		lx.warnLex(diag.LexUnterminatedString, sp, "string literal is not terminated before end of line")
	}
	lx.emit(token.Token{
		Kind: token.StringLit,
		Span: sp,
		Text: string(lx.src[uint32(start)+1 : textEnd]),
	})
}
