package lexer

import (
	"errors"
	"fmt"
	"strconv"

	"minibasic/internal/diag"
	"minibasic/internal/token"
)

// scanLineNumber consumes the mandatory numeric label at the start of the
// line: the first character must be a digit, the label runs until the first
// whitespace character, and the whole span must parse as a non-negative
// 32-bit integer. There is no recovery; a line without a number is rejected
// entirely.
func (lx *Lexer) scanLineNumber() (token.LineNumber, error) {
	start := lx.cursor.Mark()

	if lx.cursor.EOL() || !isDec(lx.cursor.Peek()) {
		sp := lx.cursor.SpanFrom(start)
		msg := fmt.Sprintf("line must start with a line number: %q", string(lx.src))
		lx.errLex(diag.LexMissingLineNumber, sp, msg)
		return 0, errors.New(msg)
	}

	for !lx.cursor.EOL() && !isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.src[sp.Start:sp.End])

	number, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		msg := fmt.Sprintf("line must start with a number followed by whitespace: %q", string(lx.src))
		lx.errLex(diag.LexBadLineNumber, sp, msg)
		return 0, errors.New(msg)
	}
	return token.LineNumber(number), nil
}
