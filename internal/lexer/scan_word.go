package lexer

import (
	"errors"
	"fmt"
	"strconv"

	"minibasic/internal/diag"
	"minibasic/internal/source"
	"minibasic/internal/token"
)

// scanWord consumes a maximal run of non-whitespace characters and
// classifies it in fixed priority order: integer literal, fixed
// keyword/operator spelling, identifier. A ')' ends the run without being
// consumed, so "(A)" splits correctly. The returned stop flag is true when
// the word opened a comment that consumed the rest of the line.
func (lx *Lexer) scanWord() (stop bool, err error) {
	start := lx.cursor.Mark()
	for !lx.cursor.EOL() {
		r := lx.cursor.Peek()
		if isSpace(r) || r == ')' {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.src[sp.Start:sp.End])

	if value, perr := strconv.ParseInt(text, 10, 32); perr == nil {
		lx.emit(token.Token{Kind: token.Number, Span: sp, Text: text, Num: int32(value)})
		return false, nil
	}

	if kind, ok := token.LookupSpelling(text); ok {
		lx.emit(token.Token{Kind: kind, Span: sp, Text: text})
		if kind == token.KwRem {
			lx.scanComment(sp)
			return true, nil
		}
		return false, nil
	}

	if validIdentifier(text) {
		lx.emit(token.Token{Kind: token.Variable, Span: sp, Text: text})
		return false, nil
	}

	msg := fmt.Sprintf("unrecognized token %q at offset %d", text, sp.Start)
	lx.errLex(diag.LexUnknownToken, sp, msg)
	return false, errors.New(msg)
}

// scanComment captures everything after a REM keyword as one Comment token.
// Exactly one character after REM is skipped (conventionally the separating
// space). The comment's column is the REM column plus four, derived
// arithmetically rather than from the scan cursor.
func (lx *Lexer) scanComment(rem source.Span) {
	lx.cursor.Bump() // the separating space, when present
	text := string(lx.src[lx.cursor.Off:])

	sp := source.Span{
		Line:  rem.Line,
		Start: rem.Start + 4,
		End:   lx.cursor.limit(),
	}
	if sp.End < sp.Start {
		// REM at the very end of the line: empty comment
		sp.End = sp.Start
	}
	lx.emit(token.Token{Kind: token.Comment, Span: sp, Text: text})
	lx.cursor.Off = lx.cursor.limit()
}
