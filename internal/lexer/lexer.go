package lexer

import (
	"minibasic/internal/token"
)

// Lexer tokenizes exactly one line of source text. It holds no state between
// lines; tokenizing the same line twice yields equal records.
type Lexer struct {
	src    []rune
	cursor Cursor
	opts   Options
	tokens []token.Token
}

// New creates a lexer for a single line. The line must not contain an
// embedded newline.
func New(line string, opts Options) *Lexer {
	src := []rune(line)
	return &Lexer{
		src:    src,
		cursor: NewCursor(src, opts.Line),
		opts:   opts,
	}
}

// Tokenize is a convenience wrapper: one call, one line, one record.
func Tokenize(line string, opts Options) (token.LineRecord, error) {
	return New(line, opts).Tokenize()
}

// Tokenize runs the line-number phase and then the token phase over the rest
// of the line. On any hard error it returns no partial record: the caller
// gets all tokens of the line or none.
func (lx *Lexer) Tokenize() (token.LineRecord, error) {
	number, err := lx.scanLineNumber()
	if err != nil {
		return token.LineRecord{}, err
	}

	for {
		lx.skipSpaces()
		if lx.cursor.EOL() {
			break
		}

		switch ch := lx.cursor.Peek(); ch {
		case '"':
			lx.scanString()
		case '-':
			lx.scanMinus()
		case '!':
			lx.scanSingle(token.Bang)
		case '(':
			lx.scanSingle(token.LParen)
		case ')':
			lx.scanSingle(token.RParen)
		default:
			stop, err := lx.scanWord()
			if err != nil {
				return token.LineRecord{}, err
			}
			if stop {
				// a comment always runs to the end of the line
				return token.LineRecord{Number: number, Tokens: lx.tokens}, nil
			}
		}
	}

	return token.LineRecord{Number: number, Tokens: lx.tokens}, nil
}

func (lx *Lexer) emit(tok token.Token) {
	lx.tokens = append(lx.tokens, tok)
}

func (lx *Lexer) skipSpaces() {
	for !lx.cursor.EOL() && isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}

// scanSingle emits a one-character token. Unary operators and parens are not
// necessarily separated by whitespace from their operand.
func (lx *Lexer) scanSingle(kind token.Kind) {
	start := lx.cursor.Mark()
	ch := lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	lx.emit(token.Token{Kind: kind, Span: sp, Text: string(ch)})
}

// scanMinus resolves '-' purely from local left context: binary Minus when
// the previous token produces a value, UnaryMinus otherwise.
func (lx *Lexer) scanMinus() {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)

	kind := token.UnaryMinus
	if n := len(lx.tokens); n > 0 && lx.tokens[n-1].IsValue() {
		kind = token.Minus
	}
	lx.emit(token.Token{Kind: kind, Span: sp, Text: "-"})
}
