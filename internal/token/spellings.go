package token

var spellings = map[string]Kind{
	"=":  Eq,
	"<":  Lt,
	">":  Gt,
	"<=": LtEq,
	">=": GtEq,
	"<>": NotEq,
	"*":  Star,
	"/":  Slash,
	// A bare "-" word also spells Minus; the scanner resolves unary minus
	// from left context before this table is ever consulted.
	"-":     Minus,
	"+":     Plus,
	"(":     LParen,
	")":     RParen,
	"!":     Bang,
	"GOTO":  KwGoto,
	"IF":    KwIf,
	"INPUT": KwInput,
	"LET":   KwLet,
	"PRINT": KwPrint,
	"REM":   KwRem,
	"THEN":  KwThen,
}

// LookupSpelling returns the fixed kind for an exact keyword or operator
// spelling. Spellings are case-sensitive: only uppercase keywords match.
func LookupSpelling(text string) (Kind, bool) {
	k, ok := spellings[text]
	return k, ok
}
