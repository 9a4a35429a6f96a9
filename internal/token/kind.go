package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota

	// Comment represents free-form trailing text after a REM keyword.
	Comment
	// Variable represents an identifier token.
	Variable
	// Number represents a signed integer literal.
	Number
	// StringLit represents a quoted string literal (quotes stripped).
	StringLit

	// Eq represents the '=' operator.
	Eq // =
	// Lt represents the '<' operator.
	Lt // <
	// Gt represents the '>' operator.
	Gt // >
	// LtEq represents the '<=' operator.
	LtEq // <=
	// GtEq represents the '>=' operator.
	GtEq // >=
	// NotEq represents the '<>' operator.
	NotEq // <>
	// Star represents the '*' operator.
	Star // *
	// Slash represents the '/' operator.
	Slash // /
	// Minus represents the binary '-' operator.
	Minus // -
	// Plus represents the '+' operator.
	Plus // +

	// LParen represents the left parenthesis.
	LParen // (
	// RParen represents the right parenthesis.
	RParen // )

	// Bang represents the unary '!' operator.
	Bang // !
	// UnaryMinus represents the unary '-' operator.
	UnaryMinus // -

	// KwGoto represents the 'GOTO' keyword.
	KwGoto // GOTO
	// KwIf represents the 'IF' keyword.
	KwIf // IF
	// KwInput represents the 'INPUT' keyword.
	KwInput // INPUT
	// KwLet represents the 'LET' keyword.
	KwLet // LET
	// KwPrint represents the 'PRINT' keyword.
	KwPrint // PRINT
	// KwRem represents the 'REM' keyword.
	KwRem // REM
	// KwThen represents the 'THEN' keyword.
	KwThen // THEN
)

var kindNames = [...]string{
	Invalid:    "Invalid",
	Comment:    "Comment",
	Variable:   "Variable",
	Number:     "Number",
	StringLit:  "StringLit",
	Eq:         "Eq",
	Lt:         "Lt",
	Gt:         "Gt",
	LtEq:       "LtEq",
	GtEq:       "GtEq",
	NotEq:      "NotEq",
	Star:       "Star",
	Slash:      "Slash",
	Minus:      "Minus",
	Plus:       "Plus",
	LParen:     "LParen",
	RParen:     "RParen",
	Bang:       "Bang",
	UnaryMinus: "UnaryMinus",
	KwGoto:     "Goto",
	KwIf:       "If",
	KwInput:    "Input",
	KwLet:      "Let",
	KwPrint:    "Print",
	KwRem:      "Rem",
	KwThen:     "Then",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Invalid"
}
