package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the fallback for unclassified errors.
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexMissingLineNumber  Code = 1001
	LexBadLineNumber      Code = 1002
	LexUnknownToken       Code = 1003
	LexUnterminatedString Code = 1004

	// I/O
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown error",
	LexInfo:               "Lexical information",
	LexMissingLineNumber:  "Missing line number",
	LexBadLineNumber:      "Bad line number",
	LexUnknownToken:       "Unrecognized token",
	LexUnterminatedString: "Unterminated string",
	IOLoadFileError:       "I/O load file error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
