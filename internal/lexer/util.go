package lexer

import "unicode"

// ===== Character classifiers =====

// Identifiers, keywords, and numbers are ASCII by the grammar; string
// contents and comments may carry arbitrary characters, and any Unicode
// whitespace separates tokens.

func isDec(r rune) bool { return r >= '0' && r <= '9' }

func isLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func isIdentContinue(r rune) bool {
	return isLetter(r) || isDec(r) || r == '_'
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// validIdentifier reports whether text starts with an ASCII letter followed
// by any number of ASCII letters, digits, or underscores. Empty text is
// invalid. This is the last-resort classifier: whatever fails it is a
// malformed token.
func validIdentifier(text string) bool {
	if text == "" {
		return false
	}
	for i, r := range text {
		if i == 0 {
			if !isLetter(r) {
				return false
			}
			continue
		}
		if !isIdentContinue(r) {
			return false
		}
	}
	return true
}
