// Package token defines the closed set of lexical tokens for the BASIC
// dialect, plus the per-line record the tokenizer produces.
// Invariants:
//   - Kind is a closed enum: consumers switch exhaustively, nothing extends it.
//   - Token.Span.Start is the zero-based character column at which recognition
//     of the token began. For Comment it is derived from the REM keyword's
//     column, not from the scan cursor.
//   - IsOperator and IsValue are mutually exclusive over every Kind.
//   - Keywords and operator spellings are case-sensitive and exact-match;
//     abbreviations are never recognized.
package token
