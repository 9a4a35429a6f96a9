package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"minibasic/internal/token"
)

type TokenOutput struct {
	Kind  string `json:"kind"`
	Text  string `json:"text,omitempty"`
	Pos   uint32 `json:"pos"`
	End   uint32 `json:"end,omitempty"`
	Value *int32 `json:"value,omitempty"`
}

type LineOutput struct {
	Number token.LineNumber `json:"line"`
	Tokens []TokenOutput    `json:"tokens"`
}

// FormatLinesPretty renders line records in a human-readable format.
func FormatLinesPretty(w io.Writer, lines []token.LineRecord) error {
	for _, rec := range lines {
		fmt.Fprintf(w, "line %d:\n", rec.Number)
		for i, tok := range rec.Tokens {
			fmt.Fprintf(w, "  %3d: %-10s", i+1, tok.Kind.String())
			if tok.Text != "" {
				fmt.Fprintf(w, " %q", tok.Text)
			}
			fmt.Fprintf(w, " @%d", tok.Pos())
			fmt.Fprintln(w)
		}
	}
	return nil
}

// FormatLinesJSON renders line records as JSON.
func FormatLinesJSON(w io.Writer, lines []token.LineRecord, opts JSONOpts) error {
	output := make([]LineOutput, 0, len(lines))

	for _, rec := range lines {
		if opts.Max > 0 && len(output) >= opts.Max {
			break
		}
		lineOut := LineOutput{
			Number: rec.Number,
			Tokens: make([]TokenOutput, 0, len(rec.Tokens)),
		}
		for _, tok := range rec.Tokens {
			tokenOut := TokenOutput{
				Kind: tok.Kind.String(),
				Text: tok.Text,
				Pos:  tok.Pos(),
			}
			if opts.IncludeSpans {
				tokenOut.End = tok.Span.End
			}
			if tok.Kind == token.Number {
				value := tok.Num
				tokenOut.Value = &value
			}
			lineOut.Tokens = append(lineOut.Tokens, tokenOut)
		}
		output = append(output, lineOut)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
