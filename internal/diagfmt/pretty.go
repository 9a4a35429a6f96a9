package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"minibasic/internal/diag"
	"minibasic/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
)

// Pretty renders diagnostics in a human-readable format, one entry per
// diagnostic:
//
//	<path>:<line>:<col>: <SEV> [<CODE>]: <message>
//	  <source line>
//	  <caret underline over the primary span>
//
// The caller is expected to Sort the bag beforehand. file may be nil, then
// no source context is printed.
func Pretty(w io.Writer, bag *diag.Bag, file *source.File, opts PrettyOpts) {
	for _, d := range bag.Items() {
		path := "<input>"
		if file != nil {
			path = file.Path
		}
		fmt.Fprintf(w, "%s:%d:%d: %s [%s]: %s\n",
			path, d.Primary.Line, d.Primary.Start+1,
			severityText(d.Severity, opts.Color), d.Code.ID(), d.Message)

		if opts.ShowContext && file != nil && d.Primary.Line > 0 {
			writeContext(w, file.GetLine(d.Primary.Line), d.Primary)
		}
		if opts.ShowNotes {
			for _, note := range d.Notes {
				fmt.Fprintf(w, "  note: %s\n", note.Msg)
			}
		}
	}
}

func severityText(sev diag.Severity, colorize bool) string {
	if !colorize {
		return sev.String()
	}
	switch sev {
	case diag.SevError:
		return errorColor.Sprint(sev.String())
	case diag.SevWarning:
		return warningColor.Sprint(sev.String())
	default:
		return infoColor.Sprint(sev.String())
	}
}

func writeContext(w io.Writer, line string, sp source.Span) {
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	// span columns count characters, so the caret math must too
	length := len([]rune(line))
	start := int(sp.Start)
	if start > length {
		start = length
	}
	width := int(sp.End) - start
	if width < 1 {
		width = 1
	}
	if start+width > length+1 {
		width = length + 1 - start
	}
	underline := "^"
	if width > 1 {
		underline += strings.Repeat("~", width-1)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", start), underline)
}
