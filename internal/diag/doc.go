// Package diag defines the diagnostic model shared by the tokenizer and the
// driver layer.
//
// Diagnostic is the central record: Severity (Info/Warning/Error), a compact
// numeric Code with a stable string form, a short human-oriented Message, the
// primary source.Span, and optional Notes adding secondary context.
//
// Producers emit through a diag.Reporter so they stay decoupled from storage
// and formatting. BagReporter aggregates into a Bag, which supports sorting,
// deduplication, and merging. Rendering lives in internal/diagfmt.
//
// Keep the data model deterministic and side-effect free so the CLI and tests
// can serialise diagnostics for caching and golden comparison.
package diag
