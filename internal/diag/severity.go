package diag

// Severity ranks a diagnostic. The tokenizer emits warnings for lines it
// can still turn into records (an unterminated string, say) and errors for
// lines it rejects outright.
type Severity uint8

const (
	// SevInfo carries commentary that never affects the outcome.
	SevInfo Severity = iota
	// SevWarning marks a line that tokenized despite a defect.
	SevWarning
	// SevError marks a line that produced no record.
	SevError
)

// String returns the uppercase form used in pretty diagnostic headers.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Label returns the lowercase form used in short output and golden files.
func (s Severity) Label() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "unknown"
}
