package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevInfo is for informational diagnostics.
	SevInfo Severity = iota
	// SevWarning is for recoverable diagnostics: the tree is still usable.
	SevWarning
	// SevError is for unrecoverable diagnostics: a best-effort tree may
	// exist, but it cannot be trusted as fully valid.
	SevError
)

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

// Unrecoverable reports whether a diagnostic of this severity poisons the
// whole unit.
func (s Severity) Unrecoverable() bool {
	return s >= SevError
}
