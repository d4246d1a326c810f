package frontend

import (
	"fmt"

	"astdump/internal/diag"
)

// ToolchainError reports that the front end could not run at all: the
// toolchain executable did not resolve, its resource root is missing, or
// the invocation arguments were rejected. No unit is produced — the failure
// is in the invocation, not in the source buffer.
type ToolchainError struct {
	Path string // toolchain executable path, if one was resolved
	Code diag.Code
	Err  error
}

func (e *ToolchainError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("front end unusable (toolchain %s): %v", e.Path, e.Err)
	}
	return fmt.Sprintf("front end unusable: %v", e.Err)
}

func (e *ToolchainError) Unwrap() error { return e.Err }

// SourceError reports that the front end ran and produced a unit, but
// recorded at least one unrecoverable diagnostic. The unit still carries a
// best-effort tree; whether to use it is caller policy.
type SourceError struct {
	Filename string
	Errors   int
}

func (e *SourceError) Error() string {
	if e.Errors == 1 {
		return fmt.Sprintf("%s: 1 unrecoverable error", e.Filename)
	}
	return fmt.Sprintf("%s: %d unrecoverable errors", e.Filename, e.Errors)
}
