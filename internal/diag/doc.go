// Package diag defines the diagnostic model shared by the front-end driver
// and the CLI.
//
// The external front end (go/scanner, go/parser, go/types) reports failures
// through its own error values; the driver converts each of them into a
// Diagnostic and collects them in a Bag owned by the parsed unit. Severity
// follows the front end's own recoverability split: scan, parse and hard
// type errors are unrecoverable (SevError), soft type errors are demoted to
// SevWarning and gated by the warning selector.
//
// Package diag performs no formatting or IO. Rendering lives in
// internal/diagfmt; collection and severity mapping live in
// internal/frontend.
package diag
