package frontend

import (
	"fmt"
	"regexp"
	"strings"

	"astdump/internal/diag"
)

// WarnLevel selects which recoverable diagnostics the front end records.
type WarnLevel uint8

const (
	// WarnNone drops recoverable diagnostics entirely.
	WarnNone WarnLevel = iota
	// WarnAll records every recoverable diagnostic the front end produces.
	WarnAll
)

func (w WarnLevel) String() string {
	if w == WarnAll {
		return "all"
	}
	return "none"
}

// Options is the decoded form of an invocation argument list.
type Options struct {
	Std      string // language standard, e.g. "go1.25"
	Warn     WarnLevel
	Comments bool // attach comments to the tree
}

// DefaultArgs mirrors the fixed argument list of the minimal driver:
// a language standard selector and a warning selector.
func DefaultArgs() []string {
	return []string{"-std=go1.25", "-Wall"}
}

var stdRe = regexp.MustCompile(`^go[1-9][0-9]*(\.(0|[1-9][0-9]*))*$`)

// ParseArgs decodes an invocation argument list. Arguments are applied in
// order and later ones override earlier ones, mirroring compiler
// command-line semantics. An unknown argument is an invocation error, not a
// source error: the front end refuses the whole run.
func ParseArgs(args []string) (Options, error) {
	opts := Options{Std: "go1.25", Warn: WarnAll}
	for _, a := range args {
		switch {
		case strings.HasPrefix(a, "-std="):
			std := strings.TrimPrefix(a, "-std=")
			if !stdRe.MatchString(std) {
				return Options{}, &ToolchainError{
					Code: diag.ToolchainBadArgs,
					Err:  fmt.Errorf("invalid language standard %q", std),
				}
			}
			opts.Std = std
		case a == "-Wall":
			opts.Warn = WarnAll
		case a == "-Wnone" || a == "-w":
			opts.Warn = WarnNone
		case a == "-fcomments":
			opts.Comments = true
		case a == "-fno-comments":
			opts.Comments = false
		default:
			return Options{}, &ToolchainError{
				Code: diag.ToolchainBadArgs,
				Err:  fmt.Errorf("unknown invocation argument %q", a),
			}
		}
	}
	return opts, nil
}
