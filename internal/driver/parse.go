// Package driver glues the CLI to the front-end invocation: it fills in the
// fixed defaults of the minimal driver, runs the build or the scanner, and
// caches rendered dumps on disk.
package driver

import (
	"astdump/internal/frontend"
)

// Options carries everything one invocation needs besides the buffer.
type Options struct {
	Args           []string // invocation arguments, verbatim and ordered
	Filename       string   // virtual filename; its extension selects the dialect
	Toolchain      string   // explicit toolchain executable, empty = resolve
	MaxDiagnostics int
}

func (o Options) withDefaults() Options {
	if o.Args == nil {
		o.Args = frontend.DefaultArgs()
	}
	if o.Filename == "" {
		o.Filename = "input.go"
	}
	if o.MaxDiagnostics <= 0 {
		o.MaxDiagnostics = 100
	}
	return o
}

// Parse runs the front end over one buffer and returns the owning unit.
// A nil unit is only ever paired with a *frontend.ToolchainError.
func Parse(src string, opts Options) (*frontend.Unit, error) {
	opts = opts.withDefaults()
	return frontend.BuildFromCode(src, opts.Args, opts.Filename, opts.Toolchain, opts.MaxDiagnostics)
}
