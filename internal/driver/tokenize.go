package driver

import (
	"astdump/internal/diag"
	"astdump/internal/frontend"
)

// TokenizeResult bundles the token stream with the diagnostics the scanner
// recorded while producing it.
type TokenizeResult struct {
	Tokens []frontend.Token
	Bag    *diag.Bag
}

// Tokenize runs the external scanner over the buffer.
func Tokenize(src string, opts Options) *TokenizeResult {
	opts = opts.withDefaults()
	tokens, bag := frontend.ScanFromCode(src, opts.Filename, opts.MaxDiagnostics)
	return &TokenizeResult{Tokens: tokens, Bag: bag}
}
