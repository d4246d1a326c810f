package driver

import (
	"go/token"
	"testing"

	"astdump/internal/frontend"
)

func TestParse_AppliesDefaults(t *testing.T) {
	unit, err := Parse("package main\n\nfunc main() {}\n", Options{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if unit.Filename != "input.go" {
		t.Errorf("default filename = %q, want input.go", unit.Filename)
	}
	if unit.Dialect != frontend.DialectFile {
		t.Errorf("default dialect = %v, want file", unit.Dialect)
	}
	if unit.HasUncompilableError() {
		t.Errorf("unexpected diagnostics: %+v", unit.Bag.Items())
	}
}

func TestTokenize_Defaults(t *testing.T) {
	result := Tokenize("x := 1\n", Options{Filename: "input.gos"})
	if result.Bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %+v", result.Bag.Items())
	}
	if len(result.Tokens) == 0 || result.Tokens[len(result.Tokens)-1].Kind != token.EOF {
		t.Errorf("token stream must end with EOF: %+v", result.Tokens)
	}
}
