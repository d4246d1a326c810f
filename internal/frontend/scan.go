package frontend

import (
	"go/scanner"
	"go/token"

	"astdump/internal/diag"
)

// Token is one token of the buffer as the external scanner produced it.
type Token struct {
	Kind token.Token
	Text string // literal text; empty for operators (keywords keep their text)
	Pos  token.Position
	End  token.Position
}

// ScanFromCode runs the external scanner over the buffer and returns the
// token stream up to and including EOF. The buffer is scanned raw — no
// synthetic prelude, whatever the dialect — so the stream always describes
// exactly what the caller supplied. Scan failures are unrecoverable and
// land in the returned bag.
func ScanFromCode(src, filename string, maxDiagnostics int) ([]Token, *diag.Bag) {
	bag := diag.NewBag(maxDiagnostics)
	reporter := &diag.BagReporter{Bag: bag}

	fset := token.NewFileSet()
	file := fset.AddFile(filename, -1, len(src))

	var s scanner.Scanner
	s.Init(file, []byte(src), func(pos token.Position, msg string) {
		reporter.Report(diag.ScanError, diag.SevError, pos, msg)
	}, scanner.ScanComments)

	var out []Token
	for {
		pos, tok, lit := s.Scan()
		text := lit
		width := len(lit)
		// Ширину без литерала имеют только операторы: ключевые слова
		// приходят со своим текстом.
		if width == 0 && tok.IsOperator() && tok != token.EOF {
			width = len(tok.String())
		}
		out = append(out, Token{
			Kind: tok,
			Text: text,
			Pos:  fset.Position(pos),
			End:  fset.Position(pos + token.Pos(width)),
		})
		if tok == token.EOF {
			return out, bag
		}
	}
}
