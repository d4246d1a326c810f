package diag

import "go/token"

// Reporter — минимальный контракт получения диагностик от фаз инвокации.
// Реализации: BagReporter (кладёт в Bag), NopReporter.
type Reporter interface {
	Report(code Code, sev Severity, pos token.Position, msg string)
}

// BagReporter aggregates diagnostics into a Bag.
type BagReporter struct {
	Bag *Bag
}

func (r *BagReporter) Report(code Code, sev Severity, pos token.Position, msg string) {
	if r == nil || r.Bag == nil {
		return
	}
	r.Bag.Add(New(sev, code, pos, msg))
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, token.Position, string) {}
