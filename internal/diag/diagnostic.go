package diag

import (
	"go/token"
)

// Note attaches secondary context to a diagnostic.
type Note struct {
	Pos token.Position
	Msg string
}

// Diagnostic is a single finding recorded by the front end during a build.
// Positions are the front end's own: they already account for line
// directives, so snippet-dialect buffers report user coordinates.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Pos      token.Position
	// End is the exclusive end of the offending range. The front end does
	// not always provide one; End.IsValid() == false means "point".
	End   token.Position
	Notes []Note
}

// New constructs a point diagnostic.
func New(sev Severity, code Code, pos token.Position, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Pos:      pos,
	}
}

// WithNote returns a copy with an extra note appended.
func (d Diagnostic) WithNote(pos token.Position, msg string) Diagnostic {
	d.Notes = append(d.Notes[:len(d.Notes):len(d.Notes)], Note{Pos: pos, Msg: msg})
	return d
}
