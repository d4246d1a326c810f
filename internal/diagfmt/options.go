package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
	// Context is the number of source lines shown above the diagnostic
	// line, 0 — без контекста.
	Context   int8
	ShowNotes bool
}

// ASTOpts configures tree rendering.
type ASTOpts struct {
	Color bool
	// ShowTags includes the memory-identity tag of every node. Tags vary
	// run to run; they exist for cross-referencing within one dump.
	ShowTags bool
}
