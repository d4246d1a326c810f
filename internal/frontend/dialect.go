package frontend

import "strings"

// Dialect selects how the buffer is presented to the front end. The choice
// is driven purely by the virtual filename's extension, never by the buffer
// content.
type Dialect uint8

const (
	// DialectFile parses the buffer as a complete translation unit: the
	// package clause is required.
	DialectFile Dialect = iota
	// DialectSnippet parses the buffer as a bare sequence of top-level
	// declarations. The driver prepends a synthetic package clause before
	// handing the buffer to the front end.
	DialectSnippet
)

func (d Dialect) String() string {
	switch d {
	case DialectFile:
		return "file"
	case DialectSnippet:
		return "snippet"
	}
	return "unknown"
}

// DialectFor returns the dialect selected by the virtual filename.
func DialectFor(filename string) Dialect {
	if strings.HasSuffix(filename, ".go") {
		return DialectFile
	}
	return DialectSnippet
}

// snippetPrelude builds the synthetic package clause for snippet buffers.
// The line directive pins the buffer's first line back to 1:1, so every
// position the front end reports stays in user coordinates. The column must
// be spelled out: a column-less directive maps columns to 0.
func snippetPrelude(filename string) string {
	return "package main\n//line " + filename + ":1:1\n"
}
