// Package frontend drives the external Go front end: it hands a single
// in-memory buffer to go/parser and go/types and wraps the outcome into a
// Unit, the owning handle for the syntax tree, the semantic state and the
// diagnostic bag. Nothing in this package lexes, parses or type-checks by
// itself — that work belongs to the toolchain libraries being invoked.
package frontend

import (
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"go/types"

	"astdump/internal/diag"
)

// Unit is the parsed program handle: the syntax tree together with all the
// state produced while building it. A non-nil Unit always owns a non-nil
// tree root, even when unrecoverable diagnostics were recorded — the front
// end recovers best-effort. The Unit is exclusively owned by its caller and
// everything it references is released with it.
type Unit struct {
	Fset      *token.FileSet
	File      *ast.File // top-level declaration container, never nil
	Pkg       *types.Package
	Info      *types.Info
	Bag       *diag.Bag
	Filename  string
	Dialect   Dialect
	Source    string // the caller's buffer, without the synthetic prelude
	Toolchain string
}

// TranslationUnit returns the root of the tree: the node representing the
// whole translation unit.
func (u *Unit) TranslationUnit() *ast.File {
	return u.File
}

// HasUncompilableError reports whether any unrecoverable diagnostic was
// recorded during the build. The tree is still present, but it cannot be
// trusted as fully valid.
func (u *Unit) HasUncompilableError() bool {
	return u != nil && u.Bag.HasErrors()
}

// SourceErr returns the typed unrecoverable-source failure for this unit,
// or nil when the unit compiled cleanly.
func (u *Unit) SourceErr() error {
	if !u.HasUncompilableError() {
		return nil
	}
	return &SourceError{Filename: u.Filename, Errors: u.Bag.ErrorCount()}
}

// BuildFromCode invokes the front end on one source buffer and returns the
// owning Unit. The call is synchronous: scanning, parsing and semantic
// analysis all complete before it returns. Diagnostics land in the Unit's
// bag; a returned error means the front end could not run at all
// (*ToolchainError) and no Unit exists.
//
// args is passed through ParseArgs (order-sensitive, later wins). filename
// is virtual: it attributes positions and selects the dialect by extension.
// toolchain locates the front end's own executable purely for resource
// discovery; empty means "resolve automatically".
func BuildFromCode(src string, args []string, filename, toolchain string, maxDiagnostics int) (*Unit, error) {
	opts, err := ParseArgs(args)
	if err != nil {
		return nil, err
	}
	tc, err := ResolveToolchain(toolchain)
	if err != nil {
		return nil, err
	}
	root, err := ResourceRoot(tc)
	if err != nil {
		return nil, err
	}

	fset := token.NewFileSet()
	bag := diag.NewBag(maxDiagnostics)
	reporter := &diag.BagReporter{Bag: bag}

	dialect := DialectFor(filename)
	parseSrc := src
	if dialect == DialectSnippet {
		parseSrc = snippetPrelude(filename) + src
	}

	mode := parser.AllErrors | parser.SkipObjectResolution
	if opts.Comments {
		mode |= parser.ParseComments
	}

	file, perr := parser.ParseFile(fset, filename, parseSrc, mode)
	if file == nil {
		// Парсер не вернул даже частичное дерево — это сбой инвокации.
		return nil, &ToolchainError{Path: tc, Code: diag.ToolchainBadArgs, Err: perr}
	}
	if perr != nil {
		reportParseErrors(reporter, filename, perr)
	}

	unit := &Unit{
		Fset:      fset,
		File:      file,
		Bag:       bag,
		Filename:  filename,
		Dialect:   dialect,
		Source:    src,
		Toolchain: tc,
	}

	// Семантический анализ только на синтаксически целом дереве: после
	// синтаксических ошибок go/types даёт каскады без новой информации.
	if perr == nil {
		unit.Info = &types.Info{
			Types: make(map[ast.Expr]types.TypeAndValue),
			Defs:  make(map[*ast.Ident]types.Object),
			Uses:  make(map[*ast.Ident]types.Object),
		}
		conf := types.Config{
			GoVersion: opts.Std,
			Importer:  newResourceImporter(fset, root),
			Error:     typeErrorSink(reporter, opts, filename),
		}
		// Ошибка возврата дублирует первую диагностику из sink.
		unit.Pkg, _ = conf.Check(file.Name.Name, fset, []*ast.File{file}, unit.Info)
	}

	return unit, nil
}

// reportParseErrors converts the front end's scanner.ErrorList into bag
// diagnostics. Parser errors are always unrecoverable.
func reportParseErrors(r diag.Reporter, filename string, perr error) {
	if list, ok := perr.(scanner.ErrorList); ok {
		for _, e := range list {
			r.Report(diag.SynError, diag.SevError, e.Pos, e.Msg)
		}
		return
	}
	r.Report(diag.SynError, diag.SevError, token.Position{Filename: filename}, perr.Error())
}

// typeErrorSink adapts go/types error reporting to the bag. Soft errors are
// recoverable and gated by the warning selector; hard errors poison the
// unit.
func typeErrorSink(r diag.Reporter, opts Options, filename string) func(error) {
	return func(err error) {
		terr, ok := err.(types.Error)
		if !ok {
			r.Report(diag.TypeError, diag.SevError, token.Position{Filename: filename}, err.Error())
			return
		}
		pos := terr.Fset.Position(terr.Pos)
		if terr.Soft {
			if opts.Warn >= WarnAll {
				r.Report(diag.TypeSoftError, diag.SevWarning, pos, terr.Msg)
			}
			return
		}
		r.Report(diag.TypeError, diag.SevError, pos, terr.Msg)
	}
}
