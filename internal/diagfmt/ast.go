package diagfmt

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"astdump/internal/frontend"
)

// Node is the render-neutral form of one syntax-tree node: kind, identity
// tag, source span and kind-specific attributes, children in source order.
// All three renderers (pretty, tree, json) walk this structure, so the
// traversal order is decided exactly once.
type Node struct {
	Kind     string
	Tag      string // memory identity, varies run to run
	Pos      token.Position
	End      token.Position
	Attrs    []string
	Children []*Node
}

// BuildAST converts the unit's tree into render-neutral form with a
// deterministic pre-order traversal rooted at the top-level declaration
// container.
func BuildAST(u *frontend.Unit) *Node {
	return buildNode(u.Fset, u.File, u.Info)
}

func buildNode(fset *token.FileSet, n ast.Node, info *types.Info) *Node {
	out := &Node{
		Kind:  nodeKind(n),
		Tag:   fmt.Sprintf("%p", n),
		Pos:   fset.Position(n.Pos()),
		End:   fset.Position(n.End()),
		Attrs: nodeAttrs(n, info),
	}
	for _, c := range directChildren(n) {
		out.Children = append(out.Children, buildNode(fset, c, info))
	}
	return out
}

func nodeKind(n ast.Node) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast.")
}

// directChildren collects the immediate children of n in source order.
// ast.Inspect descends only into the first node it reports (n itself);
// every node one level down is recorded and pruned.
func directChildren(n ast.Node) []ast.Node {
	var out []ast.Node
	self := true
	ast.Inspect(n, func(c ast.Node) bool {
		if c == nil {
			return true
		}
		if self {
			self = false
			return true
		}
		out = append(out, c)
		return false
	})
	return out
}

// nodeAttrs lists the kind-specific attributes of a node. When semantic
// state is present, expressions additionally carry the type the front end
// resolved for them, in single quotes.
func nodeAttrs(n ast.Node, info *types.Info) []string {
	var attrs []string
	switch v := n.(type) {
	case *ast.File:
		attrs = append(attrs, "package "+v.Name.Name)
	case *ast.Ident:
		attrs = append(attrs, v.Name)
	case *ast.BasicLit:
		attrs = append(attrs, strings.ToLower(v.Kind.String()), v.Value)
	case *ast.BinaryExpr:
		attrs = append(attrs, "'"+v.Op.String()+"'")
	case *ast.UnaryExpr:
		attrs = append(attrs, "'"+v.Op.String()+"'")
	case *ast.AssignStmt:
		attrs = append(attrs, "'"+v.Tok.String()+"'")
	case *ast.IncDecStmt:
		attrs = append(attrs, "'"+v.Tok.String()+"'")
	case *ast.GenDecl:
		attrs = append(attrs, v.Tok.String())
	case *ast.BranchStmt:
		attrs = append(attrs, v.Tok.String())
	case *ast.FuncDecl:
		attrs = append(attrs, v.Name.Name)
	case *ast.RangeStmt:
		if v.Tok != token.ILLEGAL {
			attrs = append(attrs, "'"+v.Tok.String()+"'")
		}
	}
	if info != nil {
		if expr, ok := n.(ast.Expr); ok {
			if t := info.TypeOf(expr); t != nil {
				attrs = append(attrs, "'"+t.String()+"'")
			}
		}
	}
	return attrs
}

func formatSpan(pos, end token.Position) string {
	if !pos.IsValid() {
		return "<invalid>"
	}
	if !end.IsValid() {
		return fmt.Sprintf("<%s:%d:%d>", pos.Filename, pos.Line, pos.Column)
	}
	return fmt.Sprintf("<%s:%d:%d, %d:%d>", pos.Filename, pos.Line, pos.Column, end.Line, end.Column)
}
