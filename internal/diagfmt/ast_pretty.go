package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"astdump/internal/frontend"
)

// FormatASTPretty dumps the tree in the classic compiler style: one node
// per line, `|-`/`` `- `` connectors, kind + identity tag + span +
// attributes. This is the canonical dump the driver prints on stdout.
func FormatASTPretty(w io.Writer, u *frontend.Unit, opts ASTOpts) error {
	return writePretty(w, BuildAST(u), "", "", opts)
}

func writePretty(w io.Writer, n *Node, connector, childPrefix string, opts ASTOpts) error {
	if _, err := fmt.Fprintf(w, "%s%s\n", connector, prettyLabel(n, opts)); err != nil {
		return err
	}
	for i, c := range n.Children {
		conn := childPrefix + "|-"
		next := childPrefix + "| "
		if i == len(n.Children)-1 {
			conn = childPrefix + "`-"
			next = childPrefix + "  "
		}
		if err := writePretty(w, c, conn, next, opts); err != nil {
			return err
		}
	}
	return nil
}

func prettyLabel(n *Node, opts ASTOpts) string {
	parts := []string{paint(opts.Color, kindColor(n.Kind), n.Kind)}
	if opts.ShowTags {
		parts = append(parts, paint(opts.Color, tagColor, n.Tag))
	}
	parts = append(parts, paint(opts.Color, spanColor, formatSpan(n.Pos, n.End)))
	for _, a := range n.Attrs {
		if strings.HasPrefix(a, "'") {
			parts = append(parts, paint(opts.Color, typeColor, a))
			continue
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

func kindColor(kind string) *color.Color {
	switch {
	case kind == "File" || strings.HasSuffix(kind, "Decl") || strings.HasSuffix(kind, "Spec"):
		return declColor
	case strings.HasSuffix(kind, "Stmt"):
		return stmtColor
	case strings.HasSuffix(kind, "Expr") || strings.HasSuffix(kind, "Lit") || kind == "Ident":
		return exprColor
	}
	return miscColor
}
