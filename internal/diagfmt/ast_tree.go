package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"astdump/internal/frontend"
)

// FormatASTTree dumps the tree with box-drawing connectors. Identity tags
// are omitted, so the output is byte-stable between runs.
func FormatASTTree(w io.Writer, u *frontend.Unit, opts ASTOpts) error {
	header := fmt.Sprintf("%s (%s dialect)", u.Filename, u.Dialect)
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	return writeTree(w, BuildAST(u), "", "", opts)
}

func writeTree(w io.Writer, n *Node, connector, childPrefix string, opts ASTOpts) error {
	if _, err := fmt.Fprintf(w, "%s%s\n", connector, treeLabel(n, opts)); err != nil {
		return err
	}
	for i, c := range n.Children {
		conn := childPrefix + "├── "
		next := childPrefix + "│   "
		if i == len(n.Children)-1 {
			conn = childPrefix + "└── "
			next = childPrefix + "    "
		}
		if err := writeTree(w, c, conn, next, opts); err != nil {
			return err
		}
	}
	return nil
}

func treeLabel(n *Node, opts ASTOpts) string {
	label := paint(opts.Color, kindColor(n.Kind), n.Kind) +
		" " + paint(opts.Color, spanColor, fmt.Sprintf("<%d:%d-%d:%d>", n.Pos.Line, n.Pos.Column, n.End.Line, n.End.Column))
	if len(n.Attrs) > 0 {
		label += " " + strings.Join(n.Attrs, " ")
	}
	return label
}
