package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"astdump/internal/frontend"
)

// ASTNodeOutput представляет узел дерева в JSON формате.
// Identity-теги не сериализуются: JSON обязан быть стабильным между
// запусками.
type ASTNodeOutput struct {
	Kind     string          `json:"kind"`
	Pos      string          `json:"pos"`
	End      string          `json:"end,omitempty"`
	Attrs    []string        `json:"attrs,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

// BuildASTJSON converts the unit's tree into the JSON output form.
func BuildASTJSON(u *frontend.Unit) ASTNodeOutput {
	return jsonNode(BuildAST(u))
}

func jsonNode(n *Node) ASTNodeOutput {
	out := ASTNodeOutput{
		Kind:  n.Kind,
		Pos:   fmt.Sprintf("%s:%d:%d", n.Pos.Filename, n.Pos.Line, n.Pos.Column),
		Attrs: n.Attrs,
	}
	if n.End.IsValid() {
		out.End = fmt.Sprintf("%d:%d", n.End.Line, n.End.Column)
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, jsonNode(c))
	}
	return out
}

// FormatASTJSON dumps the tree as indented JSON.
func FormatASTJSON(w io.Writer, u *frontend.Unit) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildASTJSON(u))
}
