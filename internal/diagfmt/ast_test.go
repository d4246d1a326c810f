package diagfmt

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"astdump/internal/frontend"
)

func buildUnit(t *testing.T, src, filename string) *frontend.Unit {
	t.Helper()
	unit, err := frontend.BuildFromCode(src, frontend.DefaultArgs(), filename, "", 100)
	if err != nil {
		t.Fatalf("BuildFromCode failed: %v", err)
	}
	return unit
}

func TestBuildAST_RootAndOrder(t *testing.T) {
	unit := buildUnit(t, "package main\n\nconst a = 1\n\nfunc main() {}\n", "input.go")

	root := BuildAST(unit)
	if root.Kind != "File" {
		t.Fatalf("root kind = %q, want File", root.Kind)
	}
	if len(root.Attrs) == 0 || root.Attrs[0] != "package main" {
		t.Errorf("root attrs = %v, want package clause first", root.Attrs)
	}

	// Дети корня: Ident(main), GenDecl(const), FuncDecl — в порядке исходника.
	var kinds []string
	for _, c := range root.Children {
		kinds = append(kinds, c.Kind)
	}
	want := []string{"Ident", "GenDecl", "FuncDecl"}
	if strings.Join(kinds, ",") != strings.Join(want, ",") {
		t.Errorf("children = %v, want %v", kinds, want)
	}

	last := -1
	for _, c := range root.Children {
		if c.Pos.Offset < last {
			t.Fatalf("children out of source order: %v", kinds)
		}
		last = c.Pos.Offset
	}
}

func TestFormatASTPretty_EmptyFunction(t *testing.T) {
	unit := buildUnit(t, "package main\n\nfunc main() {}\n", "input.go")

	var buf bytes.Buffer
	if err := FormatASTPretty(&buf, unit, ASTOpts{ShowTags: true}); err != nil {
		t.Fatalf("FormatASTPretty failed: %v", err)
	}
	out := buf.String()

	if strings.Count(out, "FuncDecl") != 1 {
		t.Errorf("want exactly one FuncDecl node, got:\n%s", out)
	}
	if !strings.Contains(out, "<input.go:3:1, 3:15> main") {
		t.Errorf("FuncDecl span/name missing, got:\n%s", out)
	}
	if !strings.Contains(out, "BlockStmt") {
		t.Errorf("empty body node missing, got:\n%s", out)
	}
	if !strings.Contains(out, "0x") {
		t.Errorf("identity tags requested but missing, got:\n%s", out)
	}
	if !strings.HasPrefix(out, "File ") {
		t.Errorf("dump must start at the translation unit, got:\n%s", out)
	}
}

var tagRe = regexp.MustCompile(`0x[0-9a-f]+`)

func TestFormatASTPretty_IdempotentModuloTags(t *testing.T) {
	src := "package main\n\nfunc main() {}\n"

	var first, second bytes.Buffer
	if err := FormatASTPretty(&first, buildUnit(t, src, "input.go"), ASTOpts{ShowTags: true}); err != nil {
		t.Fatal(err)
	}
	if err := FormatASTPretty(&second, buildUnit(t, src, "input.go"), ASTOpts{ShowTags: true}); err != nil {
		t.Fatal(err)
	}

	a := tagRe.ReplaceAllString(first.String(), "0xTAG")
	b := tagRe.ReplaceAllString(second.String(), "0xTAG")
	if a != b {
		t.Errorf("dumps differ beyond identity tags:\n--- first\n%s\n--- second\n%s", a, b)
	}
}

func TestFormatASTPretty_TypesFromSemanticState(t *testing.T) {
	unit := buildUnit(t, "package main\n\nfunc add(a, b int) int { return a + b }\n", "input.go")

	var buf bytes.Buffer
	if err := FormatASTPretty(&buf, unit, ASTOpts{}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.Contains(out, "BinaryExpr") || !strings.Contains(out, "'+'") {
		t.Errorf("operator attribute missing, got:\n%s", out)
	}
	if !strings.Contains(out, "'int'") {
		t.Errorf("resolved type missing, got:\n%s", out)
	}
}

func TestFormatASTTree_StableAndTagFree(t *testing.T) {
	unit := buildUnit(t, "package main\n\nfunc main() {}\n", "input.go")

	var buf bytes.Buffer
	if err := FormatASTTree(&buf, unit, ASTOpts{}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "input.go (file dialect)") {
		t.Errorf("header missing, got:\n%s", out)
	}
	if !strings.Contains(out, "└── ") {
		t.Errorf("box connectors missing, got:\n%s", out)
	}
	if tagRe.MatchString(out) {
		t.Errorf("tree format must not leak identity tags:\n%s", out)
	}
}

func TestFormatASTJSON_RoundTrips(t *testing.T) {
	unit := buildUnit(t, "package main\n\nfunc main() {}\n", "input.go")

	var buf bytes.Buffer
	if err := FormatASTJSON(&buf, unit); err != nil {
		t.Fatal(err)
	}

	var node ASTNodeOutput
	if err := json.Unmarshal(buf.Bytes(), &node); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if node.Kind != "File" {
		t.Errorf("root kind = %q, want File", node.Kind)
	}
	if node.Pos != "input.go:1:1" {
		t.Errorf("root pos = %q, want input.go:1:1", node.Pos)
	}
	if len(node.Children) == 0 {
		t.Error("root has no children")
	}
}

func TestFormatTokens(t *testing.T) {
	tokens, bag := frontend.ScanFromCode("x := 1\n", "input.gos", 100)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, tokens); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "IDENT") || !strings.Contains(out, `"x"`) {
		t.Errorf("pretty token stream incomplete:\n%s", out)
	}

	buf.Reset()
	if err := FormatTokensJSON(&buf, tokens); err != nil {
		t.Fatal(err)
	}
	var decoded []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("token JSON invalid: %v", err)
	}
	if len(decoded) != len(tokens) {
		t.Errorf("decoded %d tokens, want %d", len(decoded), len(tokens))
	}
}
