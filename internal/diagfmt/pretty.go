package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"astdump/internal/diag"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <filename>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по диапазону, затем Notes.
// Позиции уже в координатах буфера (line directives учтены фронтендом),
// поэтому контекст берётся напрямую из src.
func Pretty(w io.Writer, bag *diag.Bag, src string, opts PrettyOpts) {
	lines := strings.Split(src, "\n")
	for _, d := range bag.Items() {
		sev := paint(opts.Color, severityColor(d.Severity), d.Severity.String())
		code := paint(opts.Color, codeColor, d.Code.ID())
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			d.Pos.Filename, d.Pos.Line, d.Pos.Column, sev, code, d.Message)

		if opts.Context > 0 && d.Pos.Line >= 1 && d.Pos.Line <= len(lines) {
			writeContext(w, lines, d, opts)
		}

		if opts.ShowNotes {
			for _, n := range d.Notes {
				fmt.Fprintf(w, "  note: %s:%d:%d: %s\n",
					n.Pos.Filename, n.Pos.Line, n.Pos.Column, n.Msg)
			}
		}
	}
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	}
	return infoColor
}

// writeContext prints the lines leading up to the diagnostic and a caret
// line underneath. The caret column is measured in display cells, not
// bytes, so wide runes before the span keep the underline aligned.
func writeContext(w io.Writer, lines []string, d diag.Diagnostic, opts PrettyOpts) {
	first := d.Pos.Line - int(opts.Context) + 1
	if first < 1 {
		first = 1
	}
	gutter := len(fmt.Sprintf("%d", d.Pos.Line))
	for ln := first; ln <= d.Pos.Line; ln++ {
		fmt.Fprintf(w, " %*d | %s\n", gutter, ln, lines[ln-1])
	}

	lineText := lines[d.Pos.Line-1]
	col := d.Pos.Column
	if col < 1 {
		col = 1
	}
	prefixEnd := col - 1
	if prefixEnd > len(lineText) {
		prefixEnd = len(lineText)
	}
	pad := runewidth.StringWidth(lineText[:prefixEnd])

	span := 1
	if d.End.IsValid() && d.End.Line == d.Pos.Line && d.End.Column > d.Pos.Column {
		span = runewidth.StringWidth(clipSpan(lineText, prefixEnd, d.End.Column-1))
		if span < 1 {
			span = 1
		}
	}

	underline := "^" + strings.Repeat("~", span-1)
	fmt.Fprintf(w, " %*s | %s%s\n", gutter, "",
		strings.Repeat(" ", pad), paint(opts.Color, caretColor, underline))
}

func clipSpan(line string, start, end int) string {
	if end > len(line) {
		end = len(line)
	}
	if start > end {
		return ""
	}
	return line[start:end]
}
