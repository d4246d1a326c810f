package diagfmt

import (
	"fmt"

	"github.com/fatih/color"
)

// Палитра включена всегда; гейтим по opts.Color, а не по глобальному
// color.NoColor, чтобы --color=on работал и в пайпе.
func enabledColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

var (
	errorColor   = enabledColor(color.FgRed, color.Bold)
	warningColor = enabledColor(color.FgYellow, color.Bold)
	infoColor    = enabledColor(color.FgCyan, color.Bold)
	codeColor    = enabledColor(color.Faint)
	caretColor   = enabledColor(color.FgGreen, color.Bold)

	declColor = enabledColor(color.FgGreen, color.Bold)
	stmtColor = enabledColor(color.FgMagenta, color.Bold)
	exprColor = enabledColor(color.FgCyan, color.Bold)
	miscColor = enabledColor(color.FgBlue, color.Bold)
	tagColor  = enabledColor(color.FgYellow)
	spanColor = enabledColor(color.Faint)
	typeColor = enabledColor(color.FgGreen)
)

func paint(enabled bool, c *color.Color, args ...interface{}) string {
	if !enabled {
		return fmt.Sprint(args...)
	}
	return c.Sprint(args...)
}
