package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"astdump/internal/diagfmt"
	"astdump/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <source>",
	Short: "Tokenize a source buffer",
	Long:  `Tokenize breaks a source buffer into the token stream produced by the front end's scanner`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().String("filename", "input.go", "virtual filename for position attribution")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	src := args[0]

	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	filename, err := cmd.Flags().GetString("filename")
	if err != nil {
		return fmt.Errorf("failed to get filename flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	// Выполняем токенизацию
	result := driver.Tokenize(src, driver.Options{
		Filename:       filename,
		MaxDiagnostics: maxDiagnostics,
	})

	// Выводим диагностику в stderr, если есть
	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, src, diagfmt.PrettyOpts{
			Color:   colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr)),
			Context: 2,
		})
	}

	// Выводим токены в выбранном формате
	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
