package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"astdump/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "astdump [flags] <source>",
	Short: "Build a syntax tree from a source buffer and dump it",
	Long: `astdump hands a single source-code string to the Go front end
(go/parser + go/types), checks the outcome and prints the resulting
syntax tree. Diagnostics go to stderr, the tree goes to stdout.`,
	Args:         cobra.ExactArgs(1),
	RunE:         runDump,
	SilenceUsage: true,
}

// main registers subcommands and persistent flags, then executes the root
// command. Any failure — front end unusable or unrecoverable source
// diagnostics alike — exits with status 1.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	// Добавляем команды
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("config", "", "path to the config file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
