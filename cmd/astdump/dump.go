package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"astdump/internal/config"
	"astdump/internal/diagfmt"
	"astdump/internal/driver"
	"astdump/internal/frontend"
)

func init() {
	rootCmd.Flags().String("format", "", "output format (pretty|tree|json); empty = config default")
	rootCmd.Flags().String("filename", "input.go", "virtual filename; the extension selects the dialect")
	rootCmd.Flags().String("std", "", "language standard, e.g. go1.25; empty = config default")
	rootCmd.Flags().String("warn", "", "warning selector (all|none); empty = config default")
	rootCmd.Flags().String("toolchain", "", "toolchain executable used for resource discovery")
	rootCmd.Flags().Bool("keep-going", false, "dump the best-effort tree even after unrecoverable errors")
	rootCmd.Flags().Bool("cache", false, "reuse rendered dumps from the disk cache")
}

func runDump(cmd *cobra.Command, args []string) error {
	src := args[0]

	configPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Флаги поверх конфига.
	if f := flagString(cmd, "format"); f != "" {
		cfg.Dump.Format = f
	}
	if f := flagString(cmd, "std"); f != "" {
		cfg.Dump.Std = f
	}
	if f := flagString(cmd, "warn"); f != "" {
		cfg.Dump.Warn = f
	}
	if cmd.Flags().Changed("keep-going") {
		cfg.Dump.KeepGoing, _ = cmd.Flags().GetBool("keep-going")
	}
	if cmd.Flags().Changed("cache") {
		cfg.Dump.Cache, _ = cmd.Flags().GetBool("cache")
	}
	colorMode := cfg.Output.Color
	if f, ferr := cmd.Root().PersistentFlags().GetString("color"); ferr == nil && cmd.Root().PersistentFlags().Changed("color") {
		colorMode = f
	}

	switch cfg.Dump.Format {
	case "pretty", "tree", "json":
	default:
		return fmt.Errorf("unknown format: %s", cfg.Dump.Format)
	}
	switch cfg.Dump.Warn {
	case "all", "none":
	default:
		return fmt.Errorf("unknown warning selector: %s", cfg.Dump.Warn)
	}

	filename := flagString(cmd, "filename")
	if filename == "" {
		filename = "input.go"
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	invArgs := cfg.Args()

	unit, err := driver.Parse(src, driver.Options{
		Args:           invArgs,
		Filename:       filename,
		Toolchain:      flagString(cmd, "toolchain"),
		MaxDiagnostics: maxDiagnostics,
	})
	if err != nil {
		// Фронтенд не запустился: юнита нет, падаем сразу.
		return err
	}

	if unit.Bag.Len() > 0 {
		unit.Bag.Sort()
		popts := diagfmt.PrettyOpts{
			Color:     useColor(colorMode, os.Stderr),
			Context:   2,
			ShowNotes: true,
		}
		if quiet {
			popts.Context = 0
			popts.ShowNotes = false
		}
		diagfmt.Pretty(os.Stderr, unit.Bag, unit.Source, popts)
	}

	srcErr := unit.SourceErr()
	if srcErr != nil && !cfg.Dump.KeepGoing {
		// Политика минимального драйвера: сломанное дерево не печатаем.
		return srcErr
	}

	if err := writeDump(os.Stdout, unit, cfg, invArgs, filename, useColor(colorMode, os.Stdout)); err != nil {
		return err
	}
	// keep-going всё равно завершает процесс со статусом 1.
	return srcErr
}

// writeDump renders the tree, going through the disk cache for the
// deterministic formats. The pretty format carries identity tags that are
// only meaningful within the producing run, so it is never cached.
func writeDump(w io.Writer, unit *frontend.Unit, cfg config.Config, invArgs []string, filename string, color bool) error {
	opts := diagfmt.ASTOpts{Color: color, ShowTags: true}
	render := func(w io.Writer) error {
		switch cfg.Dump.Format {
		case "pretty":
			return diagfmt.FormatASTPretty(w, unit, opts)
		case "tree":
			return diagfmt.FormatASTTree(w, unit, opts)
		case "json":
			return diagfmt.FormatASTJSON(w, unit)
		}
		return fmt.Errorf("unknown format: %s", cfg.Dump.Format)
	}

	cacheable := cfg.Dump.Cache && !color && cfg.Dump.Format != "pretty" && !unit.HasUncompilableError()
	if !cacheable {
		return render(w)
	}

	cache, err := driver.OpenDumpCache("astdump")
	if err != nil {
		// Кеш — оптимизация, не условие корректности.
		return render(w)
	}
	key := driver.DumpKey(unit.Source, invArgs, filename, cfg.Dump.Format)

	var payload driver.DumpPayload
	if ok, gerr := cache.Get(key, &payload); gerr == nil && ok {
		_, werr := w.Write(payload.Rendered)
		return werr
	}

	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}
	payload = driver.DumpPayload{
		Schema:   driver.DumpCacheSchemaVersion,
		Format:   cfg.Dump.Format,
		Rendered: buf.Bytes(),
		Created:  time.Now().Unix(),
	}
	_ = cache.Put(key, &payload)
	_, werr := w.Write(buf.Bytes())
	return werr
}

func useColor(mode string, f *os.File) bool {
	return mode == "on" || (mode == "auto" && isTerminal(f))
}

func flagString(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return v
}
