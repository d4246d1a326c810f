package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[dump]\nformat = \"tree\"\nstd = \"go1.22\"\nwarn = \"none\"\nkeep_going = true\n\n[output]\ncolor = \"off\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Dump.Format != "tree" || cfg.Dump.Std != "go1.22" || !cfg.Dump.KeepGoing {
		t.Errorf("dump section = %+v", cfg.Dump)
	}
	if cfg.Output.Color != "off" {
		t.Errorf("color = %q, want off", cfg.Output.Color)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[dump]\nformat = \"json\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Dump.Format != "json" {
		t.Errorf("format = %q, want json", cfg.Dump.Format)
	}
	if cfg.Dump.Std != "go1.25" || cfg.Dump.Warn != "all" {
		t.Errorf("unset fields must keep defaults: %+v", cfg.Dump)
	}
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("an explicitly named missing config must fail")
	}
}

func TestLoad_DefaultLocationMissingIsFine(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("missing default config must yield Default(), got %+v", cfg)
	}
}

func TestConfig_Args(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{"defaults", Default(), []string{"-std=go1.25", "-Wall"}},
		{
			"warn none",
			Config{Dump: DumpConfig{Std: "go1.21", Warn: "none"}},
			[]string{"-std=go1.21", "-Wnone"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cfg.Args()
			if len(got) != len(tt.want) {
				t.Fatalf("Args() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Args()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
