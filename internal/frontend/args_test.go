package frontend

import (
	"errors"
	"testing"

	"astdump/internal/diag"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Options
		wantErr bool
	}{
		{
			name: "empty args keep defaults",
			args: nil,
			want: Options{Std: "go1.25", Warn: WarnAll},
		},
		{
			name: "default argument list",
			args: DefaultArgs(),
			want: Options{Std: "go1.25", Warn: WarnAll},
		},
		{
			name: "standard selector",
			args: []string{"-std=go1.21"},
			want: Options{Std: "go1.21", Warn: WarnAll},
		},
		{
			name: "later flag overrides earlier",
			args: []string{"-Wall", "-Wnone"},
			want: Options{Std: "go1.25", Warn: WarnNone},
		},
		{
			name: "order matters the other way too",
			args: []string{"-Wnone", "-Wall"},
			want: Options{Std: "go1.25", Warn: WarnAll},
		},
		{
			name: "comment toggles",
			args: []string{"-fcomments", "-fno-comments", "-fcomments"},
			want: Options{Std: "go1.25", Warn: WarnAll, Comments: true},
		},
		{
			name:    "foreign standard is rejected",
			args:    []string{"-std=c++20"},
			wantErr: true,
		},
		{
			name:    "unknown argument is rejected",
			args:    []string{"-O2"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArgs(tt.args)
			if tt.wantErr {
				var terr *ToolchainError
				if !errors.As(err, &terr) {
					t.Fatalf("ParseArgs(%v) error = %v, want *ToolchainError", tt.args, err)
				}
				if terr.Code != diag.ToolchainBadArgs {
					t.Errorf("error code = %v, want ToolchainBadArgs", terr.Code)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseArgs(%v) unexpected error: %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("ParseArgs(%v) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestDialectFor(t *testing.T) {
	tests := []struct {
		filename string
		want     Dialect
	}{
		{"input.go", DialectFile},
		{"some/dir/main.go", DialectFile},
		{"input.gos", DialectSnippet},
		{"input.txt", DialectSnippet},
		{"noext", DialectSnippet},
	}
	for _, tt := range tests {
		if got := DialectFor(tt.filename); got != tt.want {
			t.Errorf("DialectFor(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}
