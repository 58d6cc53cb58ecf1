package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindAndLoadWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "[dump]\nindent = 4\ncolor = \"never\"\n\n[cli]\nlang = \"zh\"\n")

	nested := filepath.Join(root, "src", "pkg")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, path, err := FindAndLoad(nested)
	if err != nil {
		t.Fatalf("FindAndLoad: %v", err)
	}
	if path != want {
		t.Errorf("path = %s, want %s", path, want)
	}
	if cfg.Dump.Indent != 4 || cfg.Dump.Color != ColorNever || cfg.CLI.Lang != "zh" {
		t.Errorf("cfg = %+v", cfg)
	}
	if got := cfg.IndentUnit(); got != "    " {
		t.Errorf("IndentUnit = %q", got)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[cli]\nlang = \"en\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := DefaultConfig()
	if cfg.Dump != def.Dump {
		t.Errorf("Dump = %+v, want defaults %+v", cfg.Dump, def.Dump)
	}
	if cfg.IndentUnit() != "  " {
		t.Errorf("IndentUnit = %q", cfg.IndentUnit())
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"indent too small", "[dump]\nindent = 0\n", ErrInvalidIndent},
		{"indent too large", "[dump]\nindent = 9\n", ErrInvalidIndent},
		{"bad color", "[dump]\ncolor = \"rainbow\"\n", ErrInvalidColor},
		{"bad lang", "[cli]\nlang = \"fr\"\n", ErrInvalidLang},
		{"unknown key", "[dump]\nindnt = 3\n", ErrUnknownKeys},
		{"unknown table", "[printer]\nindent = 3\n", ErrUnknownKeys},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			if _, err := Load(path); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadSyntaxError(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[dump\nindent = 2\n")
	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestFindConfigFileIgnoresDirectory(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, FileName), 0o755); err != nil {
		t.Fatal(err)
	}
	if got := FindConfigFile(root); got == filepath.Join(root, FileName) {
		t.Errorf("FindConfigFile returned a directory: %s", got)
	}
}
