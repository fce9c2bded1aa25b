package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestLoad_YAML(t *testing.T) {
	fn := writeConfig(t, "mm.yaml", `
motifs: motifs.txt
output: svg
threads: 3
colors:
  - "#ff0000"
  - "#00ff00"
`)
	s, err := Load(fn)
	if err != nil {
		t.Fatal(err)
	}
	if s.Motifs != "motifs.txt" || s.Output != "svg" || s.Threads != 3 || len(s.Colors) != 2 {
		t.Fatalf("settings = %+v", s)
	}
	if !s.Has(KeyThreads) || !s.Has(KeyColors) || s.Has(KeyWidth) || s.Has(KeyStrict) {
		t.Fatalf("Has() wrong: %v", s.set)
	}
	if s.File != fn {
		t.Fatalf("File = %q", s.File)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("MOTIFMARK_WIDTH", "120")
	t.Setenv("MOTIFMARK_STRICT", "true")
	fn := writeConfig(t, "mm.toml", "output = \"text\"\n")
	s, err := Load(fn)
	if err != nil {
		t.Fatal(err)
	}
	if s.Output != "text" || s.Width != 120 || !s.Strict || !s.Has(KeyWidth) || !s.Has(KeyStrict) {
		t.Fatalf("settings = %+v", s)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("want error for a missing explicit config file")
	}
}

func TestLoad_NoDefaultFile(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if s.File != "" || s.Has(KeyOutput) {
		t.Fatalf("unexpected settings %+v", s)
	}
}

func TestLoad_Negative(t *testing.T) {
	fn := writeConfig(t, "bad.json", `{"threads": -1}`)
	if _, err := Load(fn); err == nil {
		t.Fatal("want error for negative threads")
	}
}
