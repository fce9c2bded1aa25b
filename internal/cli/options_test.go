// internal/cli/options_test.go
package cli

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"motifmark/core/motif"
	"motifmark/internal/config"
	"motifmark/internal/writers"
)

func newFS() *flag.FlagSet {
	fs := NewFlagSet("test")
	fs.SetOutput(&bytes.Buffer{})
	return fs
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if err := Validate(&opts); err != nil {
		t.Fatalf("validate err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, "-m", "motifs.txt", "-f", "genes.fa")
	if o.Output != "png" || !o.Header || o.Threads != 0 || o.MaxExpansion != motif.DefaultExpansionLimit {
		t.Fatalf("defaults = %+v", o)
	}
	if o.NoMatchExitCode != 0 || o.Width != 80 || o.Strict || o.Sort {
		t.Fatalf("defaults = %+v", o)
	}
}

func TestAliasesAndRepeatableFiles(t *testing.T) {
	o := mustParse(t,
		"--motifs", "m.txt",
		"-f", "a.fa", "--sequences", "b.fa", "-s", "c.fa",
		"-o", "text", "-t", "4", "--no-header", "-q",
	)
	if o.MotifFile != "m.txt" || strings.Join(o.SeqFiles, ",") != "a.fa,b.fa,c.fa" {
		t.Fatalf("inputs = %+v", o)
	}
	if o.Output != "text" || o.Threads != 4 || o.Header || !o.Quiet {
		t.Fatalf("flags = %+v", o)
	}
}

func TestPositionalFASTA(t *testing.T) {
	o := mustParse(t, "x.fa", "-m", "m.txt", "y.fa")
	if strings.Join(o.SeqFiles, ",") != "x.fa,y.fa" {
		t.Fatalf("seq files = %v", o.SeqFiles)
	}
}

func TestValidationErrors(t *testing.T) {
	cases := map[string][]string{
		"missing motifs": {"-f", "a.fa"},
		"missing fasta":  {"-m", "m.txt"},
		"bad output":     {"-m", "m.txt", "-f", "a.fa", "-o", "pdf"},
		"neg threads":    {"-m", "m.txt", "-f", "a.fa", "-t", "-1"},
		"bad exit code":  {"-m", "m.txt", "-f", "a.fa", "--no-match-exit-code", "300"},
		"neg expansion":  {"-m", "m.txt", "-f", "a.fa", "--max-expansion", "-5"},
	}
	for name, args := range cases {
		o, err := ParseArgs(newFS(), args)
		if err == nil {
			err = Validate(&o)
		}
		if err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestValidate_FormatsFromRegistry(t *testing.T) {
	for _, f := range writers.Formats() {
		o := mustParse(t, "-m", "m.txt", "-f", "a.fa", "-o", f)
		if err := Validate(&o); err != nil {
			t.Errorf("format %s rejected: %v", f, err)
		}
	}
	o, err := ParseArgs(newFS(), []string{"-m", "m.txt", "-f", "a.fa", "-o", "pdf"})
	if err != nil {
		t.Fatal(err)
	}
	err = Validate(&o)
	if err == nil || !strings.Contains(err.Error(), "gff | json | jsonl | png | svg | text") {
		t.Fatalf("error should list registered formats, got %v", err)
	}
}

func TestHelpAndVersion(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want flag.ErrHelp, got %v", err)
	}
	o, err := ParseArgs(newFS(), []string{"-v"})
	if err != nil || !o.Version {
		t.Fatalf("version: %+v %v", o, err)
	}
}

func TestUsageMentionsFlags(t *testing.T) {
	fs := newFS()
	_, _ = ParseArgs(fs, nil)
	var buf bytes.Buffer
	PrintUsage(fs, &buf)
	for _, want := range []string{"--motifs", "--output", "--max-expansion", "[png]", "[65536]"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("usage missing %q", want)
		}
	}
}

func TestApplyConfig_FlagsWin(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "mm.yaml")
	body := "motifs: from-config.txt\noutput: svg\nthreads: 7\ncolors: ['#000000']\n"
	if err := os.WriteFile(fn, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := config.Load(fn)
	if err != nil {
		t.Fatal(err)
	}

	o, err := ParseArgs(newFS(), []string{"-f", "a.fa", "-o", "json"})
	if err != nil {
		t.Fatal(err)
	}
	ApplyConfig(&o, s)
	if err := Validate(&o); err != nil {
		t.Fatal(err)
	}
	if o.MotifFile != "from-config.txt" || o.Threads != 7 {
		t.Fatalf("config values not applied: %+v", o)
	}
	if o.Output != "json" {
		t.Fatalf("explicit -o must win over config, got %q", o.Output)
	}
	if len(o.Colors) != 1 || o.Colors[0] != "#000000" {
		t.Fatalf("colors = %v", o.Colors)
	}
}
