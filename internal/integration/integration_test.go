// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"motifmark/internal/app"
	"motifmark/internal/output"
	"motifmark/pkg/api"
)

const genes = `>INSR (reverse complement)
ttcatgcaGCATGTTTCcatgAATGctgcatgt
>MBNL
atgcgcaTGCATGCacacaTGCT
`

func write(t *testing.T, dir, name, data string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func inputs(t *testing.T) (dir, motifs, fasta string) {
	t.Helper()
	dir = t.TempDir()
	motifs = write(t, dir, "motifs.txt", "# splicing motifs\nygcy GCATG\ncatag\n")
	fasta = write(t, dir, "genes.fa", genes)
	return
}

func TestEndToEnd_Text(t *testing.T) {
	_, motifs, fa := inputs(t)
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"-m", motifs, "-f", fa, "-o", "text", "--pretty"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	s := out.String()
	if !strings.HasPrefix(s, output.TSVHeader+"\n") {
		t.Fatalf("missing header:\n%s", s)
	}
	if !strings.Contains(s, "\tINSR\tmotif\tGCATG\t1\t8\t13\t5\n") {
		t.Fatalf("missing GCATG hit in INSR:\n%s", s)
	}
	if !strings.Contains(s, "# INSR (") || !strings.Contains(s, "# MBNL (") {
		t.Fatalf("missing pretty blocks:\n%s", s)
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	_, motifs, fa := inputs(t)
	run := func(threads int) string {
		var out, errB bytes.Buffer
		code := app.Run([]string{
			"-m", motifs, "-f", fa,
			"--threads", fmt.Sprint(threads),
			"--output", "json",
		}, &out, &errB)
		if code != 0 {
			t.Fatalf("exit %d err %s", code, errB.String())
		}
		return out.String()
	}
	serial := run(1)
	parallel := run(4)
	if serial != parallel {
		t.Fatalf("parallel output differs from serial\nserial: %s\nparallel:%s", serial, parallel)
	}
	var got []api.GeneV1
	if err := json.Unmarshal([]byte(serial), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Name != "INSR" || !got[0].Reverse || got[1].Name != "MBNL" {
		t.Fatalf("genes = %+v", got)
	}
}

func TestPNGNextToInput(t *testing.T) {
	dir, motifs, fa := inputs(t)
	var out, errB bytes.Buffer
	if code := app.Run([]string{"-m", motifs, fa}, &out, &errB); code != 0 {
		t.Fatalf("exit %d err %s", code, errB.String())
	}
	if out.Len() != 0 {
		t.Fatalf("figure output must not go to stdout")
	}
	b, err := os.ReadFile(filepath.Join(dir, "genes.png"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("\x89PNG")) {
		t.Fatal("genes.png is not a PNG")
	}
}

func TestSVGToExplicitPath(t *testing.T) {
	dir, motifs, fa := inputs(t)
	dst := filepath.Join(dir, "fig.svg")
	var out, errB bytes.Buffer
	if code := app.Run([]string{"-m", motifs, "-f", fa, "-o", "svg", "--out", dst}, &out, &errB); code != 0 {
		t.Fatalf("exit %d err %s", code, errB.String())
	}
	b, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(b, []byte(">INSR</text>")) {
		t.Fatal("svg does not name the gene")
	}
}

func TestGFF(t *testing.T) {
	_, motifs, fa := inputs(t)
	var out, errB bytes.Buffer
	if code := app.Run([]string{"-m", motifs, "-f", fa, "-o", "gff"}, &out, &errB); code != 0 {
		t.Fatalf("exit %d err %s", code, errB.String())
	}
	if !strings.HasPrefix(out.String(), "##gff-version 3\n") ||
		!strings.Contains(out.String(), "INSR.rev\tmotifmark\tsequence_motif\t9\t13\t.\t-\t") {
		t.Fatalf("gff:\n%s", out.String())
	}
}

func TestNoMatchExitCode(t *testing.T) {
	dir, _, fa := inputs(t)
	motifs := write(t, dir, "none.txt", "gggggggg\n")
	var out, errB bytes.Buffer
	code := app.Run([]string{"-m", motifs, "-f", fa, "-o", "jsonl", "--no-match-exit-code", "4"}, &out, &errB)
	if code != 4 {
		t.Fatalf("want exit 4, got %d (%s)", code, errB.String())
	}
	if strings.Count(out.String(), "\n") != 2 {
		t.Fatalf("genes must still be written:\n%s", out.String())
	}
}

func TestMalformedHeader(t *testing.T) {
	dir, motifs, _ := inputs(t)
	fa := write(t, dir, "bad.fa", ">good\nACGT\n>\nacgt\n")

	var out, errB bytes.Buffer
	code := app.Run([]string{"-m", motifs, "-f", fa, "-o", "text"}, &out, &errB)
	if code != 0 || !strings.Contains(errB.String(), "WARN: ") {
		t.Fatalf("want warning and exit 0, got %d / %q", code, errB.String())
	}

	errB.Reset()
	code = app.Run([]string{"-m", motifs, "-f", fa, "-o", "text", "-q"}, &out, &errB)
	if code != 0 || errB.Len() != 0 {
		t.Fatalf("--quiet must silence warnings, got %d / %q", code, errB.String())
	}

	code = app.Run([]string{"-m", motifs, "-f", fa, "-o", "text", "--strict"}, &out, &errB)
	if code != 2 {
		t.Fatalf("--strict: want exit 2, got %d", code)
	}
}

func TestBadMotif(t *testing.T) {
	dir, _, fa := inputs(t)
	motifs := write(t, dir, "huge.txt", strings.Repeat("n", 20)+"\n")
	var out, errB bytes.Buffer
	if code := app.Run([]string{"-m", motifs, "-f", fa, "-o", "text"}, &out, &errB); code != 2 {
		t.Fatalf("want exit 2, got %d", code)
	}
	if !strings.Contains(errB.String(), "expands to more than") {
		t.Fatalf("stderr = %q", errB.String())
	}
	// Raising the limit lets a smaller motif through.
	motifs = write(t, dir, "big.txt", strings.Repeat("n", 9)+"\n")
	if code := app.Run([]string{"-m", motifs, "-f", fa, "-o", "text", "--max-expansion", "300000"}, &out, &errB); code != 0 {
		t.Fatalf("want exit 0, got %d (%s)", code, errB.String())
	}
}

func TestConfigFile(t *testing.T) {
	dir, motifs, fa := inputs(t)
	cfg := write(t, dir, "mm.yaml", fmt.Sprintf("motifs: %q\noutput: jsonl\n", motifs))
	var out, errB bytes.Buffer
	if code := app.Run([]string{"--config", cfg, fa}, &out, &errB); code != 0 {
		t.Fatalf("exit %d err %s", code, errB.String())
	}
	if !strings.HasPrefix(out.String(), `{"name":"INSR"`) {
		t.Fatalf("config output not applied:\n%s", out.String())
	}
}

func TestUsageAndVersion(t *testing.T) {
	var out, errB bytes.Buffer
	if code := app.Run(nil, &out, &errB); code != 0 || !strings.Contains(out.String(), "--motifs") {
		t.Fatalf("usage: %d %q", code, out.String())
	}
	out.Reset()
	if code := app.Run([]string{"--version"}, &out, &errB); code != 0 || !strings.HasPrefix(out.String(), "motifmark version ") {
		t.Fatalf("version: %d %q", code, out.String())
	}
	if code := app.Run([]string{"-o", "text"}, &out, &errB); code != 2 {
		t.Fatalf("missing inputs: want exit 2, got %d", code)
	}
}
