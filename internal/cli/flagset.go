package cli

import (
	"flag"
	"fmt"
	"io"

	"motifmark/internal/version"
)

// NewFlagSet returns a FlagSet with ContinueOnError and the motifmark usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, name) }
	return fs
}

func printUsage(fs *flag.FlagSet, name string) {
	out := fs.Output()
	def := func(flagName string) string {
		if f := fs.Lookup(flagName); f != nil {
			return f.DefValue
		}
		return ""
	}
	p := func(format string, a ...any) { _, _ = fmt.Fprintf(out, format, a...) }

	p("%s - draw sequence motifs on exon/intron gene models\n\n", name)
	p("Version: %s\n\n", version.Version)
	p("Usage:\n  %s -m motifs.txt -f genes.fa [flags] [FASTA ...]\n", name)

	p("\nInput:\n")
	p("  -m, --motifs file           Motif file, whitespace separated, '#' comments [*]\n")
	p("  -f, --file file             FASTA file(s) (repeatable) or '-' for STDIN [*]\n")
	p("  -s, --sequences file        alias of --file\n")
	p("      --max-expansion int     Max literals one motif may expand to [%s]\n", def("max-expansion"))
	p("      --strict                Abort on a malformed FASTA header instead of skipping [%s]\n", def("strict"))
	p("      --config file           Config file (default ./motifmark.{yaml,toml,json})\n")

	p("\nPerformance:\n")
	p("  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))

	p("\nOutput:\n")
	p("  -o, --output string         Output: png | svg | text | json | jsonl | gff [%s]\n", def("output"))
	p("      --out path              Write output here (images default to <input>.png|svg)\n")
	p("      --sort                  Sort genes by source file and name [%s]\n", def("sort"))
	p("      --no-header             Suppress header line (text) [%s]\n", def("no-header"))
	p("      --pretty                ASCII gene track after each gene (text) [%s]\n", def("pretty"))
	p("      --width int             Column cap for --pretty tracks [%s]\n", def("width"))
	p("      --no-match-exit-code int  Exit code when no motif is found [%s]\n", def("no-match-exit-code"))

	p("\nMiscellaneous:\n")
	p("      --progress              Show a progress bar on stderr [%s]\n", def("progress"))
	p("  -q, --quiet                 Suppress warnings [%s]\n", def("quiet"))
	p("      --verbose               Report catalog and output details on stderr [%s]\n", def("verbose"))
	p("  -v, --version               Print version and exit\n")
	p("  -h, --help                  Show this help and exit\n")
}

// PrintUsage writes the usage text for fs to w.
func PrintUsage(fs *flag.FlagSet, w io.Writer) {
	fs.SetOutput(w)
	fs.Usage()
}
