// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"slices"
	"strings"

	"motifmark/core/motif"
	"motifmark/internal/cliutil"
	"motifmark/internal/config"
	"motifmark/internal/output"
	"motifmark/internal/pretty"
	"motifmark/internal/writers"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	MotifFile    string
	SeqFiles     []string
	MaxExpansion int
	Strict       bool
	ConfigFile   string

	// Performance
	Threads int

	// Output
	Output          string
	Out             string
	Sort            bool
	Header          bool // true unless --no-header
	Pretty          bool
	Width           int
	NoMatchExitCode int
	Colors          []string // config only

	// Misc
	Progress bool
	Quiet    bool
	Verbose  bool
	Version  bool

	set map[string]bool // config keys given explicitly on the command line
}

// flagKeys maps flag names (aliases included) to the config key they override.
var flagKeys = map[string]string{
	"motifs":        config.KeyMotifs,
	"m":             config.KeyMotifs,
	"output":        config.KeyOutput,
	"o":             config.KeyOutput,
	"out":           config.KeyOut,
	"threads":       config.KeyThreads,
	"t":             config.KeyThreads,
	"max-expansion": config.KeyMaxExpansion,
	"strict":        config.KeyStrict,
	"width":         config.KeyWidth,
}

// sliceValue appends each value to a *[]string (for --file/-f/-s).
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return strings.Join(*s.dst, ",")
}
func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// ParseArgs registers and parses all flags and expands positional FASTA
// paths. It does not validate; call ApplyConfig then Validate.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, noHeader bool

	fs.StringVar(&opt.MotifFile, "motifs", "", "motif file")
	fs.StringVar(&opt.MotifFile, "m", "", "alias of --motifs")
	seqVal := &sliceValue{dst: &opt.SeqFiles}
	fs.Var(seqVal, "file", "FASTA file(s) (repeatable) or '-'")
	fs.Var(seqVal, "f", "alias of --file")
	fs.Var(seqVal, "sequences", "alias of --file")
	fs.Var(seqVal, "s", "alias of --file")
	fs.IntVar(&opt.MaxExpansion, "max-expansion", motif.DefaultExpansionLimit, "max literals per motif")
	fs.BoolVar(&opt.Strict, "strict", false, "abort on malformed header")
	fs.StringVar(&opt.ConfigFile, "config", "", "config file")

	fs.IntVar(&opt.Threads, "threads", 0, "worker threads (0=all CPUs)")
	fs.IntVar(&opt.Threads, "t", 0, "alias of --threads")

	fs.StringVar(&opt.Output, "output", output.FormatPNG, "output format")
	fs.StringVar(&opt.Output, "o", output.FormatPNG, "alias of --output")
	fs.StringVar(&opt.Out, "out", "", "output path")
	fs.BoolVar(&opt.Sort, "sort", false, "sort genes")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line")
	fs.BoolVar(&opt.Pretty, "pretty", false, "ASCII gene tracks")
	fs.IntVar(&opt.Width, "width", pretty.DefaultOptions.MaxWidth, "column cap for --pretty")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 0, "exit code when no motif is found")

	fs.BoolVar(&opt.Progress, "progress", false, "progress bar")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Verbose, "verbose", false, "verbose diagnostics")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "help", false, "show help")
	fs.BoolVar(&help, "h", false, "alias of --help")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	opt.Header = !noHeader
	opt.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		if k, ok := flagKeys[f.Name]; ok {
			opt.set[k] = true
		}
	})
	if opt.Version {
		return opt, nil
	}
	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return opt, err
		}
		opt.SeqFiles = append(opt.SeqFiles, exp...)
	}
	return opt, nil
}

// ApplyConfig copies config values into o for every key not given on the
// command line.
func ApplyConfig(o *Options, s config.Settings) {
	use := func(key string) bool { return s.Has(key) && !o.set[key] }
	if use(config.KeyMotifs) {
		o.MotifFile = s.Motifs
	}
	if use(config.KeyOutput) {
		o.Output = s.Output
	}
	if use(config.KeyOut) {
		o.Out = s.Out
	}
	if use(config.KeyThreads) {
		o.Threads = s.Threads
	}
	if use(config.KeyMaxExpansion) {
		o.MaxExpansion = s.MaxExpansion
	}
	if use(config.KeyStrict) {
		o.Strict = s.Strict
	}
	if use(config.KeyWidth) {
		o.Width = s.Width
	}
	if s.Has(config.KeyColors) {
		o.Colors = s.Colors
	}
}

// Validate applies the CLI invariants.
func Validate(o *Options) error {
	if o.MotifFile == "" {
		return errors.New("--motifs is required")
	}
	if len(o.SeqFiles) == 0 {
		return errors.New("at least one FASTA file is required")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be >= 0")
	}
	if o.MaxExpansion < 0 {
		return errors.New("--max-expansion must be >= 0")
	}
	if o.Width < 0 {
		return errors.New("--width must be >= 0")
	}
	if formats := writers.Formats(); !slices.Contains(formats, o.Output) {
		return fmt.Errorf("invalid --output %q (want %s)", o.Output, strings.Join(formats, " | "))
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}
