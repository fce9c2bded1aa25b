// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"motifmark/internal/appcore"
	"motifmark/internal/cli"
	"motifmark/internal/config"
	"motifmark/internal/palette"
	"motifmark/internal/pretty"
	"motifmark/internal/version"
	"motifmark/internal/writers"
)

const name = "motifmark"

// flushCode flushes w and maps the result to an exit code.
func flushCode(w *bufio.Writer, stderr io.Writer, code int) int {
	if err := w.Flush(); writers.IsBrokenPipe(err) {
		return appcore.ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitIO
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, nil)
		cli.PrintUsage(fs, outw)
		return flushCode(outw, stderr, appcore.ExitOK)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if errors.Is(err, flag.ErrHelp) {
		cli.PrintUsage(fs, outw)
		return flushCode(outw, stderr, appcore.ExitOK)
	}
	if err == nil && opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flushCode(outw, stderr, appcore.ExitOK)
	}
	if err == nil {
		var s config.Settings
		if s, err = config.Load(opts.ConfigFile); err == nil {
			cli.ApplyConfig(&opts, s)
			err = cli.Validate(&opts)
		}
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		cli.PrintUsage(fs, stderr)
		return appcore.ExitUsage
	}

	cat, err := appcore.LoadCatalog(opts.MotifFile, opts.MaxExpansion)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitUsage
	}
	pal, err := palette.Parse(opts.Colors)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitUsage
	}

	popt := pretty.DefaultOptions
	popt.MaxWidth = opts.Width
	wf := appcore.NewTrackWriterFactory(opts.Output, writers.Options{
		Sort:          opts.Sort,
		Header:        opts.Header,
		Pretty:        opts.Pretty,
		PrettyOptions: popt,
		Patterns:      cat.Patterns(),
		Palette:       pal,
	})
	coreOpts := appcore.Options{
		MotifFile: opts.MotifFile, SeqFiles: opts.SeqFiles, Out: opts.Out,
		MaxExpansion: opts.MaxExpansion, Strict: opts.Strict, Threads: opts.Threads,
		Progress: opts.Progress, Quiet: opts.Quiet, Verbose: opts.Verbose,
		NoMatchExitCode: opts.NoMatchExitCode,
	}
	return appcore.Run(parent, stdout, stderr, coreOpts, cat, wf)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
