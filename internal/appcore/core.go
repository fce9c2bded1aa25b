// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"motifmark/core/gene"
	"motifmark/core/motif"
	"motifmark/core/scan"
	"motifmark/internal/cmdutil"
	"motifmark/internal/palette"
	"motifmark/internal/pipeline"
	"motifmark/internal/progress"
	"motifmark/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitIO       = 3
	ExitCanceled = 130
)

type Options struct {
	MotifFile    string
	SeqFiles     []string
	Out          string
	MaxExpansion int
	Strict       bool

	Threads int

	Progress        bool
	Quiet           bool
	Verbose         bool
	NoMatchExitCode int
}

// LoadCatalog reads and expands the motif file.
func LoadCatalog(path string, maxExpansion int) (*motif.Catalog, error) {
	patterns, err := motif.LoadPatterns(path)
	if err != nil {
		return nil, err
	}
	return motif.Build(patterns, motif.NewExpander(motif.DefaultTable(), maxExpansion))
}

// Run annotates every gene in o.SeqFiles against cat and streams the tracks
// to the writer wf starts. It returns the process exit code.
//
// A file destination is written to a temporary sibling and renamed into
// place only when the run succeeds; a failed or cancelled run leaves no
// partial figure or table behind.
func Run(
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	cat *motif.Catalog,
	wf TrackWriterFactory,
) int {
	dst := stdout
	path := wf.Destination(o.Out, o.SeqFiles)
	var fh *os.File
	committed := false
	if path != "" {
		var err error
		fh, err = os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitIO
		}
		defer func() {
			if !committed {
				_ = fh.Close()
				_ = os.Remove(fh.Name())
			}
		}()
		dst = fh
	}
	outw := bufio.NewWriter(dst)

	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}
	cmdutil.Infof(stderr, o.Verbose, "motifs: %d (longest %d bp), threads: %d", cat.Len(), cat.MaxLength(), thr)

	meter := progress.Start(stderr, progress.Total(o.SeqFiles), o.Progress && !o.Quiet)
	inCh, writeErr := wf.Start(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	counts := make([]int, cat.Len())
	genes, perr := cmdutil.RunStream[gene.Track](
		ctx,
		pipeline.Config{
			Threads:  thr,
			Strict:   o.Strict,
			Warn:     func(err error) { cmdutil.Warnf(stderr, o.Quiet, "%v", err) },
			OnRecord: meter.Add,
		},
		o.SeqFiles,
		pipeline.CatalogAnnotator{Catalog: cat},
		func(tr gene.Track) (bool, gene.Track, error) {
			for i, n := range scan.Tally(tr.Occurrences, len(counts)) {
				counts[i] += n
			}
			return true, tr, nil
		},
		func(tr gene.Track) error {
			select {
			case inCh <- tr:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)
	meter.Finish()

	if werr := <-writeErr; fh == nil && writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return ExitIO
	}
	if e := outw.Flush(); fh == nil && writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return ExitIO
	}
	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return ExitCanceled
		}
		fmt.Fprintln(stderr, perr)
		if errors.Is(perr, gene.ErrMalformedHeader) {
			return ExitUsage
		}
		return ExitIO
	}
	if fh != nil {
		if code := commit(fh, path, stderr); code != ExitOK {
			return code
		}
		committed = true
		cmdutil.Infof(stderr, o.Verbose, "wrote %s", path)
	}

	hits := 0
	for _, n := range counts {
		hits += n
	}
	cmdutil.Infof(stderr, o.Verbose, "genes: %d, motif hits: %d", genes, hits)
	if o.Verbose {
		patterns := cat.Patterns()
		for i, n := range counts {
			cmdutil.Infof(stderr, true, "  motif %d %s (%s): %d", i+1, patterns[i], palette.Hex(wf.Opts.Palette.Color(i)), n)
		}
	}
	if hits == 0 {
		return o.NoMatchExitCode
	}
	return ExitOK
}

// commit closes the temporary output and moves it to path.
func commit(fh *os.File, path string, stderr io.Writer) int {
	err := fh.Chmod(0o644)
	if e := fh.Close(); err == nil {
		err = e
	}
	if err == nil {
		err = os.Rename(fh.Name(), path)
	}
	if err != nil {
		_ = os.Remove(fh.Name())
		fmt.Fprintln(stderr, err)
		return ExitIO
	}
	return ExitOK
}
