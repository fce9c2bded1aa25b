// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"motifmark/core/gene"
	"motifmark/internal/palette"
	"motifmark/internal/pretty"
)

// Options carry everything a writer needs besides the tracks.
type Options struct {
	Sort          bool
	Header        bool
	Pretty        bool
	PrettyOptions pretty.Options
	Patterns      []string // catalog patterns by motif index
	Palette       palette.Palette
}

// TrackWriterFunc consumes tracks until in is closed.
type TrackWriterFunc func(out io.Writer, in <-chan gene.Track, opt Options) error

// Writer registry (format → handler). Register in init() blocks.
var TrackWriters = map[string]TrackWriterFunc{}

// RegisterTrack is idempotent, last wins.
func RegisterTrack(format string, fn TrackWriterFunc) { TrackWriters[format] = fn }

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(TrackWriters))
	for f := range TrackWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// StartTrackWriter spins up a writer goroutine for format. The returned
// channel must be closed by the caller; the error channel yields exactly
// one value once the writer is done. Input is drained after a failure so
// senders never block.
func StartTrackWriter(out io.Writer, format string, opt Options, bufSize int) (chan<- gene.Track, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan gene.Track, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		if fn, ok := TrackWriters[format]; ok {
			err = fn(out, in, opt)
		} else {
			err = fmt.Errorf("unknown format %q (no writer registered)", format)
		}
		for range in {
		}
		errCh <- err
	}()
	return in, errCh
}
