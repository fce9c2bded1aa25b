package appcore

import (
	"io"

	"motifmark/core/gene"
	"motifmark/internal/common"
	"motifmark/internal/output"
	"motifmark/internal/writers"
)

// TrackWriterFactory picks where a format writes and starts its writer.
type TrackWriterFactory struct {
	Format string
	Opts   writers.Options
}

func NewTrackWriterFactory(format string, opt writers.Options) TrackWriterFactory {
	return TrackWriterFactory{Format: format, Opts: opt}
}

// Destination returns the output file path, or "" for stdout. Figures
// always go to a file: out if given, else next to the first input.
func (w TrackWriterFactory) Destination(out string, seqFiles []string) string {
	if out != "" || !output.IsImage(w.Format) {
		return out
	}
	first := ""
	if len(seqFiles) > 0 {
		first = seqFiles[0]
	}
	return common.ImagePath(first, w.Format)
}

func (w TrackWriterFactory) Start(out io.Writer, bufSize int) (chan<- gene.Track, <-chan error) {
	return writers.StartTrackWriter(out, w.Format, w.Opts, bufSize)
}
