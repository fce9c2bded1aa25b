// internal/output/text.go
package output

import (
	"bufio"
	"io"

	"motifmark/core/gene"
)

// TextOptions control the TSV writer.
type TextOptions struct {
	Header   bool
	Patterns []string                // catalog patterns by motif index
	Render   func(gene.Track) string // optional block appended after each track's rows
}

func writeTrackTSV(bw *bufio.Writer, tr gene.Track, opt TextOptions) error {
	for _, row := range FormatRowsTSV(tr, opt.Patterns) {
		if _, err := bw.WriteString(row); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	if opt.Render != nil {
		if _, err := bw.WriteString(opt.Render(tr)); err != nil {
			return err
		}
	}
	return nil
}

// WriteText writes all tracks as TSV.
func WriteText(w io.Writer, list []gene.Track, opt TextOptions) error {
	bw := bufio.NewWriter(w)
	if opt.Header {
		if _, err := bw.WriteString(TSVHeader + "\n"); err != nil {
			return err
		}
	}
	for _, tr := range list {
		if err := writeTrackTSV(bw, tr, opt); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// StreamText writes tracks as they arrive on in, flushing after each one so
// downstream readers see complete genes.
func StreamText(w io.Writer, in <-chan gene.Track, opt TextOptions) error {
	bw := bufio.NewWriter(w)
	if opt.Header {
		if _, err := bw.WriteString(TSVHeader + "\n"); err != nil {
			return err
		}
	}
	for tr := range in {
		if err := writeTrackTSV(bw, tr, opt); err != nil {
			return err
		}
		if err := bw.Flush(); err != nil {
			return err
		}
	}
	return bw.Flush()
}
