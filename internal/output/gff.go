package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"motifmark/core/gene"
)

const gffSource = "motifmark"

// gffEscape percent-encodes the characters GFF3 reserves in column 9.
var gffEscape = strings.NewReplacer(
	"%", "%25", ";", "%3B", "=", "%3D", "&", "%26", ",", "%2C",
	"\t", "%09", "\n", "%0A", "\r", "%0D",
)

// gffSeqID encodes a gene name for column 1, where whitespace is not allowed.
func gffSeqID(name string) string {
	return strings.ReplaceAll(gffEscape.Replace(name), " ", "%20")
}

// gffDoc hands out seqids that are unique within one GFF3 document. A
// reverse record is "<name>.rev"; a name seen before gets ".2", ".3", ...
type gffDoc struct {
	used map[string]bool
}

func newGFFDoc() *gffDoc { return &gffDoc{used: map[string]bool{}} }

func (d *gffDoc) seqID(r *gene.Record) string {
	base := r.Name()
	if r.Reverse() {
		base += ".rev"
	}
	id := base
	for n := 2; d.used[id]; n++ {
		id = fmt.Sprintf("%s.%d", base, n)
	}
	d.used[id] = true
	return id
}

func writeGFFHeader(bw *bufio.Writer) error {
	_, err := bw.WriteString("##gff-version 3\n")
	return err
}

// writeTrackGFF emits one line per feature and per occurrence. Coordinates
// are converted to 1-based closed as GFF expects; empty spans are skipped.
// Feature IDs are prefixed with the track's document-unique seqid.
func writeTrackGFF(bw *bufio.Writer, doc *gffDoc, tr gene.Track, patterns []string) error {
	name := doc.seqID(tr.Record)
	seqid := gffSeqID(name)
	strand := "+"
	if tr.Record.Reverse() {
		strand = "-"
	}
	if n := tr.Record.Len(); n > 0 {
		if _, err := fmt.Fprintf(bw, "##sequence-region %s 1 %d\n", seqid, n); err != nil {
			return err
		}
	}
	counts := map[gene.Kind]int{}
	for _, f := range tr.Record.Features() {
		if f.Len() == 0 {
			continue
		}
		counts[f.Kind]++
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\t%d\t%d\t.\t%s\t.\tID=%s.%s%d\n",
			seqid, gffSource, f.Kind, f.Start+1, f.End, strand,
			gffEscape.Replace(name), f.Kind, counts[f.Kind]); err != nil {
			return err
		}
	}
	for i, o := range tr.Occurrences {
		if _, err := fmt.Fprintf(bw, "%s\t%s\tsequence_motif\t%d\t%d\t.\t%s\t.\tID=%s.motif%d;Name=%s;motif_index=%d\n",
			seqid, gffSource, o.Start+1, o.End(), strand,
			gffEscape.Replace(name), i+1, gffEscape.Replace(patternAt(patterns, o.Motif)), o.Motif); err != nil {
			return err
		}
	}
	return nil
}

// WriteGFF writes a GFF3 document for all tracks.
func WriteGFF(w io.Writer, list []gene.Track, patterns []string) error {
	bw := bufio.NewWriter(w)
	if err := writeGFFHeader(bw); err != nil {
		return err
	}
	doc := newGFFDoc()
	for _, tr := range list {
		if err := writeTrackGFF(bw, doc, tr, patterns); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// StreamGFF writes the GFF3 header and then each track as it arrives.
func StreamGFF(w io.Writer, in <-chan gene.Track, patterns []string) error {
	bw := bufio.NewWriter(w)
	if err := writeGFFHeader(bw); err != nil {
		return err
	}
	doc := newGFFDoc()
	for tr := range in {
		if err := writeTrackGFF(bw, doc, tr, patterns); err != nil {
			return err
		}
	}
	return bw.Flush()
}
