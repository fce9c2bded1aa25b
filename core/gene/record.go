// core/gene/record.go
package gene

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"motifmark/core/motif"
	"motifmark/core/scan"
)

const (
	headerMarker = ">"
	reverseToken = "reverse"
	separators   = " \t_-|(:"
)

var ErrMalformedHeader = errors.New("malformed header")

// ParseHeader extracts the gene name from a FASTA label. One leading '>' is
// dropped if present. A label carrying the reverse token names the text in
// front of it, minus one trailing separator.
func ParseHeader(label string) (name string, reverse bool, err error) {
	rest := strings.TrimPrefix(strings.TrimSpace(label), headerMarker)
	if i := strings.Index(rest, reverseToken); i >= 0 {
		name = rest[:i]
		if n := len(name); n > 0 && strings.IndexByte(separators, name[n-1]) >= 0 {
			name = name[:n-1]
		}
		reverse = true
	} else {
		name = rest
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false, fmt.Errorf("%w: %q has no gene name", ErrMalformedHeader, label)
	}
	return name, reverse, nil
}

// Record is one labeled gene sequence with its case segmentation.
// It is immutable once built.
type Record struct {
	name     string
	label    string
	reverse  bool
	seq      string
	features []Feature
}

// FromLabeledSequence parses label and segments seq. The sequence is kept
// byte for byte, case included.
func FromLabeledSequence(label, seq string) (*Record, error) {
	name, rev, err := ParseHeader(label)
	if err != nil {
		return nil, err
	}
	return &Record{
		name:     name,
		label:    label,
		reverse:  rev,
		seq:      seq,
		features: Segment(seq),
	}, nil
}

func (r *Record) Name() string { return r.name }

// Label returns the header exactly as passed to FromLabeledSequence. Records
// read from FASTA carry the whole header line, leading '>' included, so
// ">>x" labels a gene named ">x".
func (r *Record) Label() string { return r.label }

func (r *Record) Reverse() bool { return r.reverse }
func (r *Record) Seq() string   { return r.seq }
func (r *Record) Len() int      { return len(r.seq) }

// Features returns a copy of the segmentation.
func (r *Record) Features() []Feature { return slices.Clone(r.features) }

// Occurrences scans the record against c. Nothing is cached on the record.
func (r *Record) Occurrences(c *motif.Catalog) []scan.Occurrence {
	return scan.Scan(r.seq, c)
}

// Track bundles a record with its occurrences for renderers and writers.
type Track struct {
	Record      *Record
	Occurrences []scan.Occurrence
	SourceFile  string
}

// Annotate scans the record and returns the renderable track.
func (r *Record) Annotate(c *motif.Catalog, sourceFile string) Track {
	return Track{Record: r, Occurrences: r.Occurrences(c), SourceFile: sourceFile}
}
