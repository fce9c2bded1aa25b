// internal/pipeline/annotator.go
package pipeline

import (
	"motifmark/core/fasta"
	"motifmark/core/gene"
	"motifmark/core/motif"
)

// Annotator is the minimal capability the pipeline needs.
// Any implementation (including fakes in tests) can satisfy this.
type Annotator interface {
	Annotate(rec fasta.Record, sourceFile string) (gene.Track, error)
}

// CatalogAnnotator builds a gene record and scans it against a shared,
// read-only catalog. The record's label is the full header line, '>'
// included.
type CatalogAnnotator struct {
	Catalog *motif.Catalog
}

func (a CatalogAnnotator) Annotate(rec fasta.Record, sourceFile string) (gene.Track, error) {
	r, err := gene.FromLabeledSequence(">"+rec.Header, string(rec.Seq))
	if err != nil {
		return gene.Track{}, err
	}
	return r.Annotate(a.Catalog, sourceFile), nil
}
