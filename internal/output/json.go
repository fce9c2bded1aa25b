// internal/output/json.go
package output

import (
	"io"

	"motifmark/core/gene"
	"motifmark/internal/jsonutil"
	"motifmark/pkg/api"
)

// ToAPIGene converts a track to the stable wire schema (v1).
func ToAPIGene(tr gene.Track, patterns []string) api.GeneV1 {
	feats := tr.Record.Features()
	v := api.GeneV1{
		Name:        tr.Record.Name(),
		Label:       tr.Record.Label(),
		Reverse:     tr.Record.Reverse(),
		Length:      tr.Record.Len(),
		SourceFile:  tr.SourceFile,
		Features:    make([]api.FeatureV1, 0, len(feats)),
		Occurrences: make([]api.OccurrenceV1, 0, len(tr.Occurrences)),
	}
	for _, f := range feats {
		v.Features = append(v.Features, api.FeatureV1{Kind: f.Kind.String(), Start: f.Start, End: f.End})
	}
	for _, o := range tr.Occurrences {
		v.Occurrences = append(v.Occurrences, api.OccurrenceV1{
			Motif:   o.Motif,
			Pattern: patternAt(patterns, o.Motif),
			Start:   o.Start,
			End:     o.End(),
			Length:  o.Length,
		})
	}
	return v
}

func toAPIGenes(list []gene.Track, patterns []string) []api.GeneV1 {
	out := make([]api.GeneV1, 0, len(list))
	for _, tr := range list {
		out = append(out, ToAPIGene(tr, patterns))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 genes (pretty-indented).
func WriteJSON(w io.Writer, list []gene.Track, patterns []string) error {
	return jsonutil.EncodePretty(w, toAPIGenes(list, patterns))
}
