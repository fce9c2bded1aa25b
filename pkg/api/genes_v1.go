// pkg/api/genes_v1.go
package api

// GeneV1 is the stable JSON/JSONL schema for one annotated gene.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type GeneV1 struct {
	Name        string         `json:"name"`
	Label       string         `json:"label"`
	Reverse     bool           `json:"reverse,omitempty"`
	Length      int            `json:"length"`
	SourceFile  string         `json:"source_file,omitempty"`
	Features    []FeatureV1    `json:"features"`
	Occurrences []OccurrenceV1 `json:"occurrences"`
}

// FeatureV1 is a half-open exon or intron span.
type FeatureV1 struct {
	Kind  string `json:"kind"` // "exon" | "intron"
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// OccurrenceV1 is one motif hit. Motif is the 0-based catalog index;
// Pattern is the motif as the user wrote it.
type OccurrenceV1 struct {
	Motif   int    `json:"motif"`
	Pattern string `json:"pattern"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Length  int    `json:"length"`
}
