// internal/output/rows.go
package output

import (
	"fmt"
	"strings"

	"motifmark/core/gene"
)

// patternAt returns the user-written pattern for motif i, or "?" if the
// index is outside patterns.
func patternAt(patterns []string, i int) string {
	if i >= 0 && i < len(patterns) {
		return patterns[i]
	}
	return "?"
}

// tsvField keeps free text inside one TSV column.
var tsvField = strings.NewReplacer(`\`, `\\`, "\t", `\t`, "\n", `\n`, "\r", `\r`)

// FormatRowsTSV returns the TSV rows for one track (no trailing newlines):
// features in sequence order, then motif occurrences in scan order.
// Coordinates are 0-based half-open. The source path and gene name are
// escaped with tsvField.
func FormatRowsTSV(tr gene.Track, patterns []string) []string {
	name := tsvField.Replace(tr.Record.Name())
	src := tsvField.Replace(tr.SourceFile)
	feats := tr.Record.Features()
	rows := make([]string, 0, len(feats)+len(tr.Occurrences))
	for _, f := range feats {
		rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t-\t-\t%d\t%d\t%d",
			src, name, f.Kind, f.Start, f.End, f.Len()))
	}
	for _, o := range tr.Occurrences {
		rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d",
			src, name, KindMotif, patternAt(patterns, o.Motif), o.Motif,
			o.Start, o.End(), o.Length))
	}
	return rows
}
