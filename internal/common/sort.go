// internal/common/sort.go
package common

import (
	"sort"

	"motifmark/core/gene"
)

// LessTrack defines a stable order for tracks (for --sort).
func LessTrack(a, b gene.Track) bool {
	if a.SourceFile != b.SourceFile {
		return a.SourceFile < b.SourceFile
	}
	if a.Record.Name() != b.Record.Name() {
		return a.Record.Name() < b.Record.Name()
	}
	return a.Record.Len() < b.Record.Len()
}

func SortTracks(ts []gene.Track) {
	sort.SliceStable(ts, func(i, j int) bool { return LessTrack(ts[i], ts[j]) })
}
