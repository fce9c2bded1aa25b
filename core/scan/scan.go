// core/scan/scan.go
package scan

import "motifmark/core/motif"

// Occurrence is a motif hit: catalog index, 0-based start and the motif's
// fixed length.
type Occurrence struct {
	Motif  int
	Start  int
	Length int
}

func (o Occurrence) End() int { return o.Start + o.Length }

// Scan tests every window of seq against every motif in c, positions outer
// and motifs inner, so results come out ordered by (Start, Motif).
// Windows that would run past the end are skipped. Overlapping hits are
// all reported.
//
// This is a plain brute-force scan; catalogs are small and motifs short.
func Scan(seq string, c *motif.Catalog) []Occurrence {
	n := c.Len()
	if n == 0 || len(seq) == 0 {
		return nil
	}
	motifs := make([]motif.Motif, n)
	for j := range motifs {
		motifs[j], _ = c.At(j)
	}
	lower := lowerASCII(seq)

	var out []Occurrence
	for i := 0; i < len(lower); i++ {
		for j, m := range motifs {
			end := i + m.Length
			if m.Length == 0 || end > len(lower) {
				continue
			}
			if m.Contains(lower[i:end]) {
				out = append(out, Occurrence{Motif: j, Start: i, Length: m.Length})
			}
		}
	}
	return out
}

// Tally counts occurrences per motif index for a catalog of n motifs.
func Tally(occ []Occurrence, n int) []int {
	counts := make([]int, n)
	for _, o := range occ {
		if o.Motif >= 0 && o.Motif < n {
			counts[o.Motif]++
		}
	}
	return counts
}

// lowerASCII folds A-Z only so byte offsets match the input.
func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
