package gene

// kindOf classifies by code point only: 'a' (97) and above is intron,
// everything else, including digits and symbols, is exon.
func kindOf(b byte) Kind {
	if b >= 'a' {
		return Intron
	}
	return Exon
}

// Segment splits seq into maximal same-case runs. The result covers
// [0, len(seq)) exactly, in order, and adjacent features differ in kind.
// An empty sequence yields a single empty Exon.
func Segment(seq string) []Feature {
	if seq == "" {
		return []Feature{{Kind: Exon}}
	}
	out := make([]Feature, 0, 8)
	start, cur := 0, kindOf(seq[0])
	for i := 1; i < len(seq); i++ {
		if k := kindOf(seq[i]); k != cur {
			out = append(out, Feature{Kind: cur, Start: start, End: i})
			start, cur = i, k
		}
	}
	return append(out, Feature{Kind: cur, Start: start, End: len(seq)})
}
