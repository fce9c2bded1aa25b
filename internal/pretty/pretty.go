package pretty

import (
	"fmt"
	"strings"

	"motifmark/core/gene"
)

// Options control the ASCII rendering.
type Options struct {
	// Track width cap in columns. If <=0, use default (80). Shorter genes
	// print one column per base.
	MaxWidth int

	// Glyphs
	ExonGlyph      byte // default '='
	IntronGlyph    byte // default '-'
	CollisionGlyph byte // default '*', where two motifs share a column
}

// DefaultOptions is the look used by --pretty.
var DefaultOptions = Options{
	MaxWidth:       80,
	ExonGlyph:      '=',
	IntronGlyph:    '-',
	CollisionGlyph: '*',
}

const (
	linePrefix = "# "
	motifMarks = "123456789abcdefghijklmnopqrstuvwxyz"
)

// Mark returns the single-character tag for motif i.
func Mark(i int) byte {
	if i < 0 {
		return '?'
	}
	return motifMarks[i%len(motifMarks)]
}

func (o Options) withDefaults() Options {
	if o.MaxWidth <= 0 {
		o.MaxWidth = DefaultOptions.MaxWidth
	}
	if o.ExonGlyph == 0 {
		o.ExonGlyph = DefaultOptions.ExonGlyph
	}
	if o.IntronGlyph == 0 {
		o.IntronGlyph = DefaultOptions.IntronGlyph
	}
	if o.CollisionGlyph == 0 {
		o.CollisionGlyph = DefaultOptions.CollisionGlyph
	}
	return o
}

// scaleCol maps a base offset into a track of cols columns.
func scaleCol(pos, n, cols int) int {
	if n <= 0 || cols <= 0 {
		return 0
	}
	if pos < 0 {
		pos = 0
	}
	if pos > n-1 {
		pos = n - 1
	}
	return pos * cols / n
}

// RenderTrackWithOptions prints a gene as three comment lines: the
// exon/intron track, the motif row and a legend for the motifs present.
func RenderTrackWithOptions(tr gene.Track, patterns []string, opt Options) string {
	opt = opt.withDefaults()
	n := tr.Record.Len()
	cols := min(n, opt.MaxWidth)

	var b strings.Builder
	strand := ""
	if tr.Record.Reverse() {
		strand = ", reverse"
	}
	fmt.Fprintf(&b, "%s%s (%d bp, %d motif hits%s)\n", linePrefix, tr.Record.Name(), n, len(tr.Occurrences), strand)
	if cols == 0 {
		b.WriteString("#\n")
		return b.String()
	}

	track := make([]byte, cols)
	for _, f := range tr.Record.Features() {
		if f.Len() == 0 {
			continue
		}
		g := opt.ExonGlyph
		if f.Kind == gene.Intron {
			g = opt.IntronGlyph
		}
		for c := scaleCol(f.Start, n, cols); c <= scaleCol(f.End-1, n, cols); c++ {
			// a column shared by an exon and an intron shows the exon
			if track[c] != opt.ExonGlyph {
				track[c] = g
			}
		}
	}

	motifs := []byte(strings.Repeat(" ", cols))
	seen := map[int]bool{}
	var order []int
	for _, o := range tr.Occurrences {
		m := Mark(o.Motif)
		for c := scaleCol(o.Start, n, cols); c <= scaleCol(o.End()-1, n, cols); c++ {
			switch motifs[c] {
			case ' ', m:
				motifs[c] = m
			default:
				motifs[c] = opt.CollisionGlyph
			}
		}
		if !seen[o.Motif] {
			seen[o.Motif] = true
			order = append(order, o.Motif)
		}
	}

	fmt.Fprintf(&b, "%s%s\n", linePrefix, track)
	if len(order) > 0 {
		fmt.Fprintf(&b, "%s%s\n", linePrefix, strings.TrimRight(string(motifs), " "))
		legend := make([]string, 0, len(order))
		for _, i := range order {
			p := "?"
			if i >= 0 && i < len(patterns) {
				p = patterns[i]
			}
			legend = append(legend, fmt.Sprintf("%c=%s", Mark(i), p))
		}
		fmt.Fprintf(&b, "%s%s\n", linePrefix, strings.Join(legend, " "))
	}
	b.WriteString("#\n")
	return b.String()
}

// RenderTrack uses DefaultOptions.
func RenderTrack(tr gene.Track, patterns []string) string {
	return RenderTrackWithOptions(tr, patterns, DefaultOptions)
}
