package render

import (
	"image/color"

	"motifmark/core/gene"
	"motifmark/internal/palette"
)

// Panel geometry, in pixels relative to the top of each gene panel.
const (
	panelHeight  = 250
	firstPanelY  = 50
	rightPadding = 50

	nameX        = 10
	nameBaseline = 25
	nameSize     = 35

	intronY      = 100
	intronHeight = 5
	exonY        = 92
	exonHeight   = 20
	motifY       = 75
	motifHeight  = 50

	legendGap      = 300 // from the last panel top to the first legend row
	legendKey      = 15
	legendPad      = 10
	legendTextX    = 30
	legendRow      = 35
	legendTextSize = 15

	motifAlpha      = 0.5
	exonAlpha       = 0.85
	legendTextAlpha = 0.75
)

var ink = color.NRGBA{A: 255}

// Rect is a filled rectangle; (X, Y) is its top-left corner.
type Rect struct {
	X, Y, W, H float64
	Fill       color.NRGBA
}

// Label is a line of text with its baseline starting at (X, Y).
type Label struct {
	X, Y  float64
	Size  float64
	Text  string
	Color color.NRGBA
}

// Scene is a backend-neutral figure. Rects are painted in order, then labels.
type Scene struct {
	Width, Height float64
	Rects         []Rect
	Labels        []Label
}

// Legend names the motifs by catalog index and picks their colors.
type Legend struct {
	Patterns []string
	Palette  palette.Palette
}

// Layout places one panel per track, top to bottom in the given order,
// followed by the legend. The canvas is as wide as the longest gene plus a
// margin, widened if a label would not fit.
func Layout(tracks []gene.Track, lg Legend) Scene {
	if len(lg.Palette) == 0 {
		lg.Palette = palette.Default()
	}
	s := Scene{}
	width := 0.0

	y := float64(firstPanelY)
	for i, tr := range tracks {
		y = float64(firstPanelY + i*panelHeight)
		n := float64(tr.Record.Len())
		width = max(width, n+rightPadding)

		name := tr.Record.Name()
		s.Labels = append(s.Labels, Label{X: nameX, Y: y + nameBaseline, Size: nameSize, Text: name, Color: ink})
		width = max(width, nameX+textWidth(name, nameSize)+legendPad)

		if n > 0 {
			s.Rects = append(s.Rects, Rect{X: 0, Y: y + intronY, W: n, H: intronHeight, Fill: ink})
		}
		for _, f := range tr.Record.Features() {
			if f.Kind != gene.Exon || f.Len() == 0 {
				continue
			}
			s.Rects = append(s.Rects, Rect{
				X: float64(f.Start), Y: y + exonY,
				W: float64(f.Len()), H: exonHeight,
				Fill: palette.WithAlpha(ink, exonAlpha),
			})
		}
		for _, o := range tr.Occurrences {
			s.Rects = append(s.Rects, Rect{
				X: float64(o.Start), Y: y + motifY,
				W: float64(o.Length), H: motifHeight,
				Fill: palette.WithAlpha(lg.Palette.Color(o.Motif), motifAlpha),
			})
		}
	}

	top := y + legendGap
	if len(tracks) == 0 {
		top = firstPanelY + legendPad*2
	}
	s.Labels = append(s.Labels, Label{X: legendPad, Y: top - legendPad*2, Size: legendTextSize, Text: "Legend", Color: ink})
	for i, p := range lg.Patterns {
		c := lg.Palette.Color(i)
		s.Rects = append(s.Rects, Rect{X: legendPad, Y: top, W: legendKey, H: legendKey, Fill: palette.WithAlpha(c, motifAlpha)})
		s.Labels = append(s.Labels, Label{
			X: legendTextX, Y: top + legendKey, Size: legendTextSize,
			Text: p, Color: palette.WithAlpha(c, legendTextAlpha),
		})
		width = max(width, legendTextX+textWidth(p, legendTextSize)+legendPad)
		top += legendRow
	}

	s.Width = max(width, rightPadding)
	s.Height = top + legendPad
	return s
}
