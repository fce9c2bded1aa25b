// Package palette assigns a stable color to each motif by catalog index.
package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette is an ordered list of motif colors. Index i of the catalog gets
// Color(i); the list repeats when there are more motifs than colors.
type Palette []color.NRGBA

var defaultColors = Palette{
	{R: 17, G: 214, B: 129, A: 255},  // teal
	{R: 98, G: 93, B: 194, A: 255},   // light purple
	{R: 230, G: 163, B: 18, A: 255},  // brown/orange
	{R: 224, G: 92, B: 209, A: 255},  // orchid
	{R: 212, G: 104, B: 68, A: 255},  // salmon
	{R: 104, G: 107, B: 103, A: 255}, // green
	{R: 217, G: 186, B: 13, A: 255},  // yellow
	{R: 134, G: 27, B: 196, A: 255},  // purple
}

// Default returns a copy of the built-in palette.
func Default() Palette { return append(Palette(nil), defaultColors...) }

// Color returns the color for motif i.
func (p Palette) Color(i int) color.NRGBA {
	if len(p) == 0 {
		return color.NRGBA{A: 255}
	}
	if i < 0 {
		i = -i
	}
	return p[i%len(p)]
}

// WithAlpha returns c with alpha set to a fraction in [0,1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	switch {
	case a < 0:
		a = 0
	case a > 1:
		a = 1
	}
	c.A = uint8(a*255 + 0.5)
	return c
}

// Parse reads "#rrggbb" (or "rrggbb") entries. An empty list yields the
// default palette.
func Parse(hexes []string) (Palette, error) {
	if len(hexes) == 0 {
		return Default(), nil
	}
	out := make(Palette, 0, len(hexes))
	for _, s := range hexes {
		c, err := parseHex(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func parseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return color.NRGBA{}, fmt.Errorf("bad color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad color %q: %v", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// Hex formats c as "#rrggbb".
func Hex(c color.NRGBA) string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }
