// Package render lays annotated genes out as a figure and encodes it.
//
// Layout works in a top-left coordinate space at one unit per base; Encode
// maps the scene onto a gonum vg canvas (PNG via vgimg, SVG via vgsvg).
package render
