package render

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// One point per pixel.
const dpi = 72

var (
	fonts    = font.NewCache(liberation.Collection())
	sansFont = font.Font{Typeface: "Liberation", Variant: "Sans"}
)

func face(size float64) font.Face {
	return fonts.Lookup(sansFont, vg.Points(size))
}

// textWidth is the rendered width of s in pixels.
func textWidth(s string, size float64) float64 {
	f := face(size)
	return f.Width(s).Points()
}

// Encode draws s and writes it to w as "png" or "svg".
func Encode(w io.Writer, s Scene, format string) error {
	width, height := vg.Points(max(s.Width, 1)), vg.Points(max(s.Height, 1))
	switch format {
	case "png":
		c := vgimg.NewWith(
			vgimg.UseWH(width, height),
			vgimg.UseDPI(dpi),
			vgimg.UseBackgroundColor(color.White),
		)
		draw(c, s)
		_, err := vgimg.PngCanvas{Canvas: c}.WriteTo(w)
		return err
	case "svg":
		c := vgsvg.New(width, height)
		c.SetColor(color.White)
		c.Fill(rectPath(0, 0, float64(width), float64(height)))
		draw(c, s)
		_, err := c.WriteTo(w)
		return err
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}

// rectPath builds a closed rectangle in vg's bottom-left coordinates.
func rectPath(x0, y0, x1, y1 float64) vg.Path {
	var p vg.Path
	p.Move(vg.Point{X: vg.Length(x0), Y: vg.Length(y0)})
	p.Line(vg.Point{X: vg.Length(x1), Y: vg.Length(y0)})
	p.Line(vg.Point{X: vg.Length(x1), Y: vg.Length(y1)})
	p.Line(vg.Point{X: vg.Length(x0), Y: vg.Length(y1)})
	p.Close()
	return p
}

// draw paints the scene, flipping y since vg's origin is bottom-left.
func draw(c vg.Canvas, s Scene) {
	h := s.Height
	for _, r := range s.Rects {
		c.SetColor(r.Fill)
		c.Fill(rectPath(r.X, h-(r.Y+r.H), r.X+r.W, h-r.Y))
	}
	for _, l := range s.Labels {
		c.SetColor(l.Color)
		c.FillString(face(l.Size), vg.Point{X: vg.Length(l.X), Y: vg.Length(h - l.Y)}, l.Text)
	}
}
