package writers

import (
	"encoding/json"
	"io"

	"motifmark/core/gene"
	"motifmark/internal/common"
	"motifmark/internal/jsonlutil"
	"motifmark/internal/output"
	"motifmark/internal/pretty"
	"motifmark/internal/render"
)

func init() {
	RegisterTrack(output.FormatText, writeText)
	RegisterTrack(output.FormatJSON, writeJSON)
	RegisterTrack(output.FormatJSONL, writeJSONL)
	RegisterTrack(output.FormatGFF, writeGFF)
	RegisterTrack(output.FormatPNG, imageWriter(output.FormatPNG))
	RegisterTrack(output.FormatSVG, imageWriter(output.FormatSVG))
}

func collect(in <-chan gene.Track, sorted bool) []gene.Track {
	var buf []gene.Track
	for tr := range in {
		buf = append(buf, tr)
	}
	if sorted {
		common.SortTracks(buf)
	}
	return buf
}

// replay feeds a collected slice back through a closed channel.
func replay(list []gene.Track) <-chan gene.Track {
	ch := make(chan gene.Track, len(list))
	for _, tr := range list {
		ch <- tr
	}
	close(ch)
	return ch
}

func writeText(out io.Writer, in <-chan gene.Track, opt Options) error {
	topt := output.TextOptions{Header: opt.Header, Patterns: opt.Patterns}
	if opt.Pretty {
		popt := opt.PrettyOptions
		topt.Render = func(tr gene.Track) string {
			return pretty.RenderTrackWithOptions(tr, opt.Patterns, popt)
		}
	}
	if opt.Sort {
		return output.WriteText(out, collect(in, true), topt)
	}
	return output.StreamText(out, in, topt)
}

func writeJSON(out io.Writer, in <-chan gene.Track, opt Options) error {
	return output.WriteJSON(out, collect(in, opt.Sort), opt.Patterns)
}

// writeJSONL streams each track as one JSON line (v1).
func writeJSONL(out io.Writer, in <-chan gene.Track, opt Options) error {
	src := in
	if opt.Sort {
		src = replay(collect(in, true))
	}
	return jsonlutil.Encode(out, src,
		func(enc *json.Encoder, tr gene.Track) error {
			return enc.Encode(output.ToAPIGene(tr, opt.Patterns))
		},
		IsBrokenPipe,
	)
}

func writeGFF(out io.Writer, in <-chan gene.Track, opt Options) error {
	if opt.Sort {
		return output.WriteGFF(out, collect(in, true), opt.Patterns)
	}
	return output.StreamGFF(out, in, opt.Patterns)
}

// imageWriter needs every track before it can size the canvas.
func imageWriter(format string) TrackWriterFunc {
	return func(out io.Writer, in <-chan gene.Track, opt Options) error {
		list := collect(in, opt.Sort)
		scene := render.Layout(list, render.Legend{Patterns: opt.Patterns, Palette: opt.Palette})
		return render.Encode(out, scene, format)
	}
}
