package output

// Output format names accepted by -o/--output.
const (
	FormatPNG   = "png"
	FormatSVG   = "svg"
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatGFF   = "gff"
)

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "source_file\tsequence_id\tkind\tlabel\tmotif_index\tstart\tend\tlength"

// KindMotif tags occurrence rows in TSV output.
const KindMotif = "motif"

// IsImage reports whether format produces a figure rather than a stream.
func IsImage(format string) bool { return format == FormatPNG || format == FormatSVG }
