// internal/jsonutil/json.go
package jsonutil

import (
	"encoding/json"
	"io"
)

// NewEncoder returns an encoder that keeps '<', '>' and '&' literal.
// FASTA labels and motif patterns are written as the user typed them.
func NewEncoder(w io.Writer, indent string) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc
}

// EncodePretty writes v as two-space indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	return NewEncoder(w, "  ").Encode(v)
}
