package common

import (
	"path/filepath"
	"strings"
)

// ImagePath derives the figure path for an input: the input path with its
// extension (and a trailing .gz) replaced by "."+ext. Stdin ("-" or "")
// maps to "motifmark."+ext in the working directory.
func ImagePath(input, ext string) string {
	if input == "" || input == "-" {
		return "motifmark." + ext
	}
	base := strings.TrimSuffix(input, ".gz")
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + "." + ext
}
