package motif

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadPatterns reads a motif definition file: whitespace-separated
// patterns, '#' starts a comment line, "-" reads stdin.
func LoadPatterns(path string) ([]string, error) {
	if path == "-" {
		return ReadPatterns(os.Stdin, "<stdin>")
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return ReadPatterns(fh, path)
}

// ReadPatterns is LoadPatterns over an open reader; name labels errors.
func ReadPatterns(r io.Reader, name string) ([]string, error) {
	var list []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		list = append(list, strings.Fields(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%s: no motifs defined", name)
	}
	return list, nil
}
