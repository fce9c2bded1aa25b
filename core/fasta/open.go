package fasta

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// readCloser pairs a decoding reader with the closers under it.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *readCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openReader handles "-" (stdin) and gzip, detected by magic number (1F 8B)
// or a .gz suffix.
func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(fh)
	sig, _ := br.Peek(2)
	if isGzip(sig) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &readCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return &readCloser{Reader: br, closers: []io.Closer{fh}}, nil
}

func isGzip(sig []byte) bool { return len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b }

// PlainSize returns the byte size of an uncompressed FASTA file, or -1 when
// the size of the decoded stream cannot be known up front (stdin, gzip).
func PlainSize(path string) int64 {
	if path == "-" || strings.HasSuffix(path, ".gz") {
		return -1
	}
	fh, err := os.Open(path)
	if err != nil {
		return -1
	}
	defer func() { _ = fh.Close() }()
	var sig [2]byte
	if n, _ := io.ReadFull(fh, sig[:]); isGzip(sig[:n]) {
		return -1
	}
	st, err := fh.Stat()
	if err != nil {
		return -1
	}
	return st.Size()
}
