// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one FASTA entry. Header is the full text after '>' and Seq
// keeps the original letter case.
type Record struct {
	Header string
	Seq    []byte
}

// Size approximates the bytes a record occupied on disk.
func (r Record) Size() int { return len(r.Header) + len(r.Seq) + 2 }

// StreamReaderCtx parses FASTA from r and calls emit once per record.
// Sequence lines are trimmed and concatenated; a lone '>' still yields a
// record so header validation stays with the caller.
//
// Cancellation via ctx is honored between lines. Returning a non-nil error
// from emit stops the scan and is returned as-is.
func StreamReaderCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		header string
		open   bool
		seq    = make([]byte, 0, 1<<16)
	)

	flush := func() error {
		if !open {
			return nil
		}
		return emit(Record{Header: header, Seq: append([]byte(nil), seq...)})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			header = string(bytes.TrimSpace(line[1:]))
			open = true
			seq = seq[:0]
			continue
		}
		if !open {
			return fmt.Errorf("fasta: sequence data before first header")
		}
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// StreamPathCtx opens path ("-" for stdin, gzip detected) and streams its
// records to emit.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	return StreamReaderCtx(ctx, rc, emit)
}
