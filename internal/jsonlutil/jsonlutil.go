// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"motifmark/internal/jsonutil"
)

// 64 KiB buffered writers shared across JSONL streams.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Encode writes every value received on in as one JSON line.
//   - encode: fn to encode one value (convert to wire type & enc.Encode)
//   - isBroken: recognizer for broken/closed pipe errors to suppress them
//
// Lines use jsonutil.NewEncoder, so labels are not HTML-escaped. It returns
// on the first encode error without draining in.
func Encode[T any](out io.Writer, in <-chan T, encode func(*json.Encoder, T) error, isBroken func(error) bool) error {
	bw := bwPool.Get().(*bufio.Writer)
	bw.Reset(out)
	defer func() {
		bw.Reset(io.Discard)
		bwPool.Put(bw)
	}()

	enc := jsonutil.NewEncoder(bw, "")
	for v := range in {
		if err := encode(enc, v); err != nil {
			if isBroken != nil && isBroken(err) {
				return nil
			}
			return err
		}
	}
	if err := bw.Flush(); err != nil && (isBroken == nil || !isBroken(err)) {
		return err
	}
	return nil
}
