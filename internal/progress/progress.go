// Package progress reports how many input bytes have been annotated.
package progress

import (
	"io"
	"time"

	"gopkg.in/cheggaaa/pb.v1"

	"motifmark/core/fasta"
)

// Meter wraps a terminal progress bar. A nil *Meter is valid and does nothing.
type Meter struct {
	bar *pb.ProgressBar
}

// Total sums the on-disk size of paths. It returns 0 (counter mode) when
// any input has no knowable size, such as stdin or gzip.
func Total(paths []string) int64 {
	var sum int64
	for _, p := range paths {
		n := fasta.PlainSize(p)
		if n < 0 {
			return 0
		}
		sum += n
	}
	return sum
}

// Start begins drawing to out. It returns nil when disabled.
func Start(out io.Writer, total int64, enabled bool) *Meter {
	if !enabled {
		return nil
	}
	bar := pb.New64(total).SetUnits(pb.U_BYTES)
	bar.Output = out
	bar.ShowSpeed = true
	bar.SetRefreshRate(200 * time.Millisecond)
	bar.Start()
	return &Meter{bar: bar}
}

// Add records n processed bytes.
func (m *Meter) Add(n int) {
	if m == nil {
		return
	}
	m.bar.Add(n)
}

// Finish draws the final state and stops the refresher.
func (m *Meter) Finish() {
	if m == nil {
		return
	}
	m.bar.Finish()
}
