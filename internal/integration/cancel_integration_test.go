package integration

import (
	"context"
	"io"
	"strings"
	"testing"

	"motifmark/internal/app"
)

func TestCancelled_Exit130(t *testing.T) {
	dir := t.TempDir()
	motifs := write(t, dir, "m.txt", "ygcy\n")
	fn := write(t, dir, "big.fa", ">g1\n"+strings.Repeat("acgtACGT", 1<<16)+"\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code := app.RunContext(ctx, []string{"-m", motifs, "-o", "text", fn}, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}
