package cmdutil

import (
	"context"

	"motifmark/core/gene"
	"motifmark/internal/pipeline"
)

// RunStream runs the shared pipeline, applies a visitor, and streams results via send.
// It returns the number of kept outputs and the first error encountered.
func RunStream[T any](
	ctx context.Context,
	cfg pipeline.Config,
	seqFiles []string,
	ann pipeline.Annotator,
	visit func(gene.Track) (bool, T, error),
	send func(T) error,
) (int, error) {
	total := 0
	err := pipeline.ForEachTrack(ctx, cfg, seqFiles, ann, func(tr gene.Track) error {
		keep, out, vErr := visit(tr)
		if vErr != nil {
			return vErr
		}
		if !keep {
			return nil
		}
		if err := send(out); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, err
}
