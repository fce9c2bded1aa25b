// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"motifmark/core/fasta"
	"motifmark/core/gene"
)

// Config controls the annotation pipeline.
type Config struct {
	Threads  int            // number of worker goroutines (>=1)
	Strict   bool           // a bad record aborts the run instead of being skipped
	Warn     func(error)    // receives skipped-record errors when not Strict
	OnRecord func(size int) // called for every record read, with its byte size
}

// ForEachTrack reads every record of seqFiles, annotates it on cfg.Threads
// workers and calls visit with the tracks in input order (file order, then
// record order). A record the annotator rejects is reported to cfg.Warn and
// skipped, or aborts the run when cfg.Strict is set.
//
// A file that cannot be opened does not stop the other files; the first
// error encountered (including context cancellation) is returned.
func ForEachTrack(
	parent context.Context,
	cfg Config,
	seqFiles []string,
	ann Annotator,
	visit func(gene.Track) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var (
		mu       sync.Mutex
		firstErr error
	)
	setErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}
	fail := func(err error) {
		setErr(err)
		cancel()
	}

	type job struct {
		idx, ord int
		rec      fasta.Record
		source   string
	}
	type result struct {
		job
		track gene.Track
		err   error
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan result, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				tr, err := ann.Annotate(j.rec, j.source)
				select {
				case results <- result{job: j, track: tr, err: err}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	// Collector: releases results strictly in input order.
	done := make(chan struct{})
	go func() {
		defer close(done)
		pending := make(map[int]result)
		next := 0
		for r := range results {
			pending[r.idx] = r
			for {
				p, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if ctx.Err() != nil {
					continue
				}
				if p.err != nil {
					err := fmt.Errorf("%s: record %d: %w", p.source, p.ord, p.err)
					if cfg.Strict {
						fail(err)
					} else if cfg.Warn != nil {
						cfg.Warn(err)
					}
					continue
				}
				if err := visit(p.track); err != nil {
					fail(err)
				}
			}
		}
	}()

	// Feed work
	idx := 0
feed:
	for _, fa := range seqFiles {
		ord := 0
		err := fasta.StreamPathCtx(ctx, fa, func(rec fasta.Record) error {
			ord++
			if cfg.OnRecord != nil {
				cfg.OnRecord(rec.Size())
			}
			select {
			case jobs <- job{idx: idx, ord: ord, rec: rec, source: fa}:
				idx++
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		switch {
		case ctx.Err() != nil:
			break feed
		case err != nil:
			// Keep reading other files; first error will be returned.
			setErr(err)
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	<-done

	if parent.Err() != nil {
		return parent.Err()
	}
	return firstErr
}
