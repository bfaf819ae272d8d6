package core

import (
	"golang.org/x/sync/errgroup"

	"rollup/extent"
)

// Reduce partitions data into record-aligned chunks, runs one Aggregate per
// chunk on its own goroutine, and folds the worker summaries into one once
// every worker has finished. Workers share only the read-only extent; each
// summary has exactly one owner at any time, so the whole pass runs without
// locks. The fold itself is sequential and starts only after the join.
func Reduce(data []byte, chunks int) *Summary {
	if chunks < 1 {
		chunks = 1
	}

	parts := extent.Chunks(data, chunks)
	results := make([]*Summary, len(parts))

	var g errgroup.Group
	for i, part := range parts {
		g.Go(func() error {
			results[i] = Aggregate(part)
			return nil
		})
	}
	_ = g.Wait()

	acc := results[0]
	for _, s := range results[1:] {
		acc.Merge(s)
	}
	return acc
}
