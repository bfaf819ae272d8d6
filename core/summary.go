package core

import (
	"fmt"
	"slices"
	"strings"

	"rollup/stats"
	"rollup/table"
)

const (
	// DefaultCapacity sizes each table at roughly 3-5x the expected number
	// of distinct groups. Odd, so the bit-reversed probe stride is unlikely
	// to share a factor with it and cycle over a subset of the slots.
	DefaultCapacity = 14813

	// ChunksPerCore is the partition multiplier the driver is typically run
	// with. Cutting finer than the core count evens out chunks that parse
	// slower than their neighbours.
	ChunksPerCore = 3
)

// Summary holds the aggregation state for one pass over one slice of the
// input: a fixed-capacity table of running statistics keyed by group name.
type Summary struct {
	data *table.Table[string, stats.Stat]
}

func NewSummary() *Summary {
	return &Summary{
		data: table.New[string, stats.Stat](DefaultCapacity, table.StringHash, stats.NewStat()),
	}
}

// Merge folds other into s group-wise. A group absent on either side behaves
// as the identity statistic, so merge order never changes the result.
func (s *Summary) Merge(other *Summary) {
	for key, stat := range other.data.All() {
		s.data.Emplace(key).MergeWith(&stat)
	}
}

// String renders the summary as {key=min/avg/max,...} with keys in
// lexicographic order. The table iterates in storage order, so the pairs are
// collected and sorted here.
func (s *Summary) String() string {
	type entry struct {
		key  string
		stat stats.Stat
	}

	entries := make([]entry, 0, 512)
	for key, stat := range s.data.All() {
		entries = append(entries, entry{key: key, stat: stat})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return strings.Compare(a.key, b.key)
	})

	var sb strings.Builder
	sb.WriteByte('{')
	for _, e := range entries {
		fmt.Fprintf(&sb, "%s=%s,", e.key, e.stat)
	}
	sb.WriteByte('}')
	return sb.String()
}
