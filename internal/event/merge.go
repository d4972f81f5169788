package event

import "sort"

// MergeStats reports what Merge did with its input.
type MergeStats struct {
	Input      int `json:"input"`
	Invalid    int `json:"invalid"`
	Duplicates int `json:"duplicates"`
	Output     int `json:"output"`
}

// Merge reduces candidate events from every source into the final catalog.
// Candidates missing a title or date are dropped. Candidates sharing an
// identity key are collapsed to the one with the highest completeness score,
// first seen winning ties, and the survivors are sorted by date ascending.
//
// The reduction is order-preserving and replaces records only on a strictly
// higher score, which makes it idempotent: merging a previous output together
// with the same inputs yields that output again.
func Merge(candidates []Event) ([]Event, MergeStats) {
	stats := MergeStats{Input: len(candidates)}

	index := make(map[Key]int, len(candidates))
	merged := make([]Event, 0, len(candidates))
	for _, c := range candidates {
		if !c.Valid() {
			stats.Invalid++
			continue
		}
		k := c.Key()
		if at, seen := index[k]; seen {
			stats.Duplicates++
			if c.Completeness() > merged[at].Completeness() {
				merged[at] = c
			}
			continue
		}
		index[k] = len(merged)
		merged = append(merged, c)
	}

	// Lexical order on YYYY-MM-DD is chronological order.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date < merged[j].Date
	})

	stats.Output = len(merged)
	return merged, stats
}
