package ranking

import "sort"

// Scored is anything carrying a relevance score.
type Scored interface {
	RelevanceScore() int
}

// Rank returns a copy of entries ordered by descending relevance score.
// Entries with equal scores keep their input order.
func Rank[T Scored](entries []T) []T {
	ranked := make([]T, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RelevanceScore() > ranked[j].RelevanceScore()
	})

	return ranked
}
