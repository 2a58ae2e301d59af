package scoring

import (
	"math"
	"sort"
)

// Rank converts a zero-based position within a paginated result page to a
// global 1-based rank.
func Rank(offset, index int) int {
	return offset + index + 1
}

// Percentile places a 1-based rank within the full population: rank 1 of N
// scores round((N-1)/N*100), the last rank scores 0. Total is the population
// size before pagination, never the page size.
func Percentile(rank, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(total-rank) / float64(total) * 100))
}

// SortByValueDesc stably sorts entries by a nullable score, highest first,
// with nil scores after every non-nil score. Pagination must be applied
// after this sort so that null entries never float into earlier pages.
func SortByValueDesc[T any](entries []T, score func(T) *float64) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := score(entries[i]), score(entries[j])
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return *a > *b
	})
}
