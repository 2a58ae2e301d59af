package scoring

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestRank(t *testing.T) {
	assert.Equal(t, 1, Rank(0, 0))
	assert.Equal(t, 51, Rank(50, 0))
	assert.Equal(t, 60, Rank(50, 9))
}

func TestPercentile(t *testing.T) {
	// Rank 1 of 10 is the 90th percentile, the last rank is the 0th.
	assert.Equal(t, 90, Percentile(1, 10))
	assert.Equal(t, 0, Percentile(10, 10))
	assert.Equal(t, 50, Percentile(5, 10))

	// Single-entity population.
	assert.Equal(t, 0, Percentile(1, 1))

	// Degenerate population never divides by zero.
	assert.Equal(t, 0, Percentile(1, 0))
}

func TestSortByValueDescNullsLast(t *testing.T) {
	type entry struct {
		name  string
		score *float64
	}
	entries := []entry{
		{name: "mid", score: lo.ToPtr(5.0)},
		{name: "no-price-a", score: nil},
		{name: "best", score: lo.ToPtr(9.0)},
		{name: "no-price-b", score: nil},
		{name: "worst", score: lo.ToPtr(1.0)},
	}

	SortByValueDesc(entries, func(e entry) *float64 { return e.score })

	names := lo.Map(entries, func(e entry, _ int) string { return e.name })
	assert.Equal(t, []string{"best", "mid", "worst", "no-price-a", "no-price-b"}, names)
}

func TestSortByValueDescIsStable(t *testing.T) {
	type entry struct {
		name  string
		score *float64
	}
	entries := []entry{
		{name: "first", score: lo.ToPtr(5.0)},
		{name: "second", score: lo.ToPtr(5.0)},
	}

	SortByValueDesc(entries, func(e entry) *float64 { return e.score })

	assert.Equal(t, "first", entries[0].name)
	assert.Equal(t, "second", entries[1].name)
}
