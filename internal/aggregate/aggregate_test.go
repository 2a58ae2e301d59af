package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BinSquare/inferbench/pkg/alias"
)

func TestMergeRowsCombinesAliasBuckets(t *testing.T) {
	resolver := alias.NewGpuResolver()
	rows := []row{
		{Name: "NVIDIA RTX 4090", SubmissionCount: 3, SumTokensPerSecond: 390},
		{Name: "NVIDIA GeForce RTX 4090", SubmissionCount: 1, SumTokensPerSecond: 90},
	}

	stats := mergeRows(rows, resolver.Canonical)

	require.Len(t, stats, 1)
	assert.Equal(t, "NVIDIA RTX 4090", stats[0].Name)
	assert.Equal(t, int64(4), stats[0].SubmissionCount)
	// The merged average is sum/count over all variants, not the average
	// of the per-variant averages (which would be (130+90)/2 = 110).
	assert.InDelta(t, 120.0, stats[0].AvgTokensPerSecond, 0.0001)
}

func TestMergeRowsKeepsDistinctEntitiesApart(t *testing.T) {
	resolver := alias.NewGpuResolver()
	rows := []row{
		{Name: "NVIDIA RTX 4090", SubmissionCount: 2, SumTokensPerSecond: 240},
		{Name: "AMD RX 7900 XTX", SubmissionCount: 1, SumTokensPerSecond: 80},
	}

	stats := mergeRows(rows, resolver.Canonical)

	require.Len(t, stats, 2)
	assert.Equal(t, "NVIDIA RTX 4090", stats[0].Name)
	assert.Equal(t, "AMD RX 7900 XTX", stats[1].Name)
}

func TestMergeRowsIdentityResolver(t *testing.T) {
	rows := []row{
		{Name: "AMD Ryzen 9 7950X", SubmissionCount: 5, SumTokensPerSecond: 250},
	}

	stats := mergeRows(rows, func(s string) string { return s })

	require.Len(t, stats, 1)
	assert.InDelta(t, 50.0, stats[0].AvgTokensPerSecond, 0.0001)
}

func TestExcluded(t *testing.T) {
	assert.True(t, excluded(""))
	assert.True(t, excluded("unknown"))
	assert.True(t, excluded("Unknown"))
	assert.False(t, excluded("NVIDIA RTX 4090"))
}
