package scoring

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogValueScore(t *testing.T) {
	// RTX 4090 at $1599 MSRP pushing 120 tok/s: 75.0 tok/s per $1000.
	score := CatalogValueScore(120, lo.ToPtr(1599))
	require.NotNil(t, score)
	assert.InDelta(t, 75.0, *score, 0.001)

	// Missing or zero price propagates nil, never 0.
	assert.Nil(t, CatalogValueScore(120, nil))
	assert.Nil(t, CatalogValueScore(120, lo.ToPtr(0)))

	// Non-positive throughput propagates nil.
	assert.Nil(t, CatalogValueScore(0, lo.ToPtr(1599)))
}

func TestSystemValueScore(t *testing.T) {
	// 120 tok/s on a $2000 system: 0.060 tok/s per dollar.
	score := SystemValueScore(120, 2000)
	require.NotNil(t, score)
	assert.InDelta(t, 0.06, *score, 0.0001)

	assert.Nil(t, SystemValueScore(120, 0))
	assert.Nil(t, SystemValueScore(0, 2000))
}

func TestEstimateRamCostUsd(t *testing.T) {
	assert.Equal(t, 96, EstimateRamCostUsd(32768))
	assert.Equal(t, 192, EstimateRamCostUsd(65536))
	assert.Equal(t, 0, EstimateRamCostUsd(0))
}

func TestComputeCostsDiscreteSystem(t *testing.T) {
	costs := ComputeCosts(
		lo.ToPtr("NVIDIA RTX 4090"),
		[]GpuLineItem{{Name: "NVIDIA RTX 4090", Quantity: 2}},
		lo.ToPtr("AMD Ryzen 9 7950X"),
		lo.ToPtr(65536),
		150,
	)

	assert.False(t, costs.IsUnifiedSoC)
	require.NotNil(t, costs.GpuMsrpUsd)
	assert.Equal(t, 3198, *costs.GpuMsrpUsd) // 2x $1599
	require.NotNil(t, costs.CpuMsrpUsd)
	assert.Equal(t, 699, *costs.CpuMsrpUsd)
	assert.Equal(t, 192, costs.RamCostUsd)
	require.NotNil(t, costs.TotalSystemCostUsd)
	assert.Equal(t, 3198+699+192, *costs.TotalSystemCostUsd)
	require.NotNil(t, costs.ValueScore)
	assert.InDelta(t, 0.037, *costs.ValueScore, 0.0001)
}

func TestComputeCostsUnifiedSoC(t *testing.T) {
	// Apple Silicon: the chip price covers CPU and unified memory, so CPU
	// cost is nil and RAM cost is zero even when those fields are set.
	costs := ComputeCosts(
		lo.ToPtr("Apple M3 Max"),
		[]GpuLineItem{{Name: "Apple M3 Max", Quantity: 1}},
		lo.ToPtr("Apple M3 Max"),
		lo.ToPtr(131072),
		45,
	)

	assert.True(t, costs.IsUnifiedSoC)
	assert.Nil(t, costs.CpuMsrpUsd)
	assert.Equal(t, 0, costs.RamCostUsd)
	require.NotNil(t, costs.TotalSystemCostUsd)
	assert.Equal(t, 3199, *costs.TotalSystemCostUsd)
}

func TestComputeCostsUnknownGpuPrice(t *testing.T) {
	costs := ComputeCosts(
		lo.ToPtr("Some Custom GPU"),
		[]GpuLineItem{{Name: "Some Custom GPU", Quantity: 1}},
		nil,
		nil,
		100,
	)

	assert.Nil(t, costs.GpuMsrpUsd)
	assert.Nil(t, costs.TotalSystemCostUsd)
	assert.Nil(t, costs.ValueScore)
}
