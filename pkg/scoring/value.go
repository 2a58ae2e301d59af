// Package scoring derives cost-efficiency metrics and rank/percentile
// positions for aggregated benchmark results.
package scoring

import (
	"math"

	"github.com/BinSquare/inferbench/pkg/catalog"
)

// ramCostPerGbUsd is a rough DDR5 market average used to estimate the memory
// share of a discrete system's cost.
const ramCostPerGbUsd = 3

// EstimateRamCostUsd estimates what the submitter paid for system RAM.
func EstimateRamCostUsd(ramMb int) int {
	ramGb := float64(ramMb) / 1024
	return int(math.Round(ramGb * ramCostPerGbUsd))
}

// CatalogValueScore is throughput per $1000 of GPU MSRP, rounded to one
// decimal. Nil when the price is unknown or the throughput is not positive;
// a missing price must never surface as a zero score.
func CatalogValueScore(avgTokensPerSecond float64, msrpUsd *int) *float64 {
	if msrpUsd == nil || *msrpUsd <= 0 || avgTokensPerSecond <= 0 {
		return nil
	}
	score := math.Round(avgTokensPerSecond/float64(*msrpUsd)*1000*10) / 10
	return &score
}

// SystemValueScore is throughput per $1 of total system cost, rounded to
// three decimals. Nil when the cost is unknown or the throughput is not
// positive.
func SystemValueScore(tokensPerSecond float64, totalSystemCostUsd int) *float64 {
	if totalSystemCostUsd <= 0 || tokensPerSecond <= 0 {
		return nil
	}
	score := math.Round(tokensPerSecond/float64(totalSystemCostUsd)*1000) / 1000
	return &score
}

// GpuLineItem is one GPU row of a submission as seen by the cost calculator.
type GpuLineItem struct {
	Name     string
	Quantity int
}

// CostBreakdown is the per-submission cost decomposition returned alongside
// leaderboard entries.
type CostBreakdown struct {
	IsUnifiedSoC       bool
	GpuMsrpUsd         *int
	CpuMsrpUsd         *int
	RamCostUsd         int
	TotalSystemCostUsd *int
	ValueScore         *float64
}

// ComputeCosts builds the cost breakdown for one submission. Unified SoCs
// (Apple Silicon, AMD Strix Halo) are priced as a single unit: the GPU
// catalog entry already covers CPU and memory, so no separate CPU or RAM
// cost is attributed.
func ComputeCosts(primaryGpuName *string, gpus []GpuLineItem, cpuName *string, ramMb *int, tokensPerSecond float64) CostBreakdown {
	unified := primaryGpuName != nil && catalog.IsUnifiedSoC(*primaryGpuName)

	var gpuCost *int
	if len(gpus) > 0 {
		total := 0
		for _, g := range gpus {
			if price := catalog.GpuMsrpUsd(g.Name); price != nil {
				total += *price * g.Quantity
			}
		}
		if total > 0 {
			gpuCost = &total
		}
	}

	var cpuMsrp *int
	if !unified && cpuName != nil {
		cpuMsrp = catalog.CpuMsrpUsd(*cpuName)
	}

	ramCost := 0
	if !unified && ramMb != nil {
		ramCost = EstimateRamCostUsd(*ramMb)
	}

	totalCost := 0
	if unified {
		if gpuCost != nil {
			totalCost = *gpuCost
		}
	} else {
		if gpuCost != nil {
			totalCost += *gpuCost
		}
		if cpuMsrp != nil {
			totalCost += *cpuMsrp
		}
		totalCost += ramCost
	}

	breakdown := CostBreakdown{
		IsUnifiedSoC: unified,
		GpuMsrpUsd:   gpuCost,
		CpuMsrpUsd:   cpuMsrp,
		RamCostUsd:   ramCost,
		ValueScore:   SystemValueScore(tokensPerSecond, totalCost),
	}
	if totalCost > 0 {
		breakdown.TotalSystemCostUsd = &totalCost
	}
	return breakdown
}
