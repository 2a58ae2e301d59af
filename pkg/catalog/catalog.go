// Package catalog holds the static hardware and model reference data: canonical
// names, capability specs and pricing. It is a read-only lookup table; submission
// statistics are never stored here.
package catalog

import "strings"

type GpuSpec struct {
	Name                string
	Vendor              string
	VramMb              int
	MemoryBandwidthGbps float64
	TdpWatts            int
	Architecture        string
	MsrpUsd             int
	UsedPriceUsd        int
}

type CpuSpec struct {
	Name          string
	Vendor        string
	Cores         int
	Threads       int
	BaseClockMhz  int
	BoostClockMhz int
	L3CacheMb     int
	TdpWatts      int
	Architecture  string
	MsrpUsd       int
}

type ModelSpec struct {
	Name          string
	DisplayName   string
	Vendor        string
	ParametersB   float64
	ContextLength int
}

var (
	gpuByName   map[string]GpuSpec
	cpuByName   map[string]CpuSpec
	modelByName map[string]ModelSpec
)

//nolint:gochecknoinits // Build the lookup maps once, the lists are static.
func init() {
	gpuByName = make(map[string]GpuSpec, len(GpuList))
	for _, g := range GpuList {
		gpuByName[g.Name] = g
	}
	cpuByName = make(map[string]CpuSpec, len(CpuList))
	for _, c := range CpuList {
		cpuByName[c.Name] = c
	}
	modelByName = make(map[string]ModelSpec, len(ModelList))
	for _, m := range ModelList {
		modelByName[m.Name] = m
	}
}

func GpuByName(name string) (GpuSpec, bool) {
	g, ok := gpuByName[name]
	return g, ok
}

func CpuByName(name string) (CpuSpec, bool) {
	c, ok := cpuByName[name]
	return c, ok
}

func ModelByName(name string) (ModelSpec, bool) {
	m, ok := modelByName[name]
	return m, ok
}

// GpuMsrpUsd returns the launch MSRP for a catalog GPU, or nil when the GPU is
// unknown or has no listed price. Callers must be able to tell "no price data"
// apart from a zero price.
func GpuMsrpUsd(name string) *int {
	if g, ok := gpuByName[name]; ok && g.MsrpUsd > 0 {
		msrp := g.MsrpUsd
		return &msrp
	}
	return nil
}

// GpuUsedPriceUsd returns the observed used-market price, or nil when unknown.
func GpuUsedPriceUsd(name string) *int {
	if g, ok := gpuByName[name]; ok && g.UsedPriceUsd > 0 {
		price := g.UsedPriceUsd
		return &price
	}
	return nil
}

func CpuMsrpUsd(name string) *int {
	if c, ok := cpuByName[name]; ok && c.MsrpUsd > 0 {
		msrp := c.MsrpUsd
		return &msrp
	}
	return nil
}

// ModelParametersB returns the parameter count (in billions) for a catalog
// model, or nil when the model is unknown.
func ModelParametersB(name string) *float64 {
	if m, ok := modelByName[name]; ok && m.ParametersB > 0 {
		params := m.ParametersB
		return &params
	}
	return nil
}

// IsUnifiedSoC reports whether a GPU name refers to a unified-memory SoC whose
// catalog price already covers CPU, GPU and memory. Every cost consumer must go
// through this predicate instead of re-checking name prefixes.
func IsUnifiedSoC(gpuName string) bool {
	if gpuName == "" {
		return false
	}
	// Apple Silicon: GPU and CPU are the same chip.
	if strings.HasPrefix(gpuName, "Apple M") {
		return true
	}
	// AMD Strix Halo APUs: priced as a complete unit with soldered memory.
	if strings.HasPrefix(gpuName, "AMD Ryzen AI Max") {
		return true
	}
	return false
}
