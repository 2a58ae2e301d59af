package ingest

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BinSquare/inferbench/internal/payload"
	"github.com/BinSquare/inferbench/pkg/alias"
	"github.com/BinSquare/inferbench/pkg/plausibility"
)

func newTestIngestor() *Ingestor {
	return &Ingestor{
		checker:       plausibility.NewChecker(),
		modelResolver: alias.NewModelResolver(),
	}
}

func submissionReq(gpus []payload.GpuEntryReq) *payload.SubmissionReq {
	return &payload.SubmissionReq{
		Hardware: payload.HardwareReq{
			Os:   "Linux",
			Arch: "x86_64",
			Gpus: gpus,
		},
		Benchmark: payload.BenchmarkReq{
			Model:   "meta-llama/Llama-3.1-8B-Instruct",
			Backend: "llama.cpp",
		},
		Results: payload.ResultsReq{
			TokensPerSecond: lo.ToPtr(52.5),
		},
	}
}

func TestAssembleDerivedTotals(t *testing.T) {
	ing := newTestIngestor()

	req := submissionReq([]payload.GpuEntryReq{
		{Name: "NVIDIA RTX 3090", Vendor: "NVIDIA", VramMb: lo.ToPtr(24576), Quantity: 2},
		{Name: "NVIDIA RTX 4090", Vendor: "NVIDIA", VramMb: lo.ToPtr(24576), Quantity: 1},
	})
	req.Benchmark.Quantization = lo.ToPtr("Q4_K_M")

	sub, flag := ing.assemble(req)

	assert.Equal(t, 3, sub.TotalGpuCount)
	assert.Equal(t, 24576*3, sub.TotalVramMb)
	require.NotNil(t, sub.PrimaryGpuName)
	assert.Equal(t, "NVIDIA RTX 3090", *sub.PrimaryGpuName)
	assert.Len(t, sub.Gpus, 2)
	assert.Equal(t, 2, sub.Gpus[0].Quantity)
	assert.Equal(t, plausibility.Plausible, flag.Verdict)
	assert.Equal(t, 0, sub.QuestionCount)
	assert.Empty(t, sub.Questions)
	assert.Equal(t, 1, sub.BatchSize)
}

func TestAssembleRepeatedGpuEntries(t *testing.T) {
	ing := newTestIngestor()

	// The same GPU listed twice sums like a quantity of two.
	req := submissionReq([]payload.GpuEntryReq{
		{Name: "NVIDIA RTX 4090", Vendor: "NVIDIA", VramMb: lo.ToPtr(24576), Quantity: 1},
		{Name: "NVIDIA RTX 4090", Vendor: "NVIDIA", VramMb: lo.ToPtr(24576), Quantity: 1},
	})
	req.Benchmark.Quantization = lo.ToPtr("Q4_K_M")

	sub, _ := ing.assemble(req)

	assert.Equal(t, 2, sub.TotalGpuCount)
	assert.Equal(t, 24576*2, sub.TotalVramMb)
	require.NotNil(t, sub.PrimaryGpuName)
	assert.Equal(t, "NVIDIA RTX 4090", *sub.PrimaryGpuName)
	assert.Len(t, sub.Gpus, 2)
}

func TestAssembleFlagsImplausibleVram(t *testing.T) {
	ing := newTestIngestor()

	req := submissionReq([]payload.GpuEntryReq{
		{Name: "NVIDIA RTX 3070", Vendor: "NVIDIA", VramMb: lo.ToPtr(8192), Quantity: 1},
	})
	req.Benchmark.Model = "meta-llama/Llama-3.1-70B-Instruct"
	req.Benchmark.ModelParametersB = lo.ToPtr(70.0)
	req.Benchmark.Quantization = lo.ToPtr("FP16")

	sub, flag := ing.assemble(req)

	assert.Equal(t, plausibility.VeryUnlikely, flag.Verdict)
	assert.Equal(t, 1, sub.QuestionCount)
	require.Len(t, sub.Questions, 1)
	assert.Equal(t, flag.Reason, sub.Questions[0].Reason)
	assert.Contains(t, sub.Questions[0].Reason, "CPU offload")
}

func TestAssembleParameterFallbackFromCatalog(t *testing.T) {
	ing := newTestIngestor()

	// No explicit parameter count: the alias resolves "qwen2.5:7b" to its
	// catalog entry, whose size makes FP16 weights impossible on 4GB.
	req := submissionReq([]payload.GpuEntryReq{
		{Name: "NVIDIA RTX 3050", Vendor: "NVIDIA", VramMb: lo.ToPtr(4096), Quantity: 1},
	})
	req.Benchmark.Model = "qwen2.5:7b"

	sub, flag := ing.assemble(req)

	assert.NotEqual(t, plausibility.Plausible, flag.Verdict)
	assert.Equal(t, 1, sub.QuestionCount)
	// The stored parameter count stays nil; only the submitter's explicit
	// value is persisted.
	assert.Nil(t, sub.ModelParametersB)
}

func TestAssembleCpuOnlySkipsVramCheck(t *testing.T) {
	ing := newTestIngestor()

	req := submissionReq(nil)
	req.Hardware.Cpu = &payload.CpuReq{
		Model:   "AMD Ryzen 9 7950X",
		Vendor:  "AMD",
		Cores:   16,
		Threads: 32,
	}
	req.Benchmark.ModelParametersB = lo.ToPtr(70.0)

	sub, flag := ing.assemble(req)

	assert.Equal(t, 0, sub.TotalGpuCount)
	assert.Equal(t, 0, sub.TotalVramMb)
	assert.Nil(t, sub.PrimaryGpuName)
	require.NotNil(t, sub.CpuName)
	assert.Equal(t, "AMD Ryzen 9 7950X", *sub.CpuName)
	assert.Equal(t, plausibility.Plausible, flag.Verdict)
	assert.Equal(t, 0, sub.QuestionCount)
}
