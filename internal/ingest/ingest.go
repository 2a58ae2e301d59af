// Package ingest persists validated submissions, computing derived totals
// and recording plausibility flags as review items.
package ingest

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BinSquare/inferbench/dao/model"
	"github.com/BinSquare/inferbench/internal/payload"
	"github.com/BinSquare/inferbench/pkg/alias"
	"github.com/BinSquare/inferbench/pkg/catalog"
	"github.com/BinSquare/inferbench/pkg/config"
	"github.com/BinSquare/inferbench/pkg/metrics"
	"github.com/BinSquare/inferbench/pkg/plausibility"
)

type Ingestor struct {
	db            *gorm.DB
	checker       *plausibility.Checker
	modelResolver *alias.Resolver
}

func NewIngestor(db *gorm.DB) *Ingestor {
	checker := plausibility.NewChecker()
	cfg := config.GetConfig().Plausibility
	if cfg.OverheadMultiplier > 0 {
		checker.OverheadMultiplier = cfg.OverheadMultiplier
	}
	if cfg.UnlikelyRatio > 0 {
		checker.UnlikelyRatio = cfg.UnlikelyRatio
	}
	if cfg.VeryUnlikelyRatio > 0 {
		checker.VeryUnlikelyRatio = cfg.VeryUnlikelyRatio
	}
	if cfg.DefaultBytesPerParam > 0 {
		checker.DefaultBytesPerParam = cfg.DefaultBytesPerParam
	}
	return &Ingestor{
		db:            db,
		checker:       checker,
		modelResolver: alias.NewModelResolver(),
	}
}

// Result is what the submitter gets back: the id, the derived totals and
// whether the plausibility check raised a flag.
type Result struct {
	ID            uuid.UUID
	TotalGpuCount int
	TotalVramMb   int
	Flagged       bool
	FlagReason    string
}

// assemble derives the GPU totals, resolves the model parameter count, runs
// the plausibility check and builds the row ready for insert. It touches no
// database; Ingest persists the result.
func (i *Ingestor) assemble(req *payload.SubmissionReq) (model.Submission, plausibility.Result) {
	totalGpuCount := 0
	totalVramMb := 0
	var primaryGpuName *string
	for idx, gpu := range req.Hardware.Gpus {
		totalGpuCount += gpu.Quantity
		totalVramMb += *gpu.VramMb * gpu.Quantity
		if idx == 0 {
			name := gpu.Name
			primaryGpuName = &name
		}
	}

	// Parameter count from the payload, falling back to the catalog entry
	// for the canonical model name.
	paramsB := req.Benchmark.ModelParametersB
	if paramsB == nil {
		paramsB = catalog.ModelParametersB(i.modelResolver.Canonical(req.Benchmark.Model))
	}

	var flag plausibility.Result
	flag.Verdict = plausibility.Plausible
	if totalVramMb > 0 && paramsB != nil {
		quantization := ""
		if req.Benchmark.Quantization != nil {
			quantization = *req.Benchmark.Quantization
		}
		flag = i.checker.CheckVram(totalVramMb, *paramsB, quantization)
	}

	sub := model.Submission{
		TotalGpuCount:  totalGpuCount,
		TotalVramMb:    totalVramMb,
		PrimaryGpuName: primaryGpuName,

		Os:   req.Hardware.Os,
		Arch: req.Hardware.Arch,

		Model:            req.Benchmark.Model,
		ModelParametersB: req.Benchmark.ModelParametersB,
		Quantization:     req.Benchmark.Quantization,
		ContextLength:    req.Benchmark.ContextLength,
		Backend:          req.Benchmark.Backend,
		BackendVersion:   req.Benchmark.BackendVersion,

		PromptTokens:     req.Benchmark.PromptTokens,
		GenerationTokens: req.Benchmark.GenerationTokens,
		BatchSize:        1,

		TokensPerSecond:        *req.Results.TokensPerSecond,
		PrefillTokensPerSecond: req.Results.PrefillTokensPerSecond,
		TimeToFirstTokenMs:     req.Results.TimeToFirstTokenMs,
		VramUsedMb:             req.Results.VramUsedMb,
		RamUsedMb:              req.Results.RamUsedMb,
		PowerDrawWatts:         req.Results.PowerDrawWatts,

		SourceURL: req.SourceURL,
	}
	if req.Benchmark.BatchSize != nil {
		sub.BatchSize = *req.Benchmark.BatchSize
	}
	if cpu := req.Hardware.Cpu; cpu != nil {
		sub.CpuName = &cpu.Model
		sub.CpuVendor = &cpu.Vendor
		sub.CpuCores = &cpu.Cores
		sub.CpuThreads = &cpu.Threads
	}
	if mem := req.Hardware.Memory; mem != nil {
		sub.RamMb = &mem.TotalMb
		sub.RamSpeedMhz = mem.SpeedMhz
		sub.RamType = mem.Type
	}
	if lat := req.Results.Latency; lat != nil {
		sub.LatencyP50Ms = lat.P50Ms
		sub.LatencyP90Ms = lat.P90Ms
		sub.LatencyP99Ms = lat.P99Ms
	}
	if req.Metadata != nil {
		sub.SubmitterNotes = req.Metadata.Notes
	}

	for _, gpu := range req.Hardware.Gpus {
		sub.Gpus = append(sub.Gpus, model.SubmissionGpu{
			GpuName:      gpu.Name,
			GpuVendor:    gpu.Vendor,
			GpuVramMb:    *gpu.VramMb,
			Quantity:     gpu.Quantity,
			Interconnect: gpu.Interconnect,
		})
	}
	if flag.Verdict != plausibility.Plausible {
		sub.QuestionCount = 1
		sub.Questions = []model.SubmissionQuestion{{Reason: flag.Reason}}
	}
	return sub, flag
}

// Ingest writes one validated submission. The submission row, its GPU line
// items and any automatic flag commit in a single transaction; a failure
// leaves no orphaned rows behind.
func (i *Ingestor) Ingest(ctx context.Context, req *payload.SubmissionReq) (Result, error) {
	sub, flag := i.assemble(req)
	flagged := flag.Verdict != plausibility.Plausible

	err := i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&sub).Error
	})
	if err != nil {
		return Result{}, err
	}

	metrics.SubmissionsIngested.Inc()
	if flagged {
		metrics.SubmissionsFlagged.WithLabelValues(flag.Verdict.String()).Inc()
	}

	return Result{
		ID:            sub.ID,
		TotalGpuCount: sub.TotalGpuCount,
		TotalVramMb:   sub.TotalVramMb,
		Flagged:       flagged,
		FlagReason:    flag.Reason,
	}, nil
}
