package payload

import (
	"strings"

	"github.com/BinSquare/inferbench/internal/resputil"
)

// SubmissionReq is the inbound benchmark submission. Fields that must be
// present but may legitimately be zero are pointers, so binding can tell
// "absent" apart from "zero".
type (
	SubmissionReq struct {
		Hardware  HardwareReq  `json:"hardware" binding:"required"`
		Benchmark BenchmarkReq `json:"benchmark" binding:"required"`
		Results   ResultsReq   `json:"results" binding:"required"`
		Metadata  *MetadataReq `json:"metadata" binding:"omitempty"`
		SourceURL *string      `json:"source_url" binding:"omitempty,url,max=2000"`
	}

	HardwareReq struct {
		Os     string        `json:"os" binding:"required,min=1,max=100"`
		Arch   string        `json:"arch" binding:"required,min=1,max=50"`
		Gpus   []GpuEntryReq `json:"gpus" binding:"omitempty,max=100,dive"`
		Cpu    *CpuReq       `json:"cpu" binding:"omitempty"`
		Memory *MemoryReq    `json:"memory" binding:"omitempty"`
	}

	GpuEntryReq struct {
		Name         string  `json:"name" binding:"required,min=1,max=200"`
		Vendor       string  `json:"vendor" binding:"required,min=1,max=100"`
		VramMb       *int    `json:"vram_mb" binding:"required,min=0,max=10000000"`
		Quantity     int     `json:"quantity" binding:"required,min=1,max=1000"`
		Interconnect *string `json:"interconnect" binding:"omitempty,max=50"`
	}

	CpuReq struct {
		Model        string  `json:"model" binding:"required,min=1,max=200"`
		Vendor       string  `json:"vendor" binding:"required,min=1,max=100"`
		Cores        int     `json:"cores" binding:"required,min=1,max=10000"`
		Threads      int     `json:"threads" binding:"required,min=1,max=100000"`
		Architecture *string `json:"architecture" binding:"omitempty,max=50"`
	}

	MemoryReq struct {
		TotalMb  int     `json:"total_mb" binding:"required,min=1,max=100000000"`
		SpeedMhz *int    `json:"speed_mhz" binding:"omitempty,min=100,max=100000"`
		Type     *string `json:"type" binding:"omitempty,max=20"`
	}

	BenchmarkReq struct {
		Model            string   `json:"model" binding:"required,min=1,max=300"`
		ModelParametersB *float64 `json:"model_parameters_b" binding:"omitempty,min=0,max=10000"`
		Quantization     *string  `json:"quantization" binding:"omitempty,max=50"`
		ContextLength    *int     `json:"context_length" binding:"omitempty,min=1,max=10000000"`
		Backend          string   `json:"backend" binding:"required,min=1,max=100"`
		BackendVersion   *string  `json:"backend_version" binding:"omitempty,max=50"`
		PromptTokens     *int     `json:"prompt_tokens" binding:"omitempty,min=0,max=100000000"`
		GenerationTokens *int     `json:"generation_tokens" binding:"omitempty,min=0,max=100000000"`
		BatchSize        *int     `json:"batch_size" binding:"omitempty,min=1,max=10000"`
	}

	LatencyReq struct {
		P50Ms *float64 `json:"p50_ms" binding:"omitempty,min=0,max=1000000"`
		P90Ms *float64 `json:"p90_ms" binding:"omitempty,min=0,max=1000000"`
		P99Ms *float64 `json:"p99_ms" binding:"omitempty,min=0,max=1000000"`
	}

	ResultsReq struct {
		TokensPerSecond        *float64    `json:"tokens_per_second" binding:"required,min=0.001,max=1000000"`
		PrefillTokensPerSecond *float64    `json:"prefill_tokens_per_second" binding:"omitempty,min=0,max=100000000"`
		TimeToFirstTokenMs     *float64    `json:"time_to_first_token_ms" binding:"omitempty,min=0,max=10000000"`
		Latency                *LatencyReq `json:"latency" binding:"omitempty"`
		VramUsedMb             *int        `json:"vram_used_mb" binding:"omitempty,min=0,max=10000000"`
		RamUsedMb              *int        `json:"ram_used_mb" binding:"omitempty,min=0,max=100000000"`
		PowerDrawWatts         *float64    `json:"power_draw_watts" binding:"omitempty,min=0,max=100000"`
	}

	MetadataReq struct {
		Notes *string `json:"notes" binding:"omitempty,max=5000"`
	}
)

// Validate enforces cross-field rules binding tags cannot express.
func (r *SubmissionReq) Validate() []resputil.FieldError {
	var fields []resputil.FieldError

	// A run must report at least some hardware.
	if len(r.Hardware.Gpus) == 0 && r.Hardware.Cpu == nil {
		fields = append(fields, resputil.FieldError{
			Field:   "hardware",
			Message: "at least one of gpus or cpu must be provided",
		})
	}

	return fields
}

// VoteReq casts community feedback on a submission.
type VoteReq struct {
	Type   string  `json:"type" binding:"required,oneof=validate question"`
	Reason *string `json:"reason" binding:"omitempty,max=2000"`
}

// Validate requires a substantive reason when questioning a submission.
func (r *VoteReq) Validate() []resputil.FieldError {
	if r.Type == "question" {
		if r.Reason == nil || len(strings.TrimSpace(*r.Reason)) < 10 {
			return []resputil.FieldError{{
				Field:   "reason",
				Message: "Please provide a reason (at least 10 characters) when questioning a submission",
			}}
		}
	}
	return nil
}
