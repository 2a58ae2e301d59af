package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submission is one benchmark run reported by the community. Rows are
// append-only: after insert, only the two feedback counters change.
type Submission struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index;not null" json:"created_at"`

	// Hardware - GPU totals, computed from the line items at ingest time
	TotalGpuCount  int     `gorm:"not null;default:0;index" json:"total_gpu_count"`
	TotalVramMb    int     `gorm:"not null;default:0;index" json:"total_vram_mb"`
	PrimaryGpuName *string `gorm:"type:varchar(200);index" json:"primary_gpu_name"`

	// Hardware - CPU (optional, at least one of GPU list or CPU required)
	CpuName    *string `gorm:"type:varchar(200);index" json:"cpu_name"`
	CpuVendor  *string `gorm:"type:varchar(100)" json:"cpu_vendor"`
	CpuCores   *int    `json:"cpu_cores"`
	CpuThreads *int    `json:"cpu_threads"`

	// Hardware - RAM (optional)
	RamMb       *int    `json:"ram_mb"`
	RamSpeedMhz *int    `json:"ram_speed_mhz"`
	RamType     *string `gorm:"type:varchar(20)" json:"ram_type"`

	// System
	Os   string `gorm:"type:varchar(100);not null" json:"os"`
	Arch string `gorm:"type:varchar(50);not null" json:"arch"`

	// Benchmark configuration
	Model            string   `gorm:"type:varchar(300);not null;index" json:"model"`
	ModelParametersB *float64 `gorm:"index" json:"model_parameters_b"`
	Quantization     *string  `gorm:"type:varchar(50);index" json:"quantization"`
	ContextLength    *int     `json:"context_length"`
	Backend          string   `gorm:"type:varchar(100);not null;index" json:"backend"`
	BackendVersion   *string  `gorm:"type:varchar(50)" json:"backend_version"`

	// Benchmark parameters
	PromptTokens     *int `json:"prompt_tokens"`
	GenerationTokens *int `json:"generation_tokens"`
	BatchSize        int  `gorm:"default:1" json:"batch_size"`

	// Results - speed
	TokensPerSecond        float64  `gorm:"not null;index" json:"tokens_per_second"`
	PrefillTokensPerSecond *float64 `json:"prefill_tokens_per_second"`
	TimeToFirstTokenMs     *float64 `json:"time_to_first_token_ms"`

	// Results - latency
	LatencyP50Ms *float64 `json:"latency_p50_ms"`
	LatencyP90Ms *float64 `json:"latency_p90_ms"`
	LatencyP99Ms *float64 `json:"latency_p99_ms"`

	// Results - resource usage
	VramUsedMb     *int     `json:"vram_used_mb"`
	RamUsedMb      *int     `json:"ram_used_mb"`
	PowerDrawWatts *float64 `json:"power_draw_watts"`

	// Metadata
	SubmitterNotes *string `gorm:"type:text" json:"submitter_notes"`
	Verified       bool    `gorm:"default:false" json:"verified"`
	SourceURL      *string `gorm:"type:varchar(2000)" json:"source_url"`

	// Community feedback
	ValidationCount int `gorm:"not null;default:0" json:"validation_count"`
	QuestionCount   int `gorm:"not null;default:0" json:"question_count"`

	Gpus      []SubmissionGpu      `gorm:"constraint:OnDelete:CASCADE" json:"gpus"`
	Questions []SubmissionQuestion `gorm:"constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

func (s *Submission) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// SubmissionGpu is one GPU line item of a submission; multi-GPU rigs
// submit several rows, each with a per-unit VRAM size and a quantity.
type SubmissionGpu struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SubmissionID uuid.UUID `gorm:"type:uuid;not null;index" json:"submission_id"`

	GpuName      string  `gorm:"type:varchar(200);not null;index" json:"gpu_name"`
	GpuVendor    string  `gorm:"type:varchar(100);not null" json:"gpu_vendor"`
	GpuVramMb    int     `gorm:"not null" json:"gpu_vram_mb"`
	Quantity     int     `gorm:"not null;default:1" json:"quantity"`
	Interconnect *string `gorm:"type:varchar(50)" json:"interconnect"`
}

func (g *SubmissionGpu) BeforeCreate(_ *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// SubmissionQuestion is a flag raised against a submission, either by a
// community vote or automatically by the plausibility check.
type SubmissionQuestion struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	SubmissionID uuid.UUID `gorm:"type:uuid;not null;index" json:"submission_id"`

	Reason        string     `gorm:"type:text;not null" json:"reason"`
	Resolved      bool       `gorm:"not null;default:false;index" json:"resolved"`
	ResolvedAt    *time.Time `json:"resolved_at"`
	ResolverNotes *string    `gorm:"type:text" json:"resolver_notes"`
}

func (q *SubmissionQuestion) BeforeCreate(_ *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
