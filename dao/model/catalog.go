package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// The catalog tables are static reference data seeded by migration.
// Submission statistics are always computed from the submissions table at
// read time, never cached on these rows; a per-row counter updated on every
// ingest is a lost-update race under concurrent submissions.

// Gpu is a catalog entry for a known GPU (or unified SoC sold as one).
type Gpu struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	Name         string  `gorm:"type:varchar(200);uniqueIndex;not null" json:"name"`
	Vendor       string  `gorm:"type:varchar(100);not null;index" json:"vendor"`
	Architecture *string `gorm:"type:varchar(100)" json:"architecture"`

	VramMb              int      `gorm:"not null;index" json:"vram_mb"`
	MemoryBandwidthGbps *float64 `json:"memory_bandwidth_gbps"`
	TdpWatts            *int     `json:"tdp_watts"`

	MsrpUsd         *int `gorm:"index" json:"msrp_usd"`
	CurrentPriceUsd *int `json:"current_price_usd"`
}

func (g *Gpu) BeforeCreate(_ *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// Cpu is a catalog entry for a known CPU.
type Cpu struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	Name         string  `gorm:"type:varchar(200);uniqueIndex;not null" json:"name"`
	Vendor       string  `gorm:"type:varchar(100);not null;index" json:"vendor"`
	Architecture *string `gorm:"type:varchar(100)" json:"architecture"`

	Cores         int  `gorm:"not null;index" json:"cores"`
	Threads       int  `gorm:"not null" json:"threads"`
	BaseClockMhz  *int `json:"base_clock_mhz"`
	BoostClockMhz *int `json:"boost_clock_mhz"`
	L3CacheMb     *int `json:"l3_cache_mb"`
	TdpWatts      *int `json:"tdp_watts"`

	MsrpUsd         *int `gorm:"index" json:"msrp_usd"`
	CurrentPriceUsd *int `json:"current_price_usd"`
}

func (c *Cpu) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Model is a catalog entry for a known LLM.
type Model struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	Name        string `gorm:"type:varchar(300);uniqueIndex;not null" json:"name"`
	DisplayName string `gorm:"type:varchar(200);not null" json:"display_name"`
	Vendor      string `gorm:"type:varchar(100);not null;index" json:"vendor"`

	ParametersB   float64 `gorm:"not null;index" json:"parameters_b"`
	ContextLength *int    `json:"context_length"`

	HuggingfaceURL *string `gorm:"type:varchar(500)" json:"huggingface_url"`
}

func (m *Model) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
