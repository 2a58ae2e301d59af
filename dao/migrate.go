// Package dao owns schema migration and catalog seeding.
package dao

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"k8s.io/klog/v2"

	"github.com/BinSquare/inferbench/dao/model"
	"github.com/BinSquare/inferbench/pkg/catalog"
)

// Migrate applies the schema and seeds the hardware/model catalog. Seeding
// is idempotent: existing rows are left untouched so re-deploys never reset
// catalog ids.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250812-initial-schema",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&model.Submission{},
					&model.SubmissionGpu{},
					&model.SubmissionQuestion{},
					&model.Gpu{},
					&model.Cpu{},
					&model.Model{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(
					&model.SubmissionQuestion{},
					&model.SubmissionGpu{},
					&model.Submission{},
					&model.Gpu{},
					&model.Cpu{},
					&model.Model{},
				)
			},
		},
		{
			ID: "20250812-seed-catalog",
			Migrate: func(tx *gorm.DB) error {
				return seedCatalog(tx)
			},
			Rollback: func(tx *gorm.DB) error {
				return nil
			},
		},
	})

	if err := m.Migrate(); err != nil {
		return err
	}
	klog.Info("database migration completed")
	return nil
}

func seedCatalog(tx *gorm.DB) error {
	for _, g := range catalog.GpuList {
		row := model.Gpu{
			Name:         g.Name,
			Vendor:       g.Vendor,
			VramMb:       g.VramMb,
			Architecture: optional(g.Architecture),
		}
		if g.MemoryBandwidthGbps > 0 {
			row.MemoryBandwidthGbps = lo.ToPtr(g.MemoryBandwidthGbps)
		}
		if g.TdpWatts > 0 {
			row.TdpWatts = lo.ToPtr(g.TdpWatts)
		}
		if g.MsrpUsd > 0 {
			row.MsrpUsd = lo.ToPtr(g.MsrpUsd)
		}
		if g.UsedPriceUsd > 0 {
			row.CurrentPriceUsd = lo.ToPtr(g.UsedPriceUsd)
		}
		if err := firstOrCreate(tx, &row, "name = ?", g.Name); err != nil {
			return err
		}
	}

	for _, c := range catalog.CpuList {
		row := model.Cpu{
			Name:         c.Name,
			Vendor:       c.Vendor,
			Cores:        c.Cores,
			Threads:      c.Threads,
			Architecture: optional(c.Architecture),
		}
		if c.BaseClockMhz > 0 {
			row.BaseClockMhz = lo.ToPtr(c.BaseClockMhz)
		}
		if c.BoostClockMhz > 0 {
			row.BoostClockMhz = lo.ToPtr(c.BoostClockMhz)
		}
		if c.L3CacheMb > 0 {
			row.L3CacheMb = lo.ToPtr(c.L3CacheMb)
		}
		if c.TdpWatts > 0 {
			row.TdpWatts = lo.ToPtr(c.TdpWatts)
		}
		if c.MsrpUsd > 0 {
			row.MsrpUsd = lo.ToPtr(c.MsrpUsd)
		}
		if err := firstOrCreate(tx, &row, "name = ?", c.Name); err != nil {
			return err
		}
	}

	for _, m := range catalog.ModelList {
		row := model.Model{
			Name:           m.Name,
			DisplayName:    m.DisplayName,
			Vendor:         m.Vendor,
			ParametersB:    m.ParametersB,
			HuggingfaceURL: lo.ToPtr("https://huggingface.co/" + m.Name),
		}
		if m.ContextLength > 0 {
			row.ContextLength = lo.ToPtr(m.ContextLength)
		}
		if err := firstOrCreate(tx, &row, "name = ?", m.Name); err != nil {
			return err
		}
	}
	return nil
}

func firstOrCreate[T any](tx *gorm.DB, row *T, query string, args ...any) error {
	return tx.Where(query, args...).FirstOrCreate(row).Error
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
