// Package aggregate computes per-entity statistics from the submissions
// table. Statistics are always derived at read time; nothing here writes
// cached counters back to the catalog.
package aggregate

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/BinSquare/inferbench/dao/model"
	"github.com/BinSquare/inferbench/pkg/alias"
)

// Engine groups submissions by entity, resolving name aliases so variant
// spellings land in one canonical bucket.
type Engine struct {
	db            *gorm.DB
	gpuResolver   *alias.Resolver
	modelResolver *alias.Resolver
}

func NewEngine(db *gorm.DB) *Engine {
	return &Engine{
		db:            db,
		gpuResolver:   alias.NewGpuResolver(),
		modelResolver: alias.NewModelResolver(),
	}
}

// row is one raw GROUP BY bucket, keyed by the submitter's spelling.
type row struct {
	Name               string
	SubmissionCount    int64
	SumTokensPerSecond float64
}

// EntityStats is the merged, canonical-name view of one GPU, CPU or model.
type EntityStats struct {
	Name               string
	SubmissionCount    int64
	AvgTokensPerSecond float64
}

// mergeRows folds raw name buckets into canonical buckets. The average is
// computed once from the merged sums; averaging the per-variant averages
// would weight small variants equally with large ones.
func mergeRows(rows []row, canonical func(string) string) []EntityStats {
	type bucket struct {
		count int64
		sum   float64
	}
	merged := make(map[string]*bucket)
	order := make([]string, 0, len(rows))
	for _, r := range rows {
		name := canonical(r.Name)
		b, ok := merged[name]
		if !ok {
			b = &bucket{}
			merged[name] = b
			order = append(order, name)
		}
		b.count += r.SubmissionCount
		b.sum += r.SumTokensPerSecond
	}

	stats := make([]EntityStats, 0, len(order))
	for _, name := range order {
		b := merged[name]
		stats = append(stats, EntityStats{
			Name:               name,
			SubmissionCount:    b.count,
			AvgTokensPerSecond: b.sum / float64(b.count),
		})
	}
	return stats
}

// excluded filters sentinel values out of grouping; entities with zero real
// rows simply do not appear in the result.
func excluded(name string) bool {
	return name == "" || strings.EqualFold(name, model.UnknownName)
}

func (e *Engine) groupBy(ctx context.Context, column string) ([]row, error) {
	var rows []row
	err := e.db.WithContext(ctx).
		Model(&model.Submission{}).
		Select(column + " AS name, COUNT(*) AS submission_count, SUM(tokens_per_second) AS sum_tokens_per_second").
		Where(column + " IS NOT NULL").
		Group(column).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	filtered := rows[:0]
	for _, r := range rows {
		if !excluded(r.Name) {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// GpuStats aggregates submissions by primary GPU, merged across aliases.
func (e *Engine) GpuStats(ctx context.Context) ([]EntityStats, error) {
	rows, err := e.groupBy(ctx, "primary_gpu_name")
	if err != nil {
		return nil, err
	}
	return mergeRows(rows, e.gpuResolver.Canonical), nil
}

// CpuStats aggregates submissions by CPU name. CPU names have no alias
// table; grouping is by the raw spelling.
func (e *Engine) CpuStats(ctx context.Context) ([]EntityStats, error) {
	rows, err := e.groupBy(ctx, "cpu_name")
	if err != nil {
		return nil, err
	}
	return mergeRows(rows, func(s string) string { return s }), nil
}

// ModelStats aggregates submissions by model, merged across aliases.
func (e *Engine) ModelStats(ctx context.Context) ([]EntityStats, error) {
	rows, err := e.groupBy(ctx, "model")
	if err != nil {
		return nil, err
	}
	return mergeRows(rows, e.modelResolver.Canonical), nil
}

// GpuVariants exposes the GPU alias expansion for detail queries.
func (e *Engine) GpuVariants(raw string) []string {
	return e.gpuResolver.Variants(raw)
}

// GpuCanonical resolves a raw GPU name.
func (e *Engine) GpuCanonical(raw string) string {
	return e.gpuResolver.Canonical(raw)
}

// ModelVariants exposes the model alias expansion for detail queries.
func (e *Engine) ModelVariants(raw string) []string {
	return e.modelResolver.Variants(raw)
}

// ModelCanonical resolves a raw model name.
func (e *Engine) ModelCanonical(raw string) string {
	return e.modelResolver.Canonical(raw)
}
