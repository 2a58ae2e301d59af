package handler

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/BinSquare/inferbench/dao/model"
	"github.com/BinSquare/inferbench/internal/aggregate"
	"github.com/BinSquare/inferbench/internal/payload"
	"github.com/BinSquare/inferbench/internal/resputil"
	"github.com/BinSquare/inferbench/pkg/catalog"
	"github.com/BinSquare/inferbench/pkg/scoring"
)

const maxNameLength = 200

// Detail pages cap the embedded submission list to keep responses bounded.
const maxSubmissionsPerDetail = 500

//nolint:gochecknoinits // register the manager
func init() {
	Registers = append(Registers, NewGpuMgr)
}

type GpuMgr struct {
	name   string
	db     *gorm.DB
	engine *aggregate.Engine
}

func NewGpuMgr(conf *RegisterConfig) Manager {
	return &GpuMgr{
		name:   "gpus",
		db:     conf.DB,
		engine: aggregate.NewEngine(conf.DB),
	}
}

func (mgr *GpuMgr) GetName() string { return mgr.name }

func (mgr *GpuMgr) RegisterPublic(g *gin.RouterGroup) {
	g.GET("", mgr.ListGpus)
	g.GET("/compare", mgr.CompareGpus)
	g.GET("/:name", mgr.GetGpu)
}

type (
	GpuRankingResp struct {
		ID                 uuid.UUID `json:"id"`
		Name               string    `json:"name"`
		Vendor             string    `json:"vendor"`
		VramMb             int       `json:"vram_mb"`
		SubmissionCount    int64     `json:"submission_count"`
		AvgTokensPerSecond float64   `json:"avg_tokens_per_second"`
		MsrpUsd            *int      `json:"msrp_usd"`
		UsedPriceUsd       *int      `json:"used_price_usd"`
		ValueScore         *float64  `json:"value_score"`
		UsedValueScore     *float64  `json:"used_value_score"`
		Rank               int       `json:"rank"`
		Percentile         int       `json:"percentile"`
	}

	GpuSubmissionResp struct {
		ID                     uuid.UUID `json:"id"`
		CpuName                *string   `json:"cpu_name"`
		Model                  string    `json:"model"`
		ModelParametersB       *float64  `json:"model_parameters_b"`
		Quantization           *string   `json:"quantization"`
		Backend                string    `json:"backend"`
		ContextLength          *int      `json:"context_length"`
		TokensPerSecond        float64   `json:"tokens_per_second"`
		PrefillTokensPerSecond *float64  `json:"prefill_tokens_per_second"`
		CreatedAt              time.Time `json:"created_at"`
	}

	GpuDetailResp struct {
		ID                 uuid.UUID           `json:"id"`
		Name               string              `json:"name"`
		Vendor             string              `json:"vendor"`
		VramMb             int                 `json:"vram_mb"`
		Architecture       *string             `json:"architecture"`
		SubmissionCount    int64               `json:"submission_count"`
		AvgTokensPerSecond float64             `json:"avg_tokens_per_second"`
		Rank               int                 `json:"rank"`
		Percentile         int                 `json:"percentile"`
		AllSubmissions     []GpuSubmissionResp `json:"all_submissions"`
	}

	GpuCompareResp struct {
		Comparisons []GpuComparisonEntry `json:"comparisons"`
	}

	GpuComparisonEntry struct {
		Name               string  `json:"name"`
		Vendor             string  `json:"vendor"`
		VramMb             int     `json:"vram_mb"`
		SubmissionCount    int64   `json:"submission_count"`
		AvgTokensPerSecond float64 `json:"avg_tokens_per_second"`
		Rank               int     `json:"rank"`
		Percentile         int     `json:"percentile"`
	}
)

// gpuRankings joins catalog rows with live submission statistics.
func (mgr *GpuMgr) gpuRankings(c *gin.Context, vendor string) ([]GpuRankingResp, int, error) {
	stats, err := mgr.engine.GpuStats(c)
	if err != nil {
		return nil, 0, err
	}
	statsByName := lo.KeyBy(stats, func(s aggregate.EntityStats) string { return s.Name })

	var rows []model.Gpu
	q := mgr.db.WithContext(c).Model(&model.Gpu{})
	if vendor != "" {
		q = q.Where("vendor = ?", vendor)
	}
	if err = q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	if err = mgr.db.WithContext(c).Model(&model.Gpu{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		total = int64(len(rows))
	}
	if total == 0 {
		total = 1
	}

	entries := make([]GpuRankingResp, 0, len(rows))
	for _, gpu := range rows {
		entry := GpuRankingResp{
			ID:           gpu.ID,
			Name:         gpu.Name,
			Vendor:       gpu.Vendor,
			VramMb:       gpu.VramMb,
			MsrpUsd:      catalog.GpuMsrpUsd(gpu.Name),
			UsedPriceUsd: catalog.GpuUsedPriceUsd(gpu.Name),
		}
		if s, ok := statsByName[gpu.Name]; ok {
			entry.SubmissionCount = s.SubmissionCount
			entry.AvgTokensPerSecond = s.AvgTokensPerSecond
		}
		entry.ValueScore = scoring.CatalogValueScore(entry.AvgTokensPerSecond, entry.MsrpUsd)
		entry.UsedValueScore = scoring.CatalogValueScore(entry.AvgTokensPerSecond, entry.UsedPriceUsd)
		entries = append(entries, entry)
	}
	return entries, int(total), nil
}

// ListGpus godoc
// @Summary Rank GPUs by performance or value
// @Description Catalog GPUs with live submission statistics, ranked by average throughput, tokens/s per $1000 of MSRP, or per $1000 of used-market price
// @Tags gpu
// @Produce json
// @Param vendor query string false "filter by vendor"
// @Param sort query string false "performance | value | used_value"
// @Success 200 {object} resputil.Response[[]GpuRankingResp]
// @Router /v1/gpus [get]
func (mgr *GpuMgr) ListGpus(c *gin.Context) {
	vendor := c.Query("vendor")
	sort := payload.ParseSort(c, "performance", "value", "used_value")
	page := payload.ParsePage(c)

	entries, total, err := mgr.gpuRankings(c, vendor)
	if err != nil {
		resputil.Error(c, fmt.Sprintf("failed to rank gpus: %v", err), resputil.NotSpecified)
		return
	}

	switch sort {
	case "value":
		scoring.SortByValueDesc(entries, func(e GpuRankingResp) *float64 { return e.ValueScore })
	case "used_value":
		scoring.SortByValueDesc(entries, func(e GpuRankingResp) *float64 { return e.UsedValueScore })
	default:
		scoring.SortByValueDesc(entries, func(e GpuRankingResp) *float64 {
			tps := e.AvgTokensPerSecond
			return &tps
		})
	}

	paged := paginate(entries, page)
	for i := range paged {
		paged[i].Rank = scoring.Rank(page.Offset, i)
		paged[i].Percentile = scoring.Percentile(paged[i].Rank, total)
	}
	resputil.Success(c, paged)
}

// GetGpu godoc
// @Summary GPU detail with recent submissions
// @Description Statistics are merged across alias spellings of the GPU name
// @Tags gpu
// @Produce json
// @Param name path string true "gpu name"
// @Success 200 {object} resputil.Response[GpuDetailResp]
// @Failure 404 {object} resputil.Response[any]
// @Router /v1/gpus/{name} [get]
func (mgr *GpuMgr) GetGpu(c *gin.Context) {
	name := c.Param("name")
	if name == "" || len(name) > maxNameLength {
		resputil.BadRequestError(c, "Invalid GPU name")
		return
	}
	canonical := mgr.engine.GpuCanonical(name)

	var gpu model.Gpu
	err := mgr.db.WithContext(c).First(&gpu, "name = ?", canonical).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resputil.NotFoundError(c, "GPU not found")
		return
	}
	if err != nil {
		resputil.Error(c, fmt.Sprintf("failed to load gpu: %v", err), resputil.NotSpecified)
		return
	}

	stats, err := mgr.engine.GpuStats(c)
	if err != nil {
		resputil.Error(c, fmt.Sprintf("failed to aggregate: %v", err), resputil.NotSpecified)
		return
	}
	var catalogTotal int64
	if err = mgr.db.WithContext(c).Model(&model.Gpu{}).Count(&catalogTotal).Error; err != nil {
		resputil.Error(c, fmt.Sprintf("failed to count gpus: %v", err), resputil.NotSpecified)
		return
	}
	rank, total, entity := rankByThroughput(stats, canonical, int(catalogTotal))

	var subs []model.Submission
	err = mgr.db.WithContext(c).
		Where("primary_gpu_name IN ?", mgr.engine.GpuVariants(canonical)).
		Order("tokens_per_second DESC").
		Limit(maxSubmissionsPerDetail).
		Find(&subs).Error
	if err != nil {
		resputil.Error(c, fmt.Sprintf("failed to load submissions: %v", err), resputil.NotSpecified)
		return
	}

	resp := GpuDetailResp{
		ID:           gpu.ID,
		Name:         gpu.Name,
		Vendor:       gpu.Vendor,
		VramMb:       gpu.VramMb,
		Architecture: gpu.Architecture,
		Rank:         rank,
		Percentile:   scoring.Percentile(rank, total),
		AllSubmissions: lo.Map(subs, func(sub model.Submission, _ int) GpuSubmissionResp {
			return GpuSubmissionResp{
				ID:                     sub.ID,
				CpuName:                sub.CpuName,
				Model:                  sub.Model,
				ModelParametersB:       sub.ModelParametersB,
				Quantization:           sub.Quantization,
				Backend:                sub.Backend,
				ContextLength:          sub.ContextLength,
				TokensPerSecond:        sub.TokensPerSecond,
				PrefillTokensPerSecond: sub.PrefillTokensPerSecond,
				CreatedAt:              sub.CreatedAt,
			}
		}),
	}
	if entity != nil {
		resp.SubmissionCount = entity.SubmissionCount
		resp.AvgTokensPerSecond = entity.AvgTokensPerSecond
	}
	resputil.Success(c, resp)
}

// CompareGpus godoc
// @Summary Compare 2 to 4 GPUs side by side
// @Tags gpu
// @Produce json
// @Param names query []string true "gpu names (repeatable)"
// @Success 200 {object} resputil.Response[GpuCompareResp]
// @Router /v1/gpus/compare [get]
func (mgr *GpuMgr) CompareGpus(c *gin.Context) {
	names := c.QueryArray("names")
	if len(names) < 2 {
		resputil.BadRequestError(c, "At least 2 GPU names are required")
		return
	}
	if len(names) > 4 {
		resputil.BadRequestError(c, "Maximum 4 GPUs can be compared at once")
		return
	}
	for _, n := range names {
		if n == "" || len(n) > maxNameLength {
			resputil.BadRequestError(c, "Invalid GPU name provided")
			return
		}
	}

	canonicals := lo.Uniq(lo.Map(names, func(n string, _ int) string {
		return mgr.engine.GpuCanonical(n)
	}))

	var rows []model.Gpu
	if err := mgr.db.WithContext(c).Where("name IN ?", canonicals).Find(&rows).Error; err != nil {
		resputil.Error(c, fmt.Sprintf("failed to load gpus: %v", err), resputil.NotSpecified)
		return
	}

	stats, err := mgr.engine.GpuStats(c)
	if err != nil {
		resputil.Error(c, fmt.Sprintf("failed to aggregate: %v", err), resputil.NotSpecified)
		return
	}
	statsByName := lo.KeyBy(stats, func(s aggregate.EntityStats) string { return s.Name })

	var total int64
	if err = mgr.db.WithContext(c).Model(&model.Gpu{}).Count(&total).Error; err != nil {
		resputil.Error(c, fmt.Sprintf("failed to count gpus: %v", err), resputil.NotSpecified)
		return
	}
	if total == 0 {
		total = 1
	}

	entries := lo.Map(rows, func(gpu model.Gpu, _ int) GpuComparisonEntry {
		entry := GpuComparisonEntry{
			Name:   gpu.Name,
			Vendor: gpu.Vendor,
			VramMb: gpu.VramMb,
		}
		if s, ok := statsByName[gpu.Name]; ok {
			entry.SubmissionCount = s.SubmissionCount
			entry.AvgTokensPerSecond = s.AvgTokensPerSecond
		}
		return entry
	})
	scoring.SortByValueDesc(entries, func(e GpuComparisonEntry) *float64 {
		tps := e.AvgTokensPerSecond
		return &tps
	})
	for i := range entries {
		entries[i].Rank = i + 1
		entries[i].Percentile = scoring.Percentile(i+1, int(total))
	}

	resputil.Success(c, GpuCompareResp{Comparisons: entries})
}

// rankByThroughput finds an entity's 1-based rank among all entities ordered
// by average throughput descending. catalogTotal is the full catalog
// population, so list and detail pages agree on the percentile denominator.
// An entity with no submissions ranks at the very bottom; it must never score
// above a ranked one.
func rankByThroughput(stats []aggregate.EntityStats, name string, catalogTotal int) (rank, total int, entity *aggregate.EntityStats) {
	total = catalogTotal
	if total < len(stats) {
		total = len(stats)
	}
	if total <= 0 {
		total = 1
	}
	for i := range stats {
		if stats[i].Name == name {
			entity = &stats[i]
		}
	}
	if entity == nil {
		return total, total, nil
	}
	better := 0
	for i := range stats {
		if stats[i].AvgTokensPerSecond > entity.AvgTokensPerSecond {
			better++
		}
	}
	return better + 1, total, entity
}

func paginate[T any](entries []T, page payload.Page) []T {
	if page.Offset >= len(entries) {
		return []T{}
	}
	end := page.Offset + page.Limit
	if end > len(entries) {
		end = len(entries)
	}
	return entries[page.Offset:end]
}
