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
	"github.com/BinSquare/inferbench/pkg/scoring"
)

// Model names can be longer than hardware names (huggingface paths).
const maxModelNameLength = 300

//nolint:gochecknoinits // register the manager
func init() {
	Registers = append(Registers, NewModelMgr)
}

type ModelMgr struct {
	name   string
	db     *gorm.DB
	engine *aggregate.Engine
}

func NewModelMgr(conf *RegisterConfig) Manager {
	return &ModelMgr{
		name:   "models",
		db:     conf.DB,
		engine: aggregate.NewEngine(conf.DB),
	}
}

func (mgr *ModelMgr) GetName() string { return mgr.name }

func (mgr *ModelMgr) RegisterPublic(g *gin.RouterGroup) {
	g.GET("", mgr.ListModels)
	g.GET("/:name", mgr.GetModel)
}

type (
	ModelRankingResp struct {
		ID                 uuid.UUID `json:"id"`
		Name               string    `json:"name"`
		DisplayName        string    `json:"display_name"`
		Vendor             string    `json:"vendor"`
		ParametersB        float64   `json:"parameters_b"`
		ContextLength      *int      `json:"context_length"`
		HuggingfaceURL     *string   `json:"huggingface_url"`
		SubmissionCount    int64     `json:"submission_count"`
		AvgTokensPerSecond float64   `json:"avg_tokens_per_second"`
		Rank               int       `json:"rank"`
		Percentile         int       `json:"percentile"`
	}

	ModelSubmissionResp struct {
		ID                     uuid.UUID `json:"id"`
		GpuName                *string   `json:"gpu_name"`
		CpuName                *string   `json:"cpu_name"`
		Quantization           *string   `json:"quantization"`
		Backend                string    `json:"backend"`
		ContextLength          *int      `json:"context_length"`
		TokensPerSecond        float64   `json:"tokens_per_second"`
		PrefillTokensPerSecond *float64  `json:"prefill_tokens_per_second"`
		TotalVramMb            int       `json:"total_vram_mb"`
		CreatedAt              time.Time `json:"created_at"`
	}

	ModelDetailResp struct {
		ID                 uuid.UUID             `json:"id"`
		Name               string                `json:"name"`
		DisplayName        string                `json:"display_name"`
		Vendor             string                `json:"vendor"`
		ParametersB        float64               `json:"parameters_b"`
		ContextLength      *int                  `json:"context_length"`
		HuggingfaceURL     *string               `json:"huggingface_url"`
		SubmissionCount    int64                 `json:"submission_count"`
		AvgTokensPerSecond float64               `json:"avg_tokens_per_second"`
		Rank               int                   `json:"rank"`
		Percentile         int                   `json:"percentile"`
		AllSubmissions     []ModelSubmissionResp `json:"all_submissions"`
	}
)

// ListModels godoc
// @Summary Rank models by average throughput
// @Tags model
// @Produce json
// @Param vendor query string false "filter by vendor"
// @Success 200 {object} resputil.Response[[]ModelRankingResp]
// @Router /v1/models [get]
func (mgr *ModelMgr) ListModels(c *gin.Context) {
	vendor := c.Query("vendor")
	page := payload.ParsePage(c)

	stats, err := mgr.engine.ModelStats(c)
	if err != nil {
		resputil.Error(c, fmt.Sprintf("failed to aggregate: %v", err), resputil.NotSpecified)
		return
	}
	statsByName := lo.KeyBy(stats, func(s aggregate.EntityStats) string { return s.Name })

	var rows []model.Model
	q := mgr.db.WithContext(c).Model(&model.Model{})
	if vendor != "" {
		q = q.Where("vendor = ?", vendor)
	}
	if err = q.Find(&rows).Error; err != nil {
		resputil.Error(c, fmt.Sprintf("failed to list models: %v", err), resputil.NotSpecified)
		return
	}

	var total int64
	if err = mgr.db.WithContext(c).Model(&model.Model{}).Count(&total).Error; err != nil {
		resputil.Error(c, fmt.Sprintf("failed to count models: %v", err), resputil.NotSpecified)
		return
	}
	if total == 0 {
		total = 1
	}

	entries := lo.Map(rows, func(m model.Model, _ int) ModelRankingResp {
		entry := ModelRankingResp{
			ID:             m.ID,
			Name:           m.Name,
			DisplayName:    m.DisplayName,
			Vendor:         m.Vendor,
			ParametersB:    m.ParametersB,
			ContextLength:  m.ContextLength,
			HuggingfaceURL: m.HuggingfaceURL,
		}
		if s, ok := statsByName[m.Name]; ok {
			entry.SubmissionCount = s.SubmissionCount
			entry.AvgTokensPerSecond = s.AvgTokensPerSecond
		}
		return entry
	})

	scoring.SortByValueDesc(entries, func(e ModelRankingResp) *float64 {
		tps := e.AvgTokensPerSecond
		return &tps
	})

	paged := paginate(entries, page)
	for i := range paged {
		paged[i].Rank = scoring.Rank(page.Offset, i)
		paged[i].Percentile = scoring.Percentile(paged[i].Rank, int(total))
	}
	resputil.Success(c, paged)
}

// GetModel godoc
// @Summary Model detail with recent submissions
// @Description Lookup falls back to a case-insensitive match against the alias table
// @Tags model
// @Produce json
// @Param name path string true "model name"
// @Success 200 {object} resputil.Response[ModelDetailResp]
// @Failure 404 {object} resputil.Response[any]
// @Router /v1/models/{name} [get]
func (mgr *ModelMgr) GetModel(c *gin.Context) {
	name := c.Param("name")
	if name == "" || len(name) > maxModelNameLength {
		resputil.BadRequestError(c, "Invalid model name")
		return
	}
	canonical := mgr.engine.ModelCanonical(name)

	var m model.Model
	err := mgr.db.WithContext(c).First(&m, "name = ?", canonical).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Last resort: case-insensitive catalog lookup for names the
		// alias table has never seen.
		err = mgr.db.WithContext(c).First(&m, "LOWER(name) = LOWER(?)", canonical).Error
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resputil.NotFoundError(c, "Model not found")
		return
	}
	if err != nil {
		resputil.Error(c, fmt.Sprintf("failed to load model: %v", err), resputil.NotSpecified)
		return
	}

	stats, err := mgr.engine.ModelStats(c)
	if err != nil {
		resputil.Error(c, fmt.Sprintf("failed to aggregate: %v", err), resputil.NotSpecified)
		return
	}
	var catalogTotal int64
	if err = mgr.db.WithContext(c).Model(&model.Model{}).Count(&catalogTotal).Error; err != nil {
		resputil.Error(c, fmt.Sprintf("failed to count models: %v", err), resputil.NotSpecified)
		return
	}
	rank, total, entity := rankByThroughput(stats, m.Name, int(catalogTotal))

	var subs []model.Submission
	err = mgr.db.WithContext(c).
		Where("model IN ?", mgr.engine.ModelVariants(m.Name)).
		Order("tokens_per_second DESC").
		Limit(maxSubmissionsPerDetail).
		Find(&subs).Error
	if err != nil {
		resputil.Error(c, fmt.Sprintf("failed to load submissions: %v", err), resputil.NotSpecified)
		return
	}

	resp := ModelDetailResp{
		ID:             m.ID,
		Name:           m.Name,
		DisplayName:    m.DisplayName,
		Vendor:         m.Vendor,
		ParametersB:    m.ParametersB,
		ContextLength:  m.ContextLength,
		HuggingfaceURL: m.HuggingfaceURL,
		Rank:           rank,
		Percentile:     scoring.Percentile(rank, total),
		AllSubmissions: lo.Map(subs, func(sub model.Submission, _ int) ModelSubmissionResp {
			return ModelSubmissionResp{
				ID:                     sub.ID,
				GpuName:                sub.PrimaryGpuName,
				CpuName:                sub.CpuName,
				Quantization:           sub.Quantization,
				Backend:                sub.Backend,
				ContextLength:          sub.ContextLength,
				TokensPerSecond:        sub.TokensPerSecond,
				PrefillTokensPerSecond: sub.PrefillTokensPerSecond,
				TotalVramMb:            sub.TotalVramMb,
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
