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

//nolint:gochecknoinits // register the manager
func init() {
	Registers = append(Registers, NewCpuMgr)
}

type CpuMgr struct {
	name   string
	db     *gorm.DB
	engine *aggregate.Engine
}

func NewCpuMgr(conf *RegisterConfig) Manager {
	return &CpuMgr{
		name:   "cpus",
		db:     conf.DB,
		engine: aggregate.NewEngine(conf.DB),
	}
}

func (mgr *CpuMgr) GetName() string { return mgr.name }

func (mgr *CpuMgr) RegisterPublic(g *gin.RouterGroup) {
	g.GET("", mgr.ListCpus)
	g.GET("/:name", mgr.GetCpu)
}

type (
	CpuRankingResp struct {
		ID                 uuid.UUID `json:"id"`
		Name               string    `json:"name"`
		Vendor             string    `json:"vendor"`
		Cores              int       `json:"cores"`
		Threads            int       `json:"threads"`
		SubmissionCount    int64     `json:"submission_count"`
		AvgTokensPerSecond float64   `json:"avg_tokens_per_second"`
		MsrpUsd            *int      `json:"msrp_usd"`
		ValueScore         *float64  `json:"value_score"`
		Rank               int       `json:"rank"`
		Percentile         int       `json:"percentile"`
	}

	CpuSubmissionResp struct {
		ID              uuid.UUID `json:"id"`
		PrimaryGpuName  *string   `json:"gpu_name"`
		Model           string    `json:"model"`
		Quantization    *string   `json:"quantization"`
		Backend         string    `json:"backend"`
		TokensPerSecond float64   `json:"tokens_per_second"`
		CreatedAt       time.Time `json:"created_at"`
	}

	CpuDetailResp struct {
		ID                 uuid.UUID           `json:"id"`
		Name               string              `json:"name"`
		Vendor             string              `json:"vendor"`
		Cores              int                 `json:"cores"`
		Threads            int                 `json:"threads"`
		Architecture       *string             `json:"architecture"`
		SubmissionCount    int64               `json:"submission_count"`
		AvgTokensPerSecond float64             `json:"avg_tokens_per_second"`
		Rank               int                 `json:"rank"`
		Percentile         int                 `json:"percentile"`
		AllSubmissions     []CpuSubmissionResp `json:"all_submissions"`
	}
)

// ListCpus godoc
// @Summary Rank CPUs by performance or value
// @Tags cpu
// @Produce json
// @Param vendor query string false "filter by vendor"
// @Param sort query string false "performance | value"
// @Success 200 {object} resputil.Response[[]CpuRankingResp]
// @Router /v1/cpus [get]
func (mgr *CpuMgr) ListCpus(c *gin.Context) {
	vendor := c.Query("vendor")
	sort := payload.ParseSort(c, "performance", "value")
	page := payload.ParsePage(c)

	stats, err := mgr.engine.CpuStats(c)
	if err != nil {
		resputil.Error(c, fmt.Sprintf("failed to aggregate: %v", err), resputil.NotSpecified)
		return
	}
	statsByName := lo.KeyBy(stats, func(s aggregate.EntityStats) string { return s.Name })

	var rows []model.Cpu
	q := mgr.db.WithContext(c).Model(&model.Cpu{})
	if vendor != "" {
		q = q.Where("vendor = ?", vendor)
	}
	if err = q.Find(&rows).Error; err != nil {
		resputil.Error(c, fmt.Sprintf("failed to list cpus: %v", err), resputil.NotSpecified)
		return
	}

	var total int64
	if err = mgr.db.WithContext(c).Model(&model.Cpu{}).Count(&total).Error; err != nil {
		resputil.Error(c, fmt.Sprintf("failed to count cpus: %v", err), resputil.NotSpecified)
		return
	}
	if total == 0 {
		total = 1
	}

	entries := lo.Map(rows, func(cpu model.Cpu, _ int) CpuRankingResp {
		entry := CpuRankingResp{
			ID:      cpu.ID,
			Name:    cpu.Name,
			Vendor:  cpu.Vendor,
			Cores:   cpu.Cores,
			Threads: cpu.Threads,
			MsrpUsd: catalog.CpuMsrpUsd(cpu.Name),
		}
		if s, ok := statsByName[cpu.Name]; ok {
			entry.SubmissionCount = s.SubmissionCount
			entry.AvgTokensPerSecond = s.AvgTokensPerSecond
		}
		entry.ValueScore = scoring.CatalogValueScore(entry.AvgTokensPerSecond, entry.MsrpUsd)
		return entry
	})

	if sort == "value" {
		scoring.SortByValueDesc(entries, func(e CpuRankingResp) *float64 { return e.ValueScore })
	} else {
		scoring.SortByValueDesc(entries, func(e CpuRankingResp) *float64 {
			tps := e.AvgTokensPerSecond
			return &tps
		})
	}

	paged := paginate(entries, page)
	for i := range paged {
		paged[i].Rank = scoring.Rank(page.Offset, i)
		paged[i].Percentile = scoring.Percentile(paged[i].Rank, int(total))
	}
	resputil.Success(c, paged)
}

// GetCpu godoc
// @Summary CPU detail with recent submissions
// @Tags cpu
// @Produce json
// @Param name path string true "cpu name"
// @Success 200 {object} resputil.Response[CpuDetailResp]
// @Failure 404 {object} resputil.Response[any]
// @Router /v1/cpus/{name} [get]
func (mgr *CpuMgr) GetCpu(c *gin.Context) {
	name := c.Param("name")
	if name == "" || len(name) > maxNameLength {
		resputil.BadRequestError(c, "Invalid CPU name")
		return
	}

	var cpu model.Cpu
	err := mgr.db.WithContext(c).First(&cpu, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resputil.NotFoundError(c, "CPU not found")
		return
	}
	if err != nil {
		resputil.Error(c, fmt.Sprintf("failed to load cpu: %v", err), resputil.NotSpecified)
		return
	}

	stats, err := mgr.engine.CpuStats(c)
	if err != nil {
		resputil.Error(c, fmt.Sprintf("failed to aggregate: %v", err), resputil.NotSpecified)
		return
	}
	var catalogTotal int64
	if err = mgr.db.WithContext(c).Model(&model.Cpu{}).Count(&catalogTotal).Error; err != nil {
		resputil.Error(c, fmt.Sprintf("failed to count cpus: %v", err), resputil.NotSpecified)
		return
	}
	rank, total, entity := rankByThroughput(stats, name, int(catalogTotal))

	var subs []model.Submission
	err = mgr.db.WithContext(c).
		Where("cpu_name = ?", name).
		Order("tokens_per_second DESC").
		Limit(maxSubmissionsPerDetail).
		Find(&subs).Error
	if err != nil {
		resputil.Error(c, fmt.Sprintf("failed to load submissions: %v", err), resputil.NotSpecified)
		return
	}

	resp := CpuDetailResp{
		ID:           cpu.ID,
		Name:         cpu.Name,
		Vendor:       cpu.Vendor,
		Cores:        cpu.Cores,
		Threads:      cpu.Threads,
		Architecture: cpu.Architecture,
		Rank:         rank,
		Percentile:   scoring.Percentile(rank, total),
		AllSubmissions: lo.Map(subs, func(sub model.Submission, _ int) CpuSubmissionResp {
			return CpuSubmissionResp{
				ID:              sub.ID,
				PrimaryGpuName:  sub.PrimaryGpuName,
				Model:           sub.Model,
				Quantization:    sub.Quantization,
				Backend:         sub.Backend,
				TokensPerSecond: sub.TokensPerSecond,
				CreatedAt:       sub.CreatedAt,
			}
		}),
	}
	if entity != nil {
		resp.SubmissionCount = entity.SubmissionCount
		resp.AvgTokensPerSecond = entity.AvgTokensPerSecond
	}
	resputil.Success(c, resp)
}
