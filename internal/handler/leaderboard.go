package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/BinSquare/inferbench/dao/model"
	"github.com/BinSquare/inferbench/internal/payload"
	"github.com/BinSquare/inferbench/internal/resputil"
	"github.com/BinSquare/inferbench/pkg/scoring"
)

// Value sort needs cost scores for every candidate row before ordering, so
// it fetches a bounded window and sorts in memory.
const maxValueSortRows = 500

//nolint:gochecknoinits // register the manager
func init() {
	Registers = append(Registers, NewLeaderboardMgr)
}

type LeaderboardMgr struct {
	name string
	db   *gorm.DB
}

func NewLeaderboardMgr(conf *RegisterConfig) Manager {
	return &LeaderboardMgr{name: "leaderboard", db: conf.DB}
}

func (mgr *LeaderboardMgr) GetName() string { return mgr.name }

func (mgr *LeaderboardMgr) RegisterPublic(g *gin.RouterGroup) {
	g.GET("", mgr.GetLeaderboard)
}

type (
	LeaderboardGpuResp struct {
		Name         string  `json:"name"`
		Vendor       string  `json:"vendor"`
		VramMb       int     `json:"vram_mb"`
		Quantity     int     `json:"quantity"`
		Interconnect *string `json:"interconnect"`
	}

	LeaderboardEntryResp struct {
		SubmissionID  uuid.UUID            `json:"submission_id"`
		Rank          int                  `json:"rank"`
		GpuName       *string              `json:"gpu_name"`
		TotalGpuCount int                  `json:"total_gpu_count"`
		TotalVramMb   int                  `json:"total_vram_mb"`
		Gpus          []LeaderboardGpuResp `json:"gpus"`
		CpuName       *string              `json:"cpu_name"`
		RamMb         *int                 `json:"ram_mb"`

		Model            string   `json:"model"`
		ModelParametersB *float64 `json:"model_parameters_b"`
		Quantization     *string  `json:"quantization"`
		Backend          string   `json:"backend"`

		TokensPerSecond float64   `json:"tokens_per_second"`
		CreatedAt       time.Time `json:"created_at"`

		IsUnifiedSoc       bool     `json:"is_unified_soc"`
		GpuMsrpUsd         *int     `json:"gpu_msrp_usd"`
		CpuMsrpUsd         *int     `json:"cpu_msrp_usd"`
		RamCostUsd         int      `json:"ram_cost_usd"`
		TotalSystemCostUsd *int     `json:"total_system_cost_usd"`
		ValueScore         *float64 `json:"value_score"`
	}
)

// GetLeaderboard godoc
// @Summary Per-submission leaderboard with cost breakdowns
// @Description Sortable by throughput, recency, or throughput per dollar of estimated system cost
// @Tags leaderboard
// @Produce json
// @Param model query string false "filter by model"
// @Param backend query string false "filter by backend"
// @Param sort query string false "tokens_per_second | created_at | value"
// @Success 200 {object} resputil.Response[[]LeaderboardEntryResp]
// @Router /v1/leaderboard [get]
func (mgr *LeaderboardMgr) GetLeaderboard(c *gin.Context) {
	modelFilter := c.Query("model")
	backendFilter := c.Query("backend")
	sort := payload.ParseSort(c, "tokens_per_second", "created_at", "value")
	page := payload.ParsePage(c)

	valueSort := sort == "value"

	q := mgr.db.WithContext(c).Preload("Gpus")
	if modelFilter != "" {
		q = q.Where("model = ?", modelFilter)
	}
	if backendFilter != "" {
		q = q.Where("backend = ?", backendFilter)
	}
	if sort == "created_at" {
		q = q.Order("created_at DESC")
	} else {
		q = q.Order("tokens_per_second DESC")
	}
	if valueSort {
		q = q.Limit(maxValueSortRows)
	} else {
		q = q.Limit(page.Limit).Offset(page.Offset)
	}

	var subs []model.Submission
	if err := q.Find(&subs).Error; err != nil {
		resputil.Error(c, fmt.Sprintf("failed to load leaderboard: %v", err), resputil.NotSpecified)
		return
	}

	entries := lo.Map(subs, func(sub model.Submission, _ int) LeaderboardEntryResp {
		costs := scoring.ComputeCosts(
			sub.PrimaryGpuName,
			lo.Map(sub.Gpus, func(g model.SubmissionGpu, _ int) scoring.GpuLineItem {
				return scoring.GpuLineItem{Name: g.GpuName, Quantity: g.Quantity}
			}),
			sub.CpuName,
			sub.RamMb,
			sub.TokensPerSecond,
		)

		return LeaderboardEntryResp{
			SubmissionID:  sub.ID,
			GpuName:       sub.PrimaryGpuName,
			TotalGpuCount: sub.TotalGpuCount,
			TotalVramMb:   sub.TotalVramMb,
			Gpus: lo.Map(sub.Gpus, func(g model.SubmissionGpu, _ int) LeaderboardGpuResp {
				return LeaderboardGpuResp{
					Name:         g.GpuName,
					Vendor:       g.GpuVendor,
					VramMb:       g.GpuVramMb,
					Quantity:     g.Quantity,
					Interconnect: g.Interconnect,
				}
			}),
			CpuName: sub.CpuName,
			RamMb:   sub.RamMb,

			Model:            sub.Model,
			ModelParametersB: sub.ModelParametersB,
			Quantization:     sub.Quantization,
			Backend:          sub.Backend,

			TokensPerSecond: sub.TokensPerSecond,
			CreatedAt:       sub.CreatedAt,

			IsUnifiedSoc:       costs.IsUnifiedSoC,
			GpuMsrpUsd:         costs.GpuMsrpUsd,
			CpuMsrpUsd:         costs.CpuMsrpUsd,
			RamCostUsd:         costs.RamCostUsd,
			TotalSystemCostUsd: costs.TotalSystemCostUsd,
			ValueScore:         costs.ValueScore,
		}
	})

	if valueSort {
		scoring.SortByValueDesc(entries, func(e LeaderboardEntryResp) *float64 { return e.ValueScore })
		entries = paginate(entries, page)
	}

	for i := range entries {
		entries[i].Rank = scoring.Rank(page.Offset, i)
	}
	resputil.Success(c, entries)
}
