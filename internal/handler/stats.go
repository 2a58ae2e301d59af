package handler

import (
	"fmt"
	"math"
	"sort"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BinSquare/inferbench/dao/model"
	"github.com/BinSquare/inferbench/internal/aggregate"
	"github.com/BinSquare/inferbench/internal/resputil"
)

//nolint:gochecknoinits // register the manager
func init() {
	Registers = append(Registers, NewStatsMgr)
}

type StatsMgr struct {
	name   string
	db     *gorm.DB
	engine *aggregate.Engine
}

func NewStatsMgr(conf *RegisterConfig) Manager {
	return &StatsMgr{
		name:   "stats",
		db:     conf.DB,
		engine: aggregate.NewEngine(conf.DB),
	}
}

func (mgr *StatsMgr) GetName() string { return mgr.name }

func (mgr *StatsMgr) RegisterPublic(g *gin.RouterGroup) {
	g.GET("", mgr.GetStats)
}

type (
	TopPerformerResp struct {
		Gpu             string  `json:"gpu"`
		TokensPerSecond float64 `json:"tokens_per_second"`
	}

	StatsResp struct {
		TotalSubmissions       int64              `json:"total_submissions"`
		TotalGpus              int64              `json:"total_gpus"`
		TotalCpus              int64              `json:"total_cpus"`
		AverageTokensPerSecond float64            `json:"average_tokens_per_second"`
		TopPerformers          []TopPerformerResp `json:"top_performers"`
	}
)

// GetStats godoc
// @Summary Site-wide submission statistics
// @Tags stats
// @Produce json
// @Success 200 {object} resputil.Response[StatsResp]
// @Router /v1/stats [get]
func (mgr *StatsMgr) GetStats(c *gin.Context) {
	var resp StatsResp

	db := mgr.db.WithContext(c)
	if err := db.Model(&model.Submission{}).Count(&resp.TotalSubmissions).Error; err != nil {
		resputil.Error(c, fmt.Sprintf("failed to count submissions: %v", err), resputil.NotSpecified)
		return
	}

	gpuStats, err := mgr.engine.GpuStats(c)
	if err != nil {
		resputil.Error(c, fmt.Sprintf("failed to aggregate gpus: %v", err), resputil.NotSpecified)
		return
	}
	resp.TotalGpus = int64(len(gpuStats))

	cpuStats, err := mgr.engine.CpuStats(c)
	if err != nil {
		resputil.Error(c, fmt.Sprintf("failed to aggregate cpus: %v", err), resputil.NotSpecified)
		return
	}
	resp.TotalCpus = int64(len(cpuStats))

	if resp.TotalSubmissions > 0 {
		var avg float64
		err = db.Model(&model.Submission{}).
			Select("AVG(tokens_per_second)").
			Scan(&avg).Error
		if err != nil {
			resputil.Error(c, fmt.Sprintf("failed to average throughput: %v", err), resputil.NotSpecified)
			return
		}
		resp.AverageTokensPerSecond = round2(avg)
	}

	// Top five GPUs by merged average throughput.
	top := gpuStats
	sort.Slice(top, func(i, j int) bool {
		return top[i].AvgTokensPerSecond > top[j].AvgTokensPerSecond
	})
	if len(top) > 5 {
		top = top[:5]
	}
	resp.TopPerformers = make([]TopPerformerResp, 0, len(top))
	for _, g := range top {
		resp.TopPerformers = append(resp.TopPerformers, TopPerformerResp{
			Gpu:             g.Name,
			TokensPerSecond: round2(g.AvgTokensPerSecond),
		})
	}

	resputil.Success(c, resp)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
