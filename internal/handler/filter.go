package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BinSquare/inferbench/dao/model"
	"github.com/BinSquare/inferbench/internal/resputil"
)

//nolint:gochecknoinits // register the manager
func init() {
	Registers = append(Registers, NewFilterMgr)
}

// FilterMgr serves the distinct-value lists the frontend uses to populate
// its filter dropdowns.
type FilterMgr struct {
	name string
	db   *gorm.DB
}

func NewFilterMgr(conf *RegisterConfig) Manager {
	return &FilterMgr{name: "filters", db: conf.DB}
}

func (mgr *FilterMgr) GetName() string { return mgr.name }

func (mgr *FilterMgr) RegisterPublic(g *gin.RouterGroup) {
	g.GET("/models", mgr.ListModelFilters)
	g.GET("/backends", mgr.ListBackendFilters)
	g.GET("/vendors", mgr.ListVendorFilters)
}

type (
	ModelFilterResp struct {
		Model string `json:"model"`
		Count int64  `json:"count"`
	}

	BackendFilterResp struct {
		Backend string `json:"backend"`
		Count   int64  `json:"count"`
	}

	VendorFilterResp struct {
		Vendor string `json:"vendor"`
		Count  int64  `json:"count"`
	}
)

// ListModelFilters godoc
// @Summary Models present in submissions, by frequency
// @Tags filter
// @Produce json
// @Success 200 {object} resputil.Response[[]ModelFilterResp]
// @Router /v1/filters/models [get]
func (mgr *FilterMgr) ListModelFilters(c *gin.Context) {
	var rows []ModelFilterResp
	err := mgr.db.WithContext(c).
		Model(&model.Submission{}).
		Select("model, COUNT(*) AS count").
		Group("model").
		Order("count DESC").
		Find(&rows).Error
	if err != nil {
		resputil.Error(c, fmt.Sprintf("failed to list model filters: %v", err), resputil.NotSpecified)
		return
	}
	resputil.Success(c, rows)
}

// ListBackendFilters godoc
// @Summary Backends present in submissions, by frequency
// @Tags filter
// @Produce json
// @Success 200 {object} resputil.Response[[]BackendFilterResp]
// @Router /v1/filters/backends [get]
func (mgr *FilterMgr) ListBackendFilters(c *gin.Context) {
	var rows []BackendFilterResp
	err := mgr.db.WithContext(c).
		Model(&model.Submission{}).
		Select("backend, COUNT(*) AS count").
		Group("backend").
		Order("count DESC").
		Find(&rows).Error
	if err != nil {
		resputil.Error(c, fmt.Sprintf("failed to list backend filters: %v", err), resputil.NotSpecified)
		return
	}
	resputil.Success(c, rows)
}

// ListVendorFilters godoc
// @Summary GPU vendors present in submissions, by frequency
// @Tags filter
// @Produce json
// @Success 200 {object} resputil.Response[[]VendorFilterResp]
// @Router /v1/filters/vendors [get]
func (mgr *FilterMgr) ListVendorFilters(c *gin.Context) {
	var rows []VendorFilterResp
	err := mgr.db.WithContext(c).
		Model(&model.SubmissionGpu{}).
		Select("gpu_vendor AS vendor, COUNT(*) AS count").
		Group("gpu_vendor").
		Order("count DESC").
		Find(&rows).Error
	if err != nil {
		resputil.Error(c, fmt.Sprintf("failed to list vendor filters: %v", err), resputil.NotSpecified)
		return
	}
	resputil.Success(c, rows)
}
