package handler

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BinSquare/inferbench/dao/model"
	"github.com/BinSquare/inferbench/internal/ingest"
	"github.com/BinSquare/inferbench/internal/payload"
	"github.com/BinSquare/inferbench/internal/resputil"
	"github.com/BinSquare/inferbench/pkg/metrics"
)

//nolint:gochecknoinits // register the manager
func init() {
	Registers = append(Registers, NewSubmissionMgr)
}

type SubmissionMgr struct {
	name     string
	db       *gorm.DB
	ingestor *ingest.Ingestor
}

func NewSubmissionMgr(conf *RegisterConfig) Manager {
	return &SubmissionMgr{
		name:     "submissions",
		db:       conf.DB,
		ingestor: ingest.NewIngestor(conf.DB),
	}
}

func (mgr *SubmissionMgr) GetName() string { return mgr.name }

func (mgr *SubmissionMgr) RegisterPublic(g *gin.RouterGroup) {
	g.POST("", mgr.CreateSubmission)
	g.GET("", mgr.ListSubmissions)
	g.GET("/latest", mgr.ListLatest)
	g.POST("/:id/vote", mgr.Vote)
}

type (
	CreateSubmissionResp struct {
		Success       bool      `json:"success"`
		SubmissionID  uuid.UUID `json:"submission_id"`
		TotalGpuCount int       `json:"total_gpu_count"`
		TotalVramMb   int       `json:"total_vram_mb"`
		Flagged       bool      `json:"flagged"`
		FlagReason    *string   `json:"flag_reason,omitempty"`
	}

	LatestSubmissionResp struct {
		ID              uuid.UUID `json:"id"`
		PrimaryGpuName  *string   `json:"primary_gpu_name"`
		CpuName         *string   `json:"cpu_name"`
		Model           string    `json:"model"`
		Backend         string    `json:"backend"`
		Quantization    *string   `json:"quantization"`
		ContextLength   *int      `json:"context_length"`
		TokensPerSecond float64   `json:"tokens_per_second"`
		CreatedAt       time.Time `json:"created_at"`
		ValidationCount int       `json:"validation_count"`
		QuestionCount   int       `json:"question_count"`
		SourceURL       *string   `json:"source_url"`
	}

	VoteResp struct {
		Success         bool `json:"success"`
		ValidationCount int  `json:"validation_count"`
		QuestionCount   int  `json:"question_count"`
	}
)

// CreateSubmission godoc
// @Summary Submit a benchmark result
// @Description Validates and persists a benchmark run; implausible results are accepted but flagged
// @Tags submission
// @Accept json
// @Produce json
// @Param data body payload.SubmissionReq true "benchmark submission"
// @Success 200 {object} resputil.Response[CreateSubmissionResp]
// @Failure 400 {object} resputil.Response[resputil.ValidationErrors]
// @Router /v1/submissions [post]
func (mgr *SubmissionMgr) CreateSubmission(c *gin.Context) {
	var req payload.SubmissionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.InvalidRequestWithFields(c, payload.BindingErrors(err))
		return
	}
	if fields := req.Validate(); len(fields) > 0 {
		resputil.InvalidRequestWithFields(c, fields)
		return
	}

	result, err := mgr.ingestor.Ingest(c, &req)
	if err != nil {
		resputil.Error(c, "internal error", resputil.NotSpecified)
		return
	}

	resp := CreateSubmissionResp{
		Success:       true,
		SubmissionID:  result.ID,
		TotalGpuCount: result.TotalGpuCount,
		TotalVramMb:   result.TotalVramMb,
		Flagged:       result.Flagged,
	}
	if result.Flagged {
		resp.FlagReason = &result.FlagReason
	}
	resputil.Success(c, resp)
}

// ListSubmissions godoc
// @Summary List submissions by throughput
// @Description Returns submissions with their GPU line items, fastest first
// @Tags submission
// @Produce json
// @Success 200 {object} resputil.Response[[]model.Submission]
// @Router /v1/submissions [get]
func (mgr *SubmissionMgr) ListSubmissions(c *gin.Context) {
	page := payload.ParsePage(c)

	var subs []model.Submission
	err := mgr.db.WithContext(c).
		Preload("Gpus").
		Order("tokens_per_second DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&subs).Error
	if err != nil {
		resputil.Error(c, fmt.Sprintf("failed to list submissions: %v", err), resputil.NotSpecified)
		return
	}
	resputil.Success(c, subs)
}

// ListLatest godoc
// @Summary List the most recent submissions
// @Tags submission
// @Produce json
// @Success 200 {object} resputil.Response[[]LatestSubmissionResp]
// @Router /v1/submissions/latest [get]
func (mgr *SubmissionMgr) ListLatest(c *gin.Context) {
	page := payload.ParsePage(c)

	var subs []model.Submission
	err := mgr.db.WithContext(c).
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&subs).Error
	if err != nil {
		resputil.Error(c, fmt.Sprintf("failed to list submissions: %v", err), resputil.NotSpecified)
		return
	}

	entries := make([]LatestSubmissionResp, 0, len(subs))
	for _, sub := range subs {
		entries = append(entries, LatestSubmissionResp{
			ID:              sub.ID,
			PrimaryGpuName:  sub.PrimaryGpuName,
			CpuName:         sub.CpuName,
			Model:           sub.Model,
			Backend:         sub.Backend,
			Quantization:    sub.Quantization,
			ContextLength:   sub.ContextLength,
			TokensPerSecond: sub.TokensPerSecond,
			CreatedAt:       sub.CreatedAt,
			ValidationCount: sub.ValidationCount,
			QuestionCount:   sub.QuestionCount,
			SourceURL:       sub.SourceURL,
		})
	}
	resputil.Success(c, entries)
}

// Vote godoc
// @Summary Cast community feedback on a submission
// @Description A validate vote increments the counter; a question vote also records the reason for review
// @Tags submission
// @Accept json
// @Produce json
// @Param id path string true "submission id"
// @Param data body payload.VoteReq true "vote"
// @Success 200 {object} resputil.Response[VoteResp]
// @Failure 400 {object} resputil.Response[resputil.ValidationErrors]
// @Failure 404 {object} resputil.Response[any]
// @Router /v1/submissions/{id}/vote [post]
func (mgr *SubmissionMgr) Vote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		resputil.BadRequestError(c, "Invalid submission ID format")
		return
	}

	var req payload.VoteReq
	if err = c.ShouldBindJSON(&req); err != nil {
		resputil.InvalidRequestWithFields(c, payload.BindingErrors(err))
		return
	}
	if fields := req.Validate(); len(fields) > 0 {
		resputil.InvalidRequestWithFields(c, fields)
		return
	}

	var sub model.Submission
	err = mgr.db.WithContext(c).Select("id").First(&sub, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resputil.NotFoundError(c, "Submission not found")
		return
	}
	if err != nil {
		resputil.Error(c, fmt.Sprintf("failed to load submission: %v", err), resputil.NotSpecified)
		return
	}

	// Increment in SQL so concurrent votes never lose updates.
	err = mgr.db.WithContext(c).Transaction(func(tx *gorm.DB) error {
		if model.VoteType(req.Type) == model.VoteValidate {
			return tx.Model(&model.Submission{}).
				Where("id = ?", id).
				UpdateColumn("validation_count", gorm.Expr("validation_count + 1")).Error
		}
		question := model.SubmissionQuestion{
			SubmissionID: id,
			Reason:       trimmedReason(req.Reason),
		}
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		return tx.Model(&model.Submission{}).
			Where("id = ?", id).
			UpdateColumn("question_count", gorm.Expr("question_count + 1")).Error
	})
	if err != nil {
		resputil.Error(c, fmt.Sprintf("failed to record vote: %v", err), resputil.NotSpecified)
		return
	}

	metrics.VotesCast.WithLabelValues(req.Type).Inc()

	var updated model.Submission
	if err = mgr.db.WithContext(c).Select("validation_count", "question_count").
		First(&updated, "id = ?", id).Error; err != nil {
		resputil.Error(c, fmt.Sprintf("failed to load counts: %v", err), resputil.NotSpecified)
		return
	}
	resputil.Success(c, VoteResp{
		Success:         true,
		ValidationCount: updated.ValidationCount,
		QuestionCount:   updated.QuestionCount,
	})
}

func trimmedReason(reason *string) string {
	if reason == nil {
		return ""
	}
	return strings.TrimSpace(*reason)
}
