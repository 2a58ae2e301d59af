package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BinSquare/inferbench/internal/aggregate"
	"github.com/BinSquare/inferbench/internal/payload"
	"github.com/BinSquare/inferbench/pkg/scoring"
)

func TestPaginate(t *testing.T) {
	entries := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, paginate(entries, payload.Page{Limit: 2, Offset: 0}))
	assert.Equal(t, []int{3, 4}, paginate(entries, payload.Page{Limit: 2, Offset: 2}))
	assert.Equal(t, []int{5}, paginate(entries, payload.Page{Limit: 2, Offset: 4}))
	assert.Empty(t, paginate(entries, payload.Page{Limit: 2, Offset: 5}))
	assert.Empty(t, paginate(entries, payload.Page{Limit: 2, Offset: 100}))
	assert.Equal(t, entries, paginate(entries, payload.Page{Limit: 50, Offset: 0}))
}

func TestRankByThroughput(t *testing.T) {
	stats := []aggregate.EntityStats{
		{Name: "NVIDIA RTX 4090", SubmissionCount: 10, AvgTokensPerSecond: 120},
		{Name: "NVIDIA RTX 4080", SubmissionCount: 5, AvgTokensPerSecond: 95},
		{Name: "NVIDIA RTX 3090", SubmissionCount: 8, AvgTokensPerSecond: 80},
	}

	rank, total, entity := rankByThroughput(stats, "NVIDIA RTX 4090", 10)
	require.NotNil(t, entity)
	assert.Equal(t, 1, rank)
	assert.Equal(t, 10, total)
	assert.Equal(t, int64(10), entity.SubmissionCount)
	assert.Equal(t, 90, scoring.Percentile(rank, total))

	rank, _, _ = rankByThroughput(stats, "NVIDIA RTX 3090", 10)
	assert.Equal(t, 3, rank)

	// A catalog entity nobody has benchmarked ranks at the bottom; its
	// percentile must stay below every ranked entity's.
	rank, total, entity = rankByThroughput(stats, "NVIDIA RTX 2060", 10)
	assert.Nil(t, entity)
	assert.Equal(t, 10, rank)
	assert.Equal(t, 10, total)
	assert.Equal(t, 0, scoring.Percentile(rank, total))

	// The denominator never shrinks below the number of ranked entities.
	_, total, _ = rankByThroughput(stats, "NVIDIA RTX 4090", 0)
	assert.Equal(t, 3, total)

	rank, total, _ = rankByThroughput(nil, "anything", 0)
	assert.Equal(t, 1, rank)
	assert.Equal(t, 1, total)
	assert.Equal(t, 0, scoring.Percentile(rank, total))
}

func TestRound2(t *testing.T) {
	assert.InDelta(t, 84.52, round2(84.5151), 1e-9)
	assert.InDelta(t, 84.52, round2(84.515), 1e-9)
	assert.InDelta(t, 0.0, round2(0), 1e-9)
}

func TestTrimmedReason(t *testing.T) {
	assert.Equal(t, "", trimmedReason(nil))
	assert.Equal(t, "looks wrong", trimmedReason(lo.ToPtr("  looks wrong \n")))
}

// Validation in the vote and compare handlers runs before any database
// access, so these paths are testable against a manager with a nil DB.

func TestVoteRejectsInvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mgr := &SubmissionMgr{name: "submissions"}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}
	c.Request = httptest.NewRequest(http.MethodPost, "/v1/submissions/not-a-uuid/vote",
		strings.NewReader(`{"type":"validate"}`))

	mgr.Vote(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid submission ID format")
}

func TestVoteRejectsShortQuestionReason(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mgr := &SubmissionMgr{name: "submissions"}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "7d3f8b9e-4c2a-4f1e-9d6b-8a5c3e2f1a0b"}}
	c.Request = httptest.NewRequest(http.MethodPost, "/v1/submissions/x/vote",
		strings.NewReader(`{"type":"question","reason":"   too short   "}`))
	c.Request.Header.Set("Content-Type", "application/json")

	mgr.Vote(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "reason")
}

func TestCompareGpusRejectsBadNameCounts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mgr := &GpuMgr{name: "gpus"}

	cases := []struct {
		query   string
		message string
	}{
		{"names=NVIDIA+RTX+4090", "At least 2 GPU names are required"},
		{"names=a&names=b&names=c&names=d&names=e", "Maximum 4 GPUs can be compared at once"},
		{"names=NVIDIA+RTX+4090&names=", "Invalid GPU name provided"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/v1/gpus/compare?"+tc.query, http.NoBody)

		mgr.CompareGpus(c)

		assert.Equal(t, http.StatusBadRequest, w.Code, tc.query)
		assert.Contains(t, w.Body.String(), tc.message, tc.query)
	}
}
