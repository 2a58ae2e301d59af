package payload

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParsePageDefaults(t *testing.T) {
	page := ParsePage(queryContext(t, ""))
	assert.Equal(t, 50, page.Limit)
	assert.Equal(t, 0, page.Offset)
}

func TestParsePageClampsAndRecovers(t *testing.T) {
	// Values clamp to the bounds instead of failing the request.
	page := ParsePage(queryContext(t, "limit=5000&offset=-3"))
	assert.Equal(t, 100, page.Limit)
	assert.Equal(t, 0, page.Offset)

	// Garbage falls back to the defaults.
	page = ParsePage(queryContext(t, "limit=abc&offset=xyz"))
	assert.Equal(t, 50, page.Limit)
	assert.Equal(t, 0, page.Offset)

	page = ParsePage(queryContext(t, "limit=25&offset=75"))
	assert.Equal(t, 25, page.Limit)
	assert.Equal(t, 75, page.Offset)
}

func TestParseSort(t *testing.T) {
	assert.Equal(t, "value", ParseSort(queryContext(t, "sort=value"), "performance", "value"))
	assert.Equal(t, "performance", ParseSort(queryContext(t, "sort=bogus"), "performance", "value"))
	assert.Equal(t, "performance", ParseSort(queryContext(t, ""), "performance", "value"))
}

func TestSubmissionValidateRequiresHardware(t *testing.T) {
	req := SubmissionReq{}
	fields := req.Validate()
	require.Len(t, fields, 1)
	assert.Equal(t, "hardware", fields[0].Field)

	req.Hardware.Cpu = &CpuReq{Model: "AMD Ryzen 9 7950X", Vendor: "AMD", Cores: 16, Threads: 32}
	assert.Empty(t, req.Validate())

	req.Hardware.Cpu = nil
	req.Hardware.Gpus = []GpuEntryReq{{Name: "NVIDIA RTX 4090", Vendor: "NVIDIA", VramMb: lo.ToPtr(24576), Quantity: 1}}
	assert.Empty(t, req.Validate())
}

func TestVoteValidate(t *testing.T) {
	// Validate votes never require a reason.
	vote := VoteReq{Type: "validate"}
	assert.Empty(t, vote.Validate())

	// Question votes need a substantive trimmed reason.
	vote = VoteReq{Type: "question"}
	require.Len(t, vote.Validate(), 1)

	vote = VoteReq{Type: "question", Reason: lo.ToPtr("   too short   ")}
	require.Len(t, vote.Validate(), 1)

	vote = VoteReq{Type: "question", Reason: lo.ToPtr("numbers look impossible for this hardware")}
	assert.Empty(t, vote.Validate())
}

func TestSafeParseInt(t *testing.T) {
	assert.Equal(t, 50, SafeParseInt("", 50, 1, 100))
	assert.Equal(t, 50, SafeParseInt("nope", 50, 1, 100))
	assert.Equal(t, 1, SafeParseInt("-10", 50, 1, 100))
	assert.Equal(t, 100, SafeParseInt("9999", 50, 1, 100))
	assert.Equal(t, 42, SafeParseInt("42", 50, 1, 100))
}
