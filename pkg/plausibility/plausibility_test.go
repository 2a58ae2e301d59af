package plausibility

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredVramMb(t *testing.T) {
	c := NewChecker()

	// 7B at FP16: 7e9 * 2 bytes / 1024^2 * 1.2 overhead.
	assert.Equal(t, 16022, c.RequiredVramMb(7, "FP16"))

	// Q4_K_M halves the per-parameter footprint relative to INT8.
	assert.Equal(t, 4006, c.RequiredVramMb(7, "Q4_K_M"))

	// Unknown or empty quantization falls back to FP16 weights.
	assert.Equal(t, c.RequiredVramMb(7, "FP16"), c.RequiredVramMb(7, ""))
	assert.Equal(t, c.RequiredVramMb(7, "FP16"), c.RequiredVramMb(7, "SOMETHING_NEW"))
}

func TestCheckVramBoundaries(t *testing.T) {
	c := NewChecker()

	required := c.RequiredVramMb(70, "Q4_K_M")

	// Exactly enough VRAM (ratio == 1.0) is plausible.
	res := c.CheckVram(required, 70, "Q4_K_M")
	assert.Equal(t, Plausible, res.Verdict)
	assert.Empty(t, res.Reason)

	// One MB short tips the ratio just above 1.
	res = c.CheckVram(required-1, 70, "Q4_K_M")
	assert.Equal(t, Unlikely, res.Verdict)

	// A third of the requirement (ratio just above 3) is very unlikely.
	res = c.CheckVram(required/3-1, 70, "Q4_K_M")
	assert.Equal(t, VeryUnlikely, res.Verdict)
}

func TestCheckVramReasonMessages(t *testing.T) {
	c := NewChecker()

	// 70B FP16 needs ~157GB; a 24GB card is >3x over.
	res := c.CheckVram(24576, 70, "FP16")
	assert.Equal(t, VeryUnlikely, res.Verdict)
	assert.Equal(t,
		fmt.Sprintf("Model requires ~157GB VRAM but only 24GB available (%.1fx over). "+
			"This likely requires significant CPU offload which would severely impact performance.", 6.5),
		res.Reason)

	// 70B Q4_K_M needs ~40GB; a 36GB config is mildly over.
	res = c.CheckVram(36864, 70, "Q4_K_M")
	assert.Equal(t, Unlikely, res.Verdict)
	assert.Equal(t,
		"Model requires ~40GB VRAM but only 36GB available. Verify if CPU offload was used.",
		res.Reason)
}

func TestCheckVramPlausibleFit(t *testing.T) {
	c := NewChecker()

	// 8B Q4_K_M fits comfortably in 24GB.
	res := c.CheckVram(24576, 8, "Q4_K_M")
	assert.Equal(t, Plausible, res.Verdict)
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "plausible", Plausible.String())
	assert.Equal(t, "unlikely", Unlikely.String())
	assert.Equal(t, "very_unlikely", VeryUnlikely.String())
}
