package alias

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGpuCanonical(t *testing.T) {
	r := NewGpuResolver()

	assert.Equal(t, "NVIDIA RTX 4090", r.Canonical("NVIDIA GeForce RTX 4090"))
	assert.Equal(t, "NVIDIA RTX 4090", r.Canonical("RTX 4090"))
	assert.Equal(t, "NVIDIA RTX 4090", r.Canonical("NVIDIA RTX 4090"))

	// Unknown names are their own canonical form.
	assert.Equal(t, "Some Custom GPU", r.Canonical("Some Custom GPU"))
}

func TestGpuCanonicalIsCaseSensitive(t *testing.T) {
	r := NewGpuResolver()

	// GPU matching is exact; a lowercased alias does not resolve.
	assert.Equal(t, "nvidia geforce rtx 4090", r.Canonical("nvidia geforce rtx 4090"))
}

func TestGpuVariants(t *testing.T) {
	r := NewGpuResolver()

	variants := r.Variants("NVIDIA GeForce RTX 4090")
	assert.Equal(t, "NVIDIA RTX 4090", variants[0])
	assert.Contains(t, variants, "NVIDIA GeForce RTX 4090")
	assert.Contains(t, variants, "RTX 4090")

	// Querying by canonical or by variant yields the same set.
	assert.ElementsMatch(t, variants, r.Variants("RTX 4090"))
}

func TestGpuVariantsUnknownName(t *testing.T) {
	r := NewGpuResolver()

	assert.Equal(t, []string{"Some Custom GPU"}, r.Variants("Some Custom GPU"))
}

func TestModelCanonicalFallsBackCaseInsensitive(t *testing.T) {
	r := NewModelResolver()

	assert.Equal(t, "microsoft/phi-4", r.Canonical("phi-4"))
	assert.Equal(t, "microsoft/phi-4", r.Canonical("PHI-4"))
	assert.Equal(t, "Qwen/Qwen2.5-72B-Instruct", r.Canonical("QWEN2.5:72B"))

	// Exact entries still win over the case-insensitive pass.
	assert.Equal(t, "openai/gpt-oss-120b", r.Canonical("gpt-oss-120b"))
}

func TestModelVariants(t *testing.T) {
	r := NewModelResolver()

	variants := r.Variants("llama3:8b")
	assert.Equal(t, "meta-llama/Meta-Llama-3-8B-Instruct", variants[0])
	assert.Contains(t, variants, "Llama-3-8B-Instruct")
	assert.Contains(t, variants, "llama3:8b")
}
