// Package plausibility estimates whether a claimed benchmark result is
// physically possible on the reported hardware. Implausible submissions are
// never rejected, only flagged for community review.
package plausibility

import (
	"fmt"
	"math"
)

// Verdict classifies how believable a submission is.
type Verdict int

const (
	Plausible Verdict = iota + 1
	Unlikely
	VeryUnlikely
)

func (v Verdict) String() string {
	switch v {
	case Plausible:
		return "plausible"
	case Unlikely:
		return "unlikely"
	case VeryUnlikely:
		return "very_unlikely"
	default:
		return "unknown"
	}
}

// bytesPerParam is the approximate weight footprint per parameter for each
// quantization format we recognize.
var bytesPerParam = map[string]float64{
	// Full precision
	"FP32": 4,
	"FP16": 2,
	"BF16": 2,

	// Integer quantization
	"INT8": 1,
	"INT4": 0.5,

	// GGUF quantization formats
	"Q8_0":   1,
	"Q6_K":   0.75,
	"Q5_K_M": 0.625,
	"Q5_K_S": 0.625,
	"Q4_K_M": 0.5,
	"Q4_K_S": 0.5,
	"Q3_K_M": 0.375,
	"Q3_K_S": 0.375,
	"Q2_K":   0.25,

	// GGUF importance quantization
	"IQ4_XS": 0.5,
	"IQ3_XS": 0.375,
	"IQ2_XS": 0.25,

	// Other formats
	"GPTQ": 0.5,
	"AWQ":  0.5,
	"EXL2": 0.5,
	"NF4":  0.5,
}

// Checker runs the VRAM sufficiency heuristic. The thresholds and the
// overhead multiplier are calibration knobs, not physics; they come from
// configuration so they can be tuned without a rebuild.
type Checker struct {
	// OverheadMultiplier inflates the raw weight footprint to cover KV
	// cache, activations and framework overhead.
	OverheadMultiplier float64
	// UnlikelyRatio is the required/available ratio above which a
	// submission is marked unlikely.
	UnlikelyRatio float64
	// VeryUnlikelyRatio is the ratio above which it is very unlikely.
	VeryUnlikelyRatio float64
	// DefaultBytesPerParam applies when the quantization is absent or
	// unrecognized (FP16 weights).
	DefaultBytesPerParam float64
}

// NewChecker returns a Checker with the default calibration.
func NewChecker() *Checker {
	return &Checker{
		OverheadMultiplier:   1.2,
		UnlikelyRatio:        1,
		VeryUnlikelyRatio:    3,
		DefaultBytesPerParam: 2,
	}
}

// Result is the outcome of a plausibility check. Reason is empty when the
// verdict is Plausible.
type Result struct {
	Verdict Verdict
	Reason  string
}

// RequiredVramMb estimates the VRAM footprint in MB for a model of the given
// size under the given quantization, including runtime overhead.
func (c *Checker) RequiredVramMb(modelParametersB float64, quantization string) int {
	bpp := c.DefaultBytesPerParam
	if quantization != "" {
		if v, ok := bytesPerParam[quantization]; ok {
			bpp = v
		}
	}
	baseVramMb := modelParametersB * 1e9 * bpp / (1024 * 1024)
	return int(math.Ceil(baseVramMb * c.OverheadMultiplier))
}

// CheckVram compares the estimated VRAM requirement against the available
// total. A ratio of exactly 1.0 is still plausible; only requirements
// strictly above the thresholds raise a flag.
func (c *Checker) CheckVram(totalVramMb int, modelParametersB float64, quantization string) Result {
	requiredVramMb := c.RequiredVramMb(modelParametersB, quantization)

	requiredVramGb := int(math.Ceil(float64(requiredVramMb) / 1024))
	availableVramGb := int(math.Ceil(float64(totalVramMb) / 1024))

	ratio := float64(requiredVramMb) / float64(totalVramMb)

	if ratio > c.VeryUnlikelyRatio {
		return Result{
			Verdict: VeryUnlikely,
			Reason: fmt.Sprintf(
				"Model requires ~%dGB VRAM but only %dGB available (%.1fx over). "+
					"This likely requires significant CPU offload which would severely impact performance.",
				requiredVramGb, availableVramGb, ratio),
		}
	}

	if ratio > c.UnlikelyRatio {
		return Result{
			Verdict: Unlikely,
			Reason: fmt.Sprintf(
				"Model requires ~%dGB VRAM but only %dGB available. Verify if CPU offload was used.",
				requiredVramGb, availableVramGb),
		}
	}

	return Result{Verdict: Plausible}
}
