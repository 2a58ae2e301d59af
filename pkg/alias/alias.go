// Package alias normalizes the many spellings submitters use for the same
// piece of hardware or the same model into one canonical catalog name, so
// that aggregation groups variant rows into a single bucket.
package alias

import "strings"

// Resolver maps variant names to canonical names via a fixed forward table.
// The inverse (canonical name to all of its variants) is derived once at
// construction; the resolver is immutable afterwards and safe for concurrent
// use.
type Resolver struct {
	forward map[string]string
	inverse map[string][]string

	// Model names get an extra case-insensitive pass over the alias table,
	// GPU names do not. Grouping by raw GPU strings has always been exact.
	caseInsensitive bool
	lowerForward    map[string]string
}

func newResolver(forward map[string]string, caseInsensitive bool) *Resolver {
	r := &Resolver{
		forward:         forward,
		inverse:         make(map[string][]string),
		caseInsensitive: caseInsensitive,
	}
	for variant, canonical := range forward {
		r.inverse[canonical] = append(r.inverse[canonical], variant)
	}
	if caseInsensitive {
		r.lowerForward = make(map[string]string, len(forward))
		for variant, canonical := range forward {
			r.lowerForward[strings.ToLower(variant)] = canonical
		}
	}
	return r
}

// Canonical resolves a raw name to its canonical form. A name with no alias
// entry is its own canonical form.
func (r *Resolver) Canonical(raw string) string {
	if canonical, ok := r.forward[raw]; ok {
		return canonical
	}
	if r.caseInsensitive {
		if canonical, ok := r.lowerForward[strings.ToLower(raw)]; ok {
			return canonical
		}
	}
	return raw
}

// Variants returns the canonical form of raw plus every known alias of that
// canonical name. The canonical name is always the first element.
func (r *Resolver) Variants(raw string) []string {
	canonical := r.Canonical(raw)
	variants := make([]string, 0, 1+len(r.inverse[canonical]))
	variants = append(variants, canonical)
	variants = append(variants, r.inverse[canonical]...)
	return variants
}

// NewGpuResolver returns the resolver for GPU names. Matching is exact.
func NewGpuResolver() *Resolver {
	return newResolver(gpuAliases, false)
}

// NewModelResolver returns the resolver for model names. Matching is exact
// first, then falls back to a case-insensitive lookup.
func NewModelResolver() *Resolver {
	return newResolver(modelAliases, true)
}

// gpuAliases maps variant GPU spellings to catalog names. Authored one
// direction only; keep values in sync with the catalog package.
var gpuAliases = map[string]string{
	// Marketing prefixes submitters copy from GPU-Z / nvidia-smi output.
	"NVIDIA GeForce RTX 5090":    "NVIDIA RTX 5090",
	"NVIDIA GeForce RTX 5080":    "NVIDIA RTX 5080",
	"NVIDIA GeForce RTX 5070 Ti": "NVIDIA RTX 5070 Ti",
	"NVIDIA GeForce RTX 5070":    "NVIDIA RTX 5070",
	"NVIDIA GeForce RTX 4090":    "NVIDIA RTX 4090",
	"NVIDIA GeForce RTX 4080":    "NVIDIA RTX 4080",
	"NVIDIA GeForce RTX 4070 Ti": "NVIDIA RTX 4070 Ti",
	"NVIDIA GeForce RTX 4070":    "NVIDIA RTX 4070",
	"NVIDIA GeForce RTX 4060":    "NVIDIA RTX 4060",
	"NVIDIA GeForce RTX 3090 Ti": "NVIDIA RTX 3090 Ti",
	"NVIDIA GeForce RTX 3090":    "NVIDIA RTX 3090",
	"NVIDIA GeForce RTX 3080 Ti": "NVIDIA RTX 3080 Ti",
	"NVIDIA GeForce RTX 3070":    "NVIDIA RTX 3070",
	"NVIDIA GeForce RTX 3060 Ti": "NVIDIA RTX 3060 Ti",

	// Bare names without the vendor prefix.
	"RTX 5090": "NVIDIA RTX 5090",
	"RTX 4090": "NVIDIA RTX 4090",
	"RTX 4080": "NVIDIA RTX 4080",
	"RTX 3090": "NVIDIA RTX 3090",

	// Memory-size suffix variants.
	"NVIDIA GeForce RTX 4080 SUPER": "NVIDIA RTX 4080 SUPER",
	"NVIDIA RTX 4060 Ti":            "NVIDIA RTX 4060 Ti 8GB",
	"NVIDIA GeForce RTX 4060 Ti":    "NVIDIA RTX 4060 Ti 8GB",
	"NVIDIA RTX 3080":               "NVIDIA RTX 3080 10GB",
	"NVIDIA GeForce RTX 3080":       "NVIDIA RTX 3080 10GB",
	"NVIDIA RTX 3060":               "NVIDIA RTX 3060 12GB",
	"NVIDIA GeForce RTX 3060":       "NVIDIA RTX 3060 12GB",
	"NVIDIA H100":                   "NVIDIA H100 80GB",
	"NVIDIA H100 SXM":               "NVIDIA H100 80GB",
	"NVIDIA A100":                   "NVIDIA A100 80GB",
	"NVIDIA A100-SXM4-80GB":         "NVIDIA A100 80GB",
	"NVIDIA A100-SXM4-40GB":         "NVIDIA A100 40GB",
	"NVIDIA RTX A6000":              "NVIDIA A6000",
	"NVIDIA RTX A5000":              "NVIDIA A5000",
	"NVIDIA RTX A4000":              "NVIDIA A4000",
	"Intel Arc A770":                "Intel Arc A770 16GB",

	// AMD Radeon marketing prefixes.
	"AMD Radeon RX 9070 XT":  "AMD RX 9070 XT",
	"AMD Radeon RX 7900 XTX": "AMD RX 7900 XTX",
	"AMD Radeon RX 7900 XT":  "AMD RX 7900 XT",
	"AMD Radeon RX 7800 XT":  "AMD RX 7800 XT",
	"AMD Radeon RX 6900 XT":  "AMD RX 6900 XT",
	"AMD Radeon RX 6800 XT":  "AMD RX 6800 XT",
	"Radeon RX 7900 XTX":     "AMD RX 7900 XTX",
	"AMD Radeon PRO W7900":   "AMD W7900",
	"AMD Instinct MI300X":    "AMD MI300X",
	"AMD Instinct MI250X":    "AMD MI250X",
}

// modelAliases maps variant model spellings to catalog names. Hugging Face
// repo ids are the canonical form.
var modelAliases = map[string]string{
	"Llama-3.3-70B-Instruct":     "meta-llama/Llama-3.3-70B-Instruct",
	"llama-3.3-70b":              "meta-llama/Llama-3.3-70B-Instruct",
	"Llama-3.1-8B-Instruct":      "meta-llama/Llama-3.1-8B-Instruct",
	"llama-3.1-8b":               "meta-llama/Llama-3.1-8B-Instruct",
	"Llama-3.1-70B-Instruct":     "meta-llama/Llama-3.1-70B-Instruct",
	"llama-3.1-70b":              "meta-llama/Llama-3.1-70B-Instruct",
	"Llama-3.1-405B-Instruct":    "meta-llama/Llama-3.1-405B-Instruct",
	"Llama-3-8B-Instruct":        "meta-llama/Meta-Llama-3-8B-Instruct",
	"llama3:8b":                  "meta-llama/Meta-Llama-3-8B-Instruct",
	"llama3:70b":                 "meta-llama/Meta-Llama-3-70B-Instruct",
	"gpt-oss-120b":               "openai/gpt-oss-120b",
	"gpt-oss:120b":               "openai/gpt-oss-120b",
	"gpt-oss-20b":                "openai/gpt-oss-20b",
	"gpt-oss:20b":                "openai/gpt-oss-20b",
	"DeepSeek-V3":                "deepseek-ai/DeepSeek-V3",
	"deepseek-v3":                "deepseek-ai/DeepSeek-V3",
	"Qwen2.5-72B-Instruct":       "Qwen/Qwen2.5-72B-Instruct",
	"qwen2.5:72b":                "Qwen/Qwen2.5-72B-Instruct",
	"Qwen2.5-32B-Instruct":       "Qwen/Qwen2.5-32B-Instruct",
	"qwen2.5:32b":                "Qwen/Qwen2.5-32B-Instruct",
	"Qwen2.5-7B-Instruct":        "Qwen/Qwen2.5-7B-Instruct",
	"qwen2.5:7b":                 "Qwen/Qwen2.5-7B-Instruct",
	"Qwen2.5-Coder-32B-Instruct": "Qwen/Qwen2.5-Coder-32B-Instruct",
	"qwen2.5-coder:32b":          "Qwen/Qwen2.5-Coder-32B-Instruct",
	"QwQ-32B-Preview":            "Qwen/QwQ-32B-Preview",
	"Mixtral-8x7B-Instruct-v0.1": "mistralai/Mixtral-8x7B-Instruct-v0.1",
	"mixtral:8x7b":               "mistralai/Mixtral-8x7B-Instruct-v0.1",
	"Mistral-7B-Instruct-v0.3":   "mistralai/Mistral-7B-Instruct-v0.3",
	"mistral:7b":                 "mistralai/Mistral-7B-Instruct-v0.3",
	"Mistral-Nemo-Instruct-2407": "mistralai/Mistral-Nemo-Instruct-2407",
	"phi-4":                      "microsoft/phi-4",
	"phi4":                       "microsoft/phi-4",
	"Phi-3.5-mini-instruct":      "microsoft/Phi-3.5-mini-instruct",
	"phi3.5":                     "microsoft/Phi-3.5-mini-instruct",
	"gemma-2-27b-it":             "google/gemma-2-27b-it",
	"gemma2:27b":                 "google/gemma-2-27b-it",
	"gemma-2-9b-it":              "google/gemma-2-9b-it",
	"gemma2:9b":                  "google/gemma-2-9b-it",
}
