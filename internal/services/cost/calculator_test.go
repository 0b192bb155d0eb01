package cost

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateCost(t *testing.T) {
	calculator := NewCalculator()

	tests := []struct {
		name         string
		provider     string
		model        string
		inputTokens  int
		outputTokens int
		expected     float64
	}{
		{
			name:         "gemini flash",
			provider:     "gemini",
			model:        "gemini-2.5-flash",
			inputTokens:  1_000_000,
			outputTokens: 1_000_000,
			expected:     0.50,
		},
		{
			name:         "gemini pro",
			provider:     "gemini",
			model:        "gemini-2.5-pro",
			inputTokens:  1_000_000,
			outputTokens: 100_000,
			expected:     2.25,
		},
		{
			name:         "unknown provider costs nothing",
			provider:     "openai",
			model:        "gpt-4o",
			inputTokens:  1000,
			outputTokens: 1000,
			expected:     0,
		},
		{
			name:         "zero tokens",
			provider:     "gemini",
			model:        "gemini-2.5-flash",
			inputTokens:  0,
			outputTokens: 0,
			expected:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost := calculator.EstimateCost(tt.provider, tt.model, tt.inputTokens, tt.outputTokens)
			assert.InDelta(t, tt.expected, cost, 0.0001)
		})
	}

	t.Run("versioned model names fall back to the base pricing", func(t *testing.T) {
		base := calculator.EstimateCost("gemini", "gemini-2.5-flash", 100_000, 10_000)
		versioned := calculator.EstimateCost("gemini", "gemini-2.5-flash-001", 100_000, 10_000)
		assert.InDelta(t, base, versioned, 0.0001)
	})
}

func TestGetPricing(t *testing.T) {
	calculator := NewCalculator()

	t.Run("known model", func(t *testing.T) {
		pricing, err := calculator.GetPricing("gemini", "gemini-2.5-pro")
		assert.NoError(t, err)
		assert.Equal(t, 1.25, pricing.InputPricePerMillion)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := calculator.GetPricing("openai", "gpt-4o")
		assert.Error(t, err)
	})

	t.Run("unknown model", func(t *testing.T) {
		_, err := calculator.GetPricing("gemini", "gemini-1.0")
		assert.Error(t, err)
	})
}
