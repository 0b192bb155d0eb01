package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectBestModel(t *testing.T) {
	selector := NewModelSelector()

	tests := []struct {
		name         string
		command      string
		inputTokens  int
		currentModel string
		expected     string
	}{
		{
			name:         "short email on pro suggests flash",
			command:      "triage",
			inputTokens:  500,
			currentModel: "gemini-2.5-pro",
			expected:     "gemini-2.5-flash",
		},
		{
			name:         "long email stays on pro",
			command:      "triage",
			inputTokens:  5000,
			currentModel: "gemini-2.5-pro",
			expected:     "gemini-2.5-pro",
		},
		{
			name:         "flash never gets a suggestion",
			command:      "triage",
			inputTokens:  500,
			currentModel: "gemini-2.5-flash",
			expected:     "gemini-2.5-flash",
		},
		{
			name:         "other commands are left alone",
			command:      "stats",
			inputTokens:  500,
			currentModel: "gemini-2.5-pro",
			expected:     "gemini-2.5-pro",
		},
		{
			name:         "unknown token count is not a reason to downgrade",
			command:      "triage",
			inputTokens:  0,
			currentModel: "gemini-2.5-pro",
			expected:     "gemini-2.5-pro",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, selector.SelectBestModel(tt.command, tt.inputTokens, tt.currentModel))
		})
	}
}

func TestGetRationale(t *testing.T) {
	selector := NewModelSelector()

	assert.Equal(t, "routing.rationale_light", selector.GetRationale("triage", "gemini-2.5-flash", "gemini-2.5-pro"))
	assert.Equal(t, "routing.rationale_default", selector.GetRationale("triage", "gemini-2.5-pro", "gemini-2.5-pro"))
}
