package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing file creates the default config", func(t *testing.T) {
		home := t.TempDir()

		cfg, err := LoadConfig(home)

		assert.NoError(t, err)
		assert.Equal(t, "en", cfg.Language)
		assert.Equal(t, AIGemini, cfg.AIConfig.ActiveAI)
		assert.Equal(t, ModelGeminiV25Flash, cfg.AIConfig.Models[AIGemini])
		assert.Equal(t, "gh", cfg.Triage.Tool)
		assert.Equal(t, 10, cfg.Triage.MaxItems)

		_, statErr := os.Stat(filepath.Join(home, ".mailmate", "config.json"))
		assert.NoError(t, statErr)
	})

	t.Run("existing file is loaded with defaults applied", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		raw := map[string]interface{}{
			"language": "es",
		}
		data, err := json.Marshal(raw)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, data, 0644))

		cfg, err := LoadConfig(path)

		assert.NoError(t, err)
		assert.Equal(t, "es", cfg.Language)
		assert.Equal(t, "gh", cfg.Triage.Tool)
		assert.Equal(t, AIGemini, cfg.AIConfig.ActiveAI)
		assert.NotNil(t, cfg.AIProviders)
		assert.NotNil(t, cfg.VCSConfigs)
	})

	t.Run("corrupt json fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		_, err := LoadConfig(path)

		assert.Error(t, err)
	})

	t.Run("active vcs without credentials is invalid", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		cfg := Config{
			Language:   "en",
			ActiveVCS:  "github",
			VCSConfigs: map[string]VCSConfig{"github": {Owner: "acme"}},
		}
		data, err := json.Marshal(cfg)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, data, 0644))

		_, err = LoadConfig(path)

		assert.Error(t, err)
	})
}

func TestSaveConfig(t *testing.T) {
	t.Run("round trips through load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		cfg := &Config{
			Language: "es",
			PathFile: path,
			AIConfig: AIConfig{
				ActiveAI: AIGemini,
				Models:   map[AI]Model{AIGemini: ModelGeminiV25Pro},
			},
			AIProviders: map[string]AIProviderConfig{"gemini": {APIKey: "key"}},
			ActiveVCS:   "github",
			VCSConfigs: map[string]VCSConfig{
				"github": {Owner: "acme", Repo: "backend", Token: "tok"},
			},
			Triage: TriageConfig{Tool: "gh", MaxItems: 5},
		}

		require.NoError(t, SaveConfig(cfg))

		loaded, err := LoadConfig(path)
		assert.NoError(t, err)
		assert.Equal(t, "es", loaded.Language)
		assert.Equal(t, ModelGeminiV25Pro, loaded.AIConfig.Models[AIGemini])
		assert.Equal(t, "acme", loaded.VCSConfigs["github"].Owner)
		assert.Equal(t, 5, loaded.Triage.MaxItems)
	})

	t.Run("missing path fails", func(t *testing.T) {
		err := SaveConfig(&Config{Language: "en"})
		assert.Error(t, err)
	})

	t.Run("negative max items fails validation", func(t *testing.T) {
		err := SaveConfig(&Config{
			Language: "en",
			PathFile: filepath.Join(t.TempDir(), "config.json"),
			Triage:   TriageConfig{MaxItems: -1},
		})
		assert.Error(t, err)
	})
}

func TestModels(t *testing.T) {
	t.Run("supported models per provider", func(t *testing.T) {
		assert.True(t, IsModelSupported(AIGemini, ModelGeminiV25Flash))
		assert.True(t, IsModelSupported(AIGemini, ModelGeminiV25Pro))
		assert.False(t, IsModelSupported(AIGemini, "gpt-4o"))
	})

	t.Run("default model is the cheap one", func(t *testing.T) {
		assert.Equal(t, ModelGeminiV25Flash, DefaultModelForAI(AIGemini))
	})
}

func TestGetLocaleConfig(t *testing.T) {
	assert.Equal(t, "en", GetLocaleConfig("en"))
	assert.Equal(t, "es", GetLocaleConfig("es"))
	assert.Equal(t, "en", GetLocaleConfig("fr"))
}
