package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Tomas-vilte/MailMate/internal/config"
	"github.com/Tomas-vilte/MailMate/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func setupConfigCommand(t *testing.T) (*cli.Command, *config.Config) {
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	cmd := NewConfigCommandFactory().CreateCommand(trans, cfg)
	root := &cli.Command{Name: "mailmate", Commands: []*cli.Command{cmd}}

	return root, cfg
}

func run(t *testing.T, root *cli.Command, args ...string) error {
	return root.Run(context.Background(), append([]string{"mailmate", "config"}, args...))
}

func TestSetLang(t *testing.T) {
	t.Run("supported language is persisted", func(t *testing.T) {
		root, cfg := setupConfigCommand(t)

		err := run(t, root, "set-lang", "--lang", "es")

		assert.NoError(t, err)
		assert.Equal(t, "es", cfg.Language)

		reloaded, err := config.LoadConfig(cfg.PathFile)
		require.NoError(t, err)
		assert.Equal(t, "es", reloaded.Language)
	})

	t.Run("unsupported language is rejected", func(t *testing.T) {
		root, cfg := setupConfigCommand(t)

		err := run(t, root, "set-lang", "--lang", "fr")

		assert.Error(t, err)
		assert.Equal(t, "en", cfg.Language)
	})
}

func TestSetAPIKey(t *testing.T) {
	root, cfg := setupConfigCommand(t)

	err := run(t, root, "set-api-key", "--key", "secret-key")

	assert.NoError(t, err)
	assert.Equal(t, "secret-key", cfg.AIProviders["gemini"].APIKey)
}

func TestSetModel(t *testing.T) {
	t.Run("supported model for the active provider", func(t *testing.T) {
		root, cfg := setupConfigCommand(t)

		err := run(t, root, "set-model", "--model", "gemini-2.5-pro")

		assert.NoError(t, err)
		assert.Equal(t, config.ModelGeminiV25Pro, cfg.AIConfig.Models[config.AIGemini])
	})

	t.Run("unsupported model is rejected", func(t *testing.T) {
		root, cfg := setupConfigCommand(t)

		err := run(t, root, "set-model", "--model", "gpt-4o")

		assert.Error(t, err)
		assert.Equal(t, config.ModelGeminiV25Flash, cfg.AIConfig.Models[config.AIGemini])
	})
}

func TestSetVCS(t *testing.T) {
	root, cfg := setupConfigCommand(t)

	err := run(t, root, "set-vcs", "--owner", "acme", "--repo", "backend", "--token", "tok")

	assert.NoError(t, err)
	assert.Equal(t, "github", cfg.ActiveVCS)
	assert.Equal(t, "acme", cfg.VCSConfigs["github"].Owner)
	assert.Equal(t, "backend", cfg.VCSConfigs["github"].Repo)
	assert.Equal(t, "tok", cfg.VCSConfigs["github"].Token)
}

func TestSetTool(t *testing.T) {
	root, cfg := setupConfigCommand(t)

	err := run(t, root, "set-tool", "--tool", "tea")

	assert.NoError(t, err)
	assert.Equal(t, "tea", cfg.Triage.Tool)
}

func TestInitAndShow(t *testing.T) {
	root, cfg := setupConfigCommand(t)

	assert.NoError(t, run(t, root, "init"))
	assert.FileExists(t, filepath.Join(filepath.Dir(cfg.PathFile), "config.json"))

	// show solo imprime, alcanza con que no falle
	assert.NoError(t, run(t, root, "show"))
}
