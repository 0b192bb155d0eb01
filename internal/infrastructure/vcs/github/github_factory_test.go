package github

import (
	"testing"

	"github.com/Tomas-vilte/MailMate/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestGitHubFactoryValidateConfig(t *testing.T) {
	factory := NewGitHubProviderFactory()

	t.Run("complete config", func(t *testing.T) {
		err := factory.ValidateConfig(&config.VCSConfig{Owner: "acme", Repo: "backend", Token: "tok"})
		assert.NoError(t, err)
	})

	t.Run("missing token", func(t *testing.T) {
		err := factory.ValidateConfig(&config.VCSConfig{Owner: "acme", Repo: "backend"})
		assert.Error(t, err)
	})

	t.Run("missing owner or repo", func(t *testing.T) {
		err := factory.ValidateConfig(&config.VCSConfig{Token: "tok", Owner: "acme"})
		assert.Error(t, err)
	})
}

func TestGitHubFactoryName(t *testing.T) {
	assert.Equal(t, "github", NewGitHubProviderFactory().Name())
}
