package registry

import (
	"context"
	"testing"

	"github.com/Tomas-vilte/MailMate/internal/config"
	"github.com/Tomas-vilte/MailMate/internal/domain/ports"
	"github.com/Tomas-vilte/MailMate/internal/i18n"
	"github.com/stretchr/testify/assert"
)

type fakeAIFactory struct {
	name string
}

func (f *fakeAIFactory) CreateActionItemExtractor(ctx context.Context, cfg *config.Config, trans *i18n.Translations) (ports.ActionItemExtractor, error) {
	return nil, nil
}

func (f *fakeAIFactory) ValidateConfig(cfg *config.Config) error {
	return nil
}

func (f *fakeAIFactory) Name() string {
	return f.name
}

func TestAIProviderRegistry(t *testing.T) {
	t.Run("register and get", func(t *testing.T) {
		registry := NewAIProviderRegistry()

		err := registry.Register("gemini", &fakeAIFactory{name: "gemini"})
		assert.NoError(t, err)

		factory, err := registry.Get("gemini")
		assert.NoError(t, err)
		assert.Equal(t, "gemini", factory.Name())
	})

	t.Run("duplicate registration fails", func(t *testing.T) {
		registry := NewAIProviderRegistry()

		assert.NoError(t, registry.Register("gemini", &fakeAIFactory{name: "gemini"}))

		err := registry.Register("gemini", &fakeAIFactory{name: "gemini"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ya esta registrado")
	})

	t.Run("get unknown provider fails", func(t *testing.T) {
		registry := NewAIProviderRegistry()

		_, err := registry.Get("openai")
		assert.Error(t, err)
	})

	t.Run("list and is registered", func(t *testing.T) {
		registry := NewAIProviderRegistry()
		assert.NoError(t, registry.Register("gemini", &fakeAIFactory{name: "gemini"}))

		assert.True(t, registry.IsRegistered("gemini"))
		assert.False(t, registry.IsRegistered("openai"))
		assert.Equal(t, []string{"gemini"}, registry.List())
	})
}
