package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/Tomas-vilte/MailMate/internal/config"
	"github.com/Tomas-vilte/MailMate/internal/domain/models"
	"github.com/Tomas-vilte/MailMate/internal/domain/ports"
	domainErrors "github.com/Tomas-vilte/MailMate/internal/errors"
	"github.com/Tomas-vilte/MailMate/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVCSClient struct {
	owner string
	repo  string
}

func (c *fakeVCSClient) CreateIssue(ctx context.Context, title, body string, labels []string) (*models.Issue, error) {
	return nil, nil
}

func (c *fakeVCSClient) GetAuthenticatedUser(ctx context.Context) (string, error) {
	return "", nil
}

func (c *fakeVCSClient) EnsureLabels(ctx context.Context) error {
	return nil
}

type fakeVCSFactory struct {
	validateErr error
}

func (f *fakeVCSFactory) CreateClient(ctx context.Context, owner, repo, token string, trans *i18n.Translations) (ports.VCSClient, error) {
	return &fakeVCSClient{owner: owner, repo: repo}, nil
}

func (f *fakeVCSFactory) ValidateConfig(cfg *config.VCSConfig) error {
	return f.validateErr
}

func (f *fakeVCSFactory) Name() string {
	return "github"
}

func TestVCSProviderRegistry(t *testing.T) {
	t.Run("register and get", func(t *testing.T) {
		registry := NewVCSProviderRegistry()

		assert.NoError(t, registry.Register("github", &fakeVCSFactory{}))

		factory, err := registry.Get("github")
		assert.NoError(t, err)
		assert.Equal(t, "github", factory.Name())
	})

	t.Run("duplicate registration fails", func(t *testing.T) {
		registry := NewVCSProviderRegistry()
		assert.NoError(t, registry.Register("github", &fakeVCSFactory{}))

		err := registry.Register("github", &fakeVCSFactory{})
		assert.Error(t, err)
	})
}

func TestCreateClientFromConfig(t *testing.T) {
	newConfig := func() *config.Config {
		return &config.Config{
			ActiveVCS: "github",
			VCSConfigs: map[string]config.VCSConfig{
				"github": {Owner: "acme", Repo: "backend", Token: "tok"},
			},
		}
	}

	t.Run("uses the configured owner and repo", func(t *testing.T) {
		registry := NewVCSProviderRegistry()
		require.NoError(t, registry.Register("github", &fakeVCSFactory{}))

		client, err := registry.CreateClientFromConfig(context.Background(), newConfig(), nil, "", "")

		assert.NoError(t, err)
		fake := client.(*fakeVCSClient)
		assert.Equal(t, "acme", fake.owner)
		assert.Equal(t, "backend", fake.repo)
	})

	t.Run("override replaces owner and repo", func(t *testing.T) {
		registry := NewVCSProviderRegistry()
		require.NoError(t, registry.Register("github", &fakeVCSFactory{}))

		client, err := registry.CreateClientFromConfig(context.Background(), newConfig(), nil, "other", "frontend")

		assert.NoError(t, err)
		fake := client.(*fakeVCSClient)
		assert.Equal(t, "other", fake.owner)
		assert.Equal(t, "frontend", fake.repo)
	})

	t.Run("missing vcs config reports the missing token", func(t *testing.T) {
		registry := NewVCSProviderRegistry()
		require.NoError(t, registry.Register("github", &fakeVCSFactory{}))

		cfg := &config.Config{ActiveVCS: "github"}

		_, err := registry.CreateClientFromConfig(context.Background(), cfg, nil, "", "")

		assert.ErrorIs(t, err, domainErrors.ErrTokenMissing)
	})

	t.Run("empty active vcs defaults to github", func(t *testing.T) {
		registry := NewVCSProviderRegistry()
		require.NoError(t, registry.Register("github", &fakeVCSFactory{}))

		cfg := newConfig()
		cfg.ActiveVCS = ""

		_, err := registry.CreateClientFromConfig(context.Background(), cfg, nil, "", "")

		assert.NoError(t, err)
	})

	t.Run("invalid provider config is rejected", func(t *testing.T) {
		registry := NewVCSProviderRegistry()
		require.NoError(t, registry.Register("github", &fakeVCSFactory{validateErr: errors.New("token requerido")}))

		_, err := registry.CreateClientFromConfig(context.Background(), newConfig(), nil, "", "")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "configuracion VCS invalida")
	})
}
