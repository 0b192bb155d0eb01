package registry

import (
	"testing"

	cfg "github.com/Tomas-vilte/MailMate/internal/config"
	"github.com/Tomas-vilte/MailMate/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"
)

type fakeCommandFactory struct {
	name string
}

func (f *fakeCommandFactory) CreateCommand(t *i18n.Translations, c *cfg.Config) *cli.Command {
	return &cli.Command{Name: f.name}
}

func TestRegistry(t *testing.T) {
	t.Run("registered factories produce commands", func(t *testing.T) {
		registry := NewRegistry(&cfg.Config{}, nil)

		assert.NoError(t, registry.Register("triage", &fakeCommandFactory{name: "triage"}))
		assert.NoError(t, registry.Register("config", &fakeCommandFactory{name: "config"}))

		commands := registry.CreateCommands()
		assert.Len(t, commands, 2)

		names := []string{commands[0].Name, commands[1].Name}
		assert.ElementsMatch(t, []string{"triage", "config"}, names)
	})

	t.Run("duplicate factory name fails", func(t *testing.T) {
		registry := NewRegistry(&cfg.Config{}, nil)

		assert.NoError(t, registry.Register("triage", &fakeCommandFactory{name: "triage"}))

		err := registry.Register("triage", &fakeCommandFactory{name: "triage"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ya esta registrada")
	})
}
