package config

import (
	"github.com/Tomas-vilte/MailMate/internal/config"
	"github.com/Tomas-vilte/MailMate/internal/i18n"
	"github.com/urfave/cli/v3"
)

// ConfigCommandFactory crea el comando config con sus subcomandos.
type ConfigCommandFactory struct{}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{}
}

func (c *ConfigCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   t.GetMessage("config_command_usage", 0, nil),
		Commands: []*cli.Command{
			c.newInitCommand(t, cfg),
			c.newShowCommand(t, cfg),
			c.newSetLangCommand(t, cfg),
			c.newSetAPIKeyCommand(t, cfg),
			c.newSetModelCommand(t, cfg),
			c.newSetVCSCommand(t, cfg),
			c.newSetToolCommand(t, cfg),
		},
	}
}
