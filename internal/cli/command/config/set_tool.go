package config

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MailMate/internal/config"
	"github.com/Tomas-vilte/MailMate/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetToolCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-tool",
		Usage: t.GetMessage("config_set_tool_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "tool",
				Usage:    t.GetMessage("config_flag_tool", 0, nil),
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			cfg.Triage.Tool = command.String("tool")

			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Printf("%s\n", t.GetMessage("tool_configured", 0, map[string]interface{}{
				"Tool": cfg.Triage.Tool,
			}))
			return nil
		},
	}
}
