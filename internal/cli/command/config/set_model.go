package config

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MailMate/internal/config"
	"github.com/Tomas-vilte/MailMate/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetModelCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-model",
		Usage: t.GetMessage("config_set_model_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "model",
				Aliases:  []string{"m"},
				Usage:    t.GetMessage("config_flag_model", 0, nil),
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			model := config.Model(command.String("model"))
			activeAI := cfg.AIConfig.ActiveAI

			if !config.IsModelSupported(activeAI, model) {
				msg := t.GetMessage("unsupported_model", 0, map[string]interface{}{
					"Model":    string(model),
					"Provider": string(activeAI),
				})
				return fmt.Errorf("%s", msg)
			}

			if cfg.AIConfig.Models == nil {
				cfg.AIConfig.Models = map[config.AI]config.Model{}
			}
			cfg.AIConfig.Models[activeAI] = model

			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Printf("%s\n", t.GetMessage("model_configured", 0, map[string]interface{}{"Model": string(model)}))
			return nil
		},
	}
}
