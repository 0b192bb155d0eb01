package config

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MailMate/internal/config"
	"github.com/Tomas-vilte/MailMate/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetAPIKeyCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-api-key",
		Usage: t.GetMessage("config_set_api_key_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "provider",
				Aliases: []string{"p"},
				Usage:   t.GetMessage("config_flag_provider", 0, nil),
				Value:   "gemini",
			},
			&cli.StringFlag{
				Name:     "key",
				Aliases:  []string{"k"},
				Usage:    t.GetMessage("config_flag_api_key", 0, nil),
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			provider := command.String("provider")
			apiKey := command.String("key")

			if cfg.AIProviders == nil {
				cfg.AIProviders = map[string]config.AIProviderConfig{}
			}
			providerCfg := cfg.AIProviders[provider]
			providerCfg.APIKey = apiKey
			cfg.AIProviders[provider] = providerCfg

			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Printf("%s\n", t.GetMessage("api_key_configured", 0, map[string]interface{}{"Provider": provider}))
			return nil
		},
	}
}
