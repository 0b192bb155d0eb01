package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MailMate/internal/config"
	"github.com/Tomas-vilte/MailMate/internal/i18n"
	"github.com/Tomas-vilte/MailMate/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			fmt.Println(t.GetMessage("current_config", 0, nil))
			fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━\n")

			ui.PrintKeyValue("language", cfg.Language)
			ui.PrintKeyValue("active_ai", string(cfg.AIConfig.ActiveAI))

			for ai, model := range cfg.AIConfig.Models {
				ui.PrintKeyValue(fmt.Sprintf("model (%s)", ai), string(model))
			}

			for provider, providerCfg := range cfg.AIProviders {
				if providerCfg.APIKey != "" {
					ui.PrintKeyValue(fmt.Sprintf("api_key (%s)", provider), maskKey(providerCfg.APIKey))
				}
			}

			if cfg.AIConfig.BudgetDaily != nil {
				ui.PrintKeyValue("budget_daily", fmt.Sprintf("$%.2f", *cfg.AIConfig.BudgetDaily))
			}

			ui.PrintKeyValue("tool", cfg.Triage.Tool)
			if cfg.Triage.MaxItems > 0 {
				ui.PrintKeyValue("max_items", fmt.Sprintf("%d", cfg.Triage.MaxItems))
			}
			if len(cfg.Triage.DefaultLabels) > 0 {
				ui.PrintKeyValue("default_labels", strings.Join(cfg.Triage.DefaultLabels, ", "))
			}

			if cfg.ActiveVCS != "" {
				if vcsCfg, ok := cfg.VCSConfigs[cfg.ActiveVCS]; ok {
					ui.PrintKeyValue("repository", vcsCfg.Owner+"/"+vcsCfg.Repo)
					ui.PrintKeyValue("token", maskKey(vcsCfg.Token))
				}
			}

			return nil
		},
	}
}

// maskKey deja visible solo el final de un secreto.
func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
