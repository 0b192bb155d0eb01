package config

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MailMate/internal/config"
	"github.com/Tomas-vilte/MailMate/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetVCSCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-vcs",
		Usage: t.GetMessage("config_set_vcs_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "owner",
				Aliases:  []string{"o"},
				Usage:    t.GetMessage("config_flag_owner", 0, nil),
				Required: true,
			},
			&cli.StringFlag{
				Name:     "repo",
				Aliases:  []string{"r"},
				Usage:    t.GetMessage("config_flag_repo", 0, nil),
				Required: true,
			},
			&cli.StringFlag{
				Name:     "token",
				Aliases:  []string{"k"},
				Usage:    t.GetMessage("config_flag_token", 0, nil),
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			owner := command.String("owner")
			repo := command.String("repo")
			token := command.String("token")

			if cfg.VCSConfigs == nil {
				cfg.VCSConfigs = map[string]config.VCSConfig{}
			}
			cfg.VCSConfigs["github"] = config.VCSConfig{
				Owner: owner,
				Repo:  repo,
				Token: token,
			}
			cfg.ActiveVCS = "github"

			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Printf("%s\n", t.GetMessage("vcs_configured", 0, map[string]interface{}{
				"Owner": owner,
				"Repo":  repo,
			}))
			return nil
		},
	}
}
