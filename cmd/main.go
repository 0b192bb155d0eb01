package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Tomas-vilte/MailMate/internal/cli/command/cache"
	"github.com/Tomas-vilte/MailMate/internal/cli/command/completion"
	"github.com/Tomas-vilte/MailMate/internal/cli/command/config"
	"github.com/Tomas-vilte/MailMate/internal/cli/command/stats"
	"github.com/Tomas-vilte/MailMate/internal/cli/command/triage"
	"github.com/Tomas-vilte/MailMate/internal/cli/registry"
	cfg "github.com/Tomas-vilte/MailMate/internal/config"
	"github.com/Tomas-vilte/MailMate/internal/i18n"
	"github.com/Tomas-vilte/MailMate/internal/infrastructure/ai/gemini"
	"github.com/Tomas-vilte/MailMate/internal/infrastructure/di"
	"github.com/Tomas-vilte/MailMate/internal/infrastructure/vcs/github"
	"github.com/Tomas-vilte/MailMate/internal/logger"
	"github.com/Tomas-vilte/MailMate/internal/services"
	"github.com/Tomas-vilte/MailMate/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	logger.Initialize(os.Getenv("MAILMATE_DEBUG") != "", os.Getenv("MAILMATE_VERBOSE") != "")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("no se pudo obtener el directorio del usuario: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		log.Fatalf("Error al cargar las traducciones: %v", err)
	}

	container := di.NewContainer(cfgApp, translations)

	if err := container.RegisterAIProvider("gemini", gemini.NewGeminiProviderFactory()); err != nil {
		log.Printf("Warning: no se pudo registrar el proveedor Gemini: %v", err)
	}

	if err := container.RegisterVCSProvider("github", github.NewGitHubProviderFactory()); err != nil {
		log.Printf("Warning: no se pudo registrar el proveedor de GitHub: %v", err)
	}

	triageServiceProvider := func(ctx context.Context, opts triage.ProviderOptions) (triage.TriageRunner, error) {
		extractor, err := container.GetExtractor(ctx)
		if err != nil {
			return nil, err
		}

		serviceOpts := []services.TriageOption{
			services.WithClipboard(container.GetClipboard()),
		}

		if opts.WithVCS {
			vcsClient, err := container.GetVCSClient(ctx, opts.Owner, opts.Repo)
			if err != nil {
				return nil, err
			}
			serviceOpts = append(serviceOpts, services.WithVCSClient(vcsClient))
		}

		return services.NewTriageService(extractor, cfgApp, serviceOpts...), nil
	}

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("triage", triage.NewTriageCommandFactory(triageServiceProvider)); err != nil {
		log.Fatalf("Error al registrar el comando 'triage': %v", err)
	}

	if err := registerCommand.Register("config", config.NewConfigCommandFactory()); err != nil {
		log.Fatalf("Error al registrar el comando 'config': %v", err)
	}

	commands := registerCommand.CreateCommands()
	commands = append(commands, completion.NewCompletionCommand(translations))
	commands = append(commands, stats.NewStatsCommand().CreateCommand(translations, cfgApp))
	commands = append(commands, cache.NewCacheCommand().CreateCommand(translations, cfgApp))

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	go func() {
		checker := services.NewVersionUpdater(version.FullVersion(), translations)
		checker.CheckForUpdates(context.Background())
	}()

	return &cli.Command{
		Name:                  "mailmate",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.Version,
		Description:           translations.GetMessage("app_description", 0, nil),
		Commands:              commands,
		EnableShellCompletion: true,
	}, nil
}
