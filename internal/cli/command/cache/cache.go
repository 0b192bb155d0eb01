package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/Tomas-vilte/MailMate/internal/config"
	"github.com/Tomas-vilte/MailMate/internal/i18n"
	"github.com/Tomas-vilte/MailMate/internal/infrastructure/cache"
	"github.com/Tomas-vilte/MailMate/internal/ui"
	"github.com/urfave/cli/v3"
)

type CacheCommand struct{}

func NewCacheCommand() *CacheCommand {
	return &CacheCommand{}
}

func (c *CacheCommand) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: t.GetMessage("cache.usage", 0, nil),
		Commands: []*cli.Command{
			{
				Name:  "clean",
				Usage: t.GetMessage("cache.clean_usage", 0, nil),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cacheService, err := cache.NewCache(24 * time.Hour)
					if err != nil {
						return fmt.Errorf(t.GetMessage("cache.clean_error", 0, nil)+": %w", err)
					}

					if err := cacheService.Clean(); err != nil {
						return fmt.Errorf(t.GetMessage("cache.clean_error", 0, nil)+": %w", err)
					}

					ui.PrintInfo(t.GetMessage("cache.cleaned", 0, nil))
					return nil
				},
			},
			{
				Name:  "stats",
				Usage: t.GetMessage("cache.stats_usage", 0, nil),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cacheService, err := cache.NewCache(24 * time.Hour)
					if err != nil {
						return fmt.Errorf(t.GetMessage("cache.clean_error", 0, nil)+": %w", err)
					}

					count, size, err := cacheService.Stats()
					if err != nil {
						return err
					}

					ui.PrintInfo(t.GetMessage("cache.stats_entries", 0, map[string]interface{}{
						"Count": count,
						"Size":  fmt.Sprintf("%.1f KB", float64(size)/1024),
					}))
					return nil
				},
			},
		},
	}
}
