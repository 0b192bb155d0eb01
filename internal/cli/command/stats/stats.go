package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/Tomas-vilte/MailMate/internal/config"
	"github.com/Tomas-vilte/MailMate/internal/i18n"
	"github.com/Tomas-vilte/MailMate/internal/services/cost"
	"github.com/fatih/color"
	"github.com/urfave/cli/v3"
)

type StatsCommand struct{}

func NewStatsCommand() *StatsCommand {
	return &StatsCommand{}
}

func (c *StatsCommand) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "stats",
		Aliases: []string{"cost"},
		Usage:   t.GetMessage("stats.usage", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "monthly",
				Aliases: []string{"m"},
				Usage:   t.GetMessage("stats.monthly_flag", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			manager, err := cost.NewManager(0)
			if err != nil {
				return fmt.Errorf(t.GetMessage("stats.error_init", 0, nil)+": %w", err)
			}

			if cmd.Bool("monthly") {
				return c.showStats(manager, t, "2006-01", "stats.monthly_title")
			}
			return c.showStats(manager, t, "2006-01-02", "stats.daily_title")
		},
	}
}

// showStats imprime la actividad del período actual, agrupando por registro.
func (c *StatsCommand) showStats(manager *cost.Manager, t *i18n.Translations, periodFormat, titleKey string) error {
	records, err := manager.GetHistory()
	if err != nil {
		return err
	}

	period := time.Now().Format(periodFormat)
	var periodRecords []cost.ActivityRecord
	var total float64
	for _, r := range records {
		if r.Timestamp.Format(periodFormat) == period {
			periodRecords = append(periodRecords, r)
			total += r.CostUSD
		}
	}

	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	_, _ = cyan.Printf("\n📊 %s\n", t.GetMessage(titleKey, 0, nil))
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	if len(periodRecords) == 0 {
		fmt.Printf("\n%s\n\n", t.GetMessage("stats.no_activity", 0, nil))
		return nil
	}

	for _, record := range periodRecords {
		cacheIndicator := ""
		if record.CacheHit {
			cacheIndicator = green.Sprint(" [CACHE]")
		}
		fmt.Printf("%s - %s (%s): %s%s\n",
			record.Timestamp.Format("2006-01-02 15:04"),
			record.Command,
			record.Model,
			yellow.Sprintf("$%.4f", record.CostUSD),
			cacheIndicator,
		)
	}

	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	_, _ = cyan.Printf("%s: ", t.GetMessage("stats.total", 0, nil))
	_, _ = yellow.Printf("$%.4f USD\n\n", total)
	return nil
}
