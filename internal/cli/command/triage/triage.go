package triage

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Tomas-vilte/MailMate/internal/cli/completion_helper"
	"github.com/Tomas-vilte/MailMate/internal/config"
	"github.com/Tomas-vilte/MailMate/internal/domain/models"
	domainErrors "github.com/Tomas-vilte/MailMate/internal/errors"
	"github.com/Tomas-vilte/MailMate/internal/i18n"
	"github.com/Tomas-vilte/MailMate/internal/services"
	"github.com/Tomas-vilte/MailMate/internal/ui"
	"github.com/urfave/cli/v3"
)

// TriageRunner is a minimal interface for testing purposes
type TriageRunner interface {
	Triage(ctx context.Context, request services.TriageRequest) (*services.TriageResult, error)
	CopyCommands(records []models.IssueRecord) error
	CreateIssues(ctx context.Context, records []models.IssueRecord) ([]*models.Issue, error)
	Status() models.ExtractionStatus
}

// ProviderOptions indica cómo armar el servicio para una corrida puntual.
type ProviderOptions struct {
	Owner   string
	Repo    string
	WithVCS bool
}

type ServiceProvider func(ctx context.Context, opts ProviderOptions) (TriageRunner, error)

// TriageCommandFactory is the factory to create the triage command.
type TriageCommandFactory struct {
	serviceProvider ServiceProvider
	stdin           io.Reader
}

// NewTriageCommandFactory creates a new instance of the factory.
func NewTriageCommandFactory(serviceProvider ServiceProvider) *TriageCommandFactory {
	return &TriageCommandFactory{
		serviceProvider: serviceProvider,
		stdin:           os.Stdin,
	}
}

// CreateCommand creates the triage command.
func (f *TriageCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "triage",
		Aliases:       []string{"t"},
		Usage:         t.GetMessage("triage.command_usage", 0, nil),
		Flags:         f.createFlags(t),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action:        f.createAction(t, cfg),
	}
}

func (f *TriageCommandFactory) createFlags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "subject",
			Aliases: []string{"s"},
			Usage:   t.GetMessage("triage.flag_subject", 0, nil),
		},
		&cli.StringFlag{
			Name:    "body",
			Aliases: []string{"b"},
			Usage:   t.GetMessage("triage.flag_body", 0, nil),
		},
		&cli.StringFlag{
			Name:    "body-file",
			Aliases: []string{"f"},
			Usage:   t.GetMessage("triage.flag_body_file", 0, nil),
		},
		&cli.StringFlag{
			Name:  "from",
			Usage: t.GetMessage("triage.flag_from", 0, nil),
		},
		&cli.StringFlag{
			Name:  "hint",
			Usage: t.GetMessage("triage.flag_hint", 0, nil),
		},
		&cli.IntFlag{
			Name:  "max-items",
			Usage: t.GetMessage("triage.flag_max_items", 0, nil),
			Value: 0,
		},
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   t.GetMessage("triage.flag_repo", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "no-labels",
			Usage: t.GetMessage("triage.flag_no_labels", 0, nil),
		},
		&cli.BoolFlag{
			Name:    "copy",
			Aliases: []string{"c"},
			Usage:   t.GetMessage("triage.flag_copy", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "create",
			Usage: t.GetMessage("triage.flag_create", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: t.GetMessage("triage.flag_dry_run", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: t.GetMessage("triage.flag_json", 0, nil),
		},
	}
}

func (f *TriageCommandFactory) createAction(t *i18n.Translations, _ *config.Config) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		subject := command.String("subject")
		bodyInline := command.String("body")
		bodyFile := command.String("body-file")
		sender := command.String("from")
		hint := command.String("hint")
		maxItems := command.Int("max-items")
		repoOverride := command.String("repo")
		noLabels := command.Bool("no-labels")
		copyToClipboard := command.Bool("copy")
		createIssues := command.Bool("create")
		dryRun := command.Bool("dry-run")
		asJSON := command.Bool("json")

		if bodyInline != "" && bodyFile != "" {
			ui.PrintError(os.Stdout, t.GetMessage("triage.error_multiple_body", 0, nil))
			return domainErrors.ErrMultipleBodySources
		}

		body := bodyInline
		if bodyFile != "" {
			content, err := f.readBody(bodyFile)
			if err != nil {
				ui.HandleAppError(err, t)
				return err
			}
			body = content
		}

		email := models.EmailMessage{
			Subject: strings.TrimSpace(subject),
			Body:    body,
			Sender:  strings.TrimSpace(sender),
		}

		if email.IsEmpty() {
			ui.PrintError(os.Stdout, t.GetMessage("triage.error_no_body", 0, nil))
			return domainErrors.ErrEmptyEmail
		}

		owner, repo := splitRepo(repoOverride)

		service, err := f.serviceProvider(ctx, ProviderOptions{
			Owner:   owner,
			Repo:    repo,
			WithVCS: createIssues,
		})
		if err != nil {
			ui.HandleAppError(err, t)
			return err
		}

		if !asJSON {
			ui.PrintSectionBanner(t.GetMessage("triage.banner", 0, nil))
		}

		var spinner *ui.SmartSpinner
		if !asJSON {
			spinner = ui.NewSmartSpinner(t.GetMessage("triage.analyzing", 0, nil))
			spinner.Start()
		}

		result, err := service.Triage(ctx, services.TriageRequest{
			Email:      email,
			Hint:       hint,
			MaxItems:   int(maxItems),
			Repo:       repoOverride,
			SkipLabels: noLabels,
		})

		if spinner != nil {
			spinner.Stop()
		}

		if err != nil {
			ui.HandleAppError(err, t)
			return err
		}

		if asJSON {
			return f.printJSON(service, result)
		}

		f.printPreview(result, service.Status(), t)
		ui.PrintTokenUsage(result.Usage, t)

		if dryRun {
			ui.PrintInfo(t.GetMessage("triage.dry_run_complete", 0, nil))
			return nil
		}

		if copyToClipboard {
			if err := service.CopyCommands(result.Records); err != nil {
				ui.HandleAppError(err, t)
				return err
			}
			ui.PrintSuccess(os.Stdout, t.GetMessage("triage.copied", len(result.Records), map[string]interface{}{
				"Count": len(result.Records),
			}))
		}

		if createIssues {
			return f.runCreate(ctx, service, result.Records, t)
		}

		return nil
	}
}

// readBody lee el cuerpo del correo desde un archivo, o stdin si path es "-".
func (f *TriageCommandFactory) readBody(path string) (string, error) {
	if path == "-" {
		content, err := io.ReadAll(f.stdin)
		if err != nil {
			return "", domainErrors.NewAppError(domainErrors.TypeInput, "could not read the email body from stdin", err)
		}
		return string(content), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", domainErrors.NewAppError(domainErrors.TypeInput, fmt.Sprintf("could not read the email body from %s", path), err)
	}
	return string(content), nil
}

func (f *TriageCommandFactory) printJSON(service TriageRunner, result *services.TriageResult) error {
	payload := struct {
		Status  string               `json:"status"`
		Records []models.IssueRecord `json:"records"`
		Usage   *models.TokenUsage   `json:"usage,omitempty"`
	}{
		Status:  service.Status().String(),
		Records: result.Records,
		Usage:   result.Usage,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// printPreview muestra cada item y después los comandos listos para copiar.
func (f *TriageCommandFactory) printPreview(result *services.TriageResult, status models.ExtractionStatus, t *i18n.Translations) {
	separator := strings.Repeat("─", 60)

	for i, record := range result.Records {
		fmt.Println()
		fmt.Println(separator)
		ui.PrintInfo(t.GetMessage("triage.item_header", 0, map[string]interface{}{
			"Index": i + 1,
			"Total": len(result.Records),
		}))
		fmt.Println()

		ui.PrintKeyValue(t.GetMessage("triage.preview_title_label", 0, nil), record.Title)
		if len(record.Labels) > 0 {
			ui.PrintKeyValue(t.GetMessage("triage.preview_labels_label", 0, nil), strings.Join(record.Labels, ", "))
		}
		if record.Sender != "" {
			ui.PrintKeyValue(t.GetMessage("triage.preview_sender_label", 0, nil), record.Sender)
		}
		fmt.Println()
		fmt.Println(record.Body)
	}

	fmt.Println()
	fmt.Println(separator)
	ui.PrintInfo(t.GetMessage("triage.commands_header", 0, nil))
	fmt.Println()
	for _, record := range result.Records {
		fmt.Println(record.Command)
		fmt.Println()
	}
	ui.PrintKeyValue(t.GetMessage("triage.status", 0, nil), status.String())
	fmt.Println(separator)
}

func (f *TriageCommandFactory) runCreate(ctx context.Context, service TriageRunner, records []models.IssueRecord, t *i18n.Translations) error {
	if !f.promptConfirmation(t) {
		ui.PrintInfo(t.GetMessage("triage.cancelled", 0, nil))
		return nil
	}

	spinner := ui.NewSmartSpinner(t.GetMessage("triage.creating", 0, nil))
	spinner.Start()

	created, err := service.CreateIssues(ctx, records)
	spinner.Stop()

	for _, issue := range created {
		ui.PrintSuccess(os.Stdout, t.GetMessage("triage.created_successfully", 0, map[string]interface{}{
			"Number": issue.Number,
			"URL":    issue.URL,
		}))
	}

	if err != nil {
		if len(created) < len(records) {
			ui.PrintWarning(t.GetMessage("triage.create_partial", 0, map[string]interface{}{
				"Created": len(created),
				"Total":   len(records),
			}))
		}
		ui.HandleAppError(err, t)
		return err
	}

	return nil
}

// promptConfirmation requests confirmation from the user to create the issues.
func (f *TriageCommandFactory) promptConfirmation(t *i18n.Translations) bool {
	reader := bufio.NewReader(f.stdin)

	prompt := t.GetMessage("triage.confirm_create", 0, nil)
	fmt.Printf("%s: ", prompt)

	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.ToLower(strings.TrimSpace(response))

	return response == "" || response == "y" || response == "yes" || response == "s" || response == "si"
}

// splitRepo parte un owner/repo en sus dos mitades. Sin barra, no hay override.
func splitRepo(full string) (string, string) {
	parts := strings.SplitN(full, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", ""
	}
	return parts[0], parts[1]
}
