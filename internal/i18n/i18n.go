package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations carga el bundle de mensajes. localesPath apunta al directorio
// con los active.*.toml; si está vacío se usan solo los defaults embebidos.
func NewTranslations(defaultLang string, localesPath string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesPath != "" {
		files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
		if err != nil {
			return nil, fmt.Errorf("error reading locales: %w", err)
		}

		for _, file := range files {
			if _, err := bundle.LoadMessageFile(file); err != nil {
				return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
			}
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Turn a pasted email into ready-to-run issue tracker commands"

	[app_description]
	other = "MailMate reads an email subject and body, asks Gemini for the action items hidden in it, and prints shell-safe 'gh issue create' commands you can copy, run, or let MailMate execute against the GitHub API."

	[help_command_usage]
	other = "Shows help"

	[triage.command_usage]
	other = "Extract action items from an email and render tracker commands"

	[triage.flag_subject]
	other = "Email subject"

	[triage.flag_body]
	other = "Email body as inline text"

	[triage.flag_body_file]
	other = "Read the email body from a file ('-' for stdin)"

	[triage.flag_from]
	other = "Sender of the email, used to attribute the original quote"

	[triage.flag_hint]
	other = "Extra context to guide the extraction"

	[triage.flag_max_items]
	other = "Maximum number of action items to extract (0 = no limit)"

	[triage.flag_repo]
	other = "Target repository as owner/repo for the rendered commands"

	[triage.flag_no_labels]
	other = "Skip labels entirely"

	[triage.flag_copy]
	other = "Copy the rendered commands to the clipboard"

	[triage.flag_create]
	other = "Create the issues directly through the GitHub API"

	[triage.flag_dry_run]
	other = "Show the result without copying or creating anything"

	[triage.flag_json]
	other = "Print the records as JSON instead of the formatted preview"

	[triage.error_no_body]
	other = "The email has no content. Use --subject/--body or --body-file"

	[triage.error_multiple_body]
	other = "Use either --body or --body-file, not both"

	[triage.banner]
	other = "Email triage"

	[triage.analyzing]
	other = "Reading the email..."

	[triage.item_header]
	other = "Action item {{.Index}} of {{.Total}}"

	[triage.preview_title_label]
	other = "Title"

	[triage.preview_labels_label]
	other = "Labels"

	[triage.preview_sender_label]
	other = "Requested by"

	[triage.commands_header]
	other = "Ready-to-copy commands"

	[triage.copied]
	one = "{{.Count}} command copied to the clipboard"
	other = "{{.Count}} commands copied to the clipboard"

	[triage.dry_run_complete]
	other = "Dry run complete. Nothing was copied or created"

	[triage.confirm_create]
	other = "Create these issues on GitHub? (Y/n)"

	[triage.cancelled]
	other = "Operation cancelled"

	[triage.creating]
	other = "Creating issues on GitHub..."

	[triage.created_successfully]
	other = "Issue #{{.Number}} created: {{.URL}}"

	[triage.create_partial]
	other = "Created {{.Created}} of {{.Total}} issues"

	[triage.status]
	other = "Status"

	[config_command_usage]
	other = "Manage MailMate configuration"

	[config_init_usage]
	other = "Create the default configuration file"

	[config_initialized]
	other = "Configuration written to {{.Path}}"

	[config_show_usage]
	other = "Show the current configuration"

	[current_config]
	other = "Current configuration"

	[config_set_lang_usage]
	other = "Set the interface and generation language"

	[config_set_lang_flag_usage]
	other = "Language code (en, es)"

	[unsupported_language]
	other = "Unsupported language. Available: en, es"

	[language_configured]
	other = "Language set to '{{.Lang}}'"

	[config_set_api_key_usage]
	other = "Store the API key for an AI provider"

	[config_flag_provider]
	other = "AI provider name"

	[config_flag_api_key]
	other = "API key value"

	[api_key_configured]
	other = "API key stored for provider '{{.Provider}}'"

	[config_set_model_usage]
	other = "Choose the model for the active AI provider"

	[config_flag_model]
	other = "Model name"

	[model_configured]
	other = "Model set to '{{.Model}}'"

	[unsupported_model]
	other = "Model '{{.Model}}' is not supported for provider '{{.Provider}}'"

	[config_set_vcs_usage]
	other = "Configure the GitHub repository and token for --create"

	[config_flag_owner]
	other = "Repository owner"

	[config_flag_repo]
	other = "Repository name"

	[config_flag_token]
	other = "Personal access token"

	[vcs_configured]
	other = "GitHub repository set to {{.Owner}}/{{.Repo}}"

	[config_set_tool_usage]
	other = "Choose the tracker CLI used in rendered commands"

	[config_flag_tool]
	other = "Tracker CLI binary (gh)"

	[tool_configured]
	other = "Tracker CLI set to '{{.Tool}}'"

	[error_missing_api_key]
	other = "The API key for {{.Provider}} is not configured. Run: mailmate config set-api-key"

	[ai_service.error_ai_client]
	other = "Error creating the AI client: {{.Error}}"

	[stats.usage]
	other = "Show token and cost statistics"

	[stats.monthly_flag]
	other = "Show the current month instead of today"

	[stats.error_init]
	other = "Could not open the activity history"

	[stats.daily_title]
	other = "Activity today"

	[stats.monthly_title]
	other = "Activity this month"

	[stats.no_activity]
	other = "No recorded activity"

	[stats.total]
	other = "Total"

	[cache.usage]
	other = "Manage the local response cache"

	[cache.clean_usage]
	other = "Delete every cached response"

	[cache.cleaned]
	other = "Cache cleaned"

	[cache.clean_error]
	other = "Could not clean the cache"

	[cache.stats_usage]
	other = "Show how many responses are cached"

	[cache.stats_entries]
	other = "{{.Count}} cached responses ({{.Size}})"

	[completion_command_usage]
	other = "Generate a shell completion script"

	[completion_unsupported_shell]
	other = "Unsupported shell '{{.Shell}}'. Available: bash, zsh, fish"

	[cost.budget_exceeded]
	other = "Daily budget exceeded"

	[cost.routing_suggestion]
	other = "Routing suggestion: {{.Rationale}}"

	[cost.routing_suggested_model]
	other = "Suggested model: {{.Suggested}} (current: {{.Current}})"

	[cost.confirmation_separator]
	other = "----------------------------------------"

	[cost.confirmation_header]
	other = "Estimated cost of this call"

	[cost.confirmation_input_tokens]
	other = "Input tokens: {{.Tokens}}"

	[cost.confirmation_output_tokens]
	other = "Estimated output tokens: {{.Tokens}}"

	[cost.confirmation_estimated_cost]
	other = "Estimated cost: {{.Cost}}"

	[cost.confirmation_prompt]
	other = "Continue? (Y/n):"

	[cost.confirmation_use_suggested]
	other = "Use the suggested model? (Y/n/m):"

	[cost.confirmation_use_suggested_help]
	other = "Y = suggested, m = keep mine, n = cancel"

	[cost.cache_hit]
	other = "Response served from local cache"

	[routing.rationale_light]
	other = "Short email, a lighter model is enough"

	[routing.rationale_default]
	other = "The configured model fits this input"

	[ui.token_usage]
	other = "Token usage"

	[ui.input]
	other = "input"

	[ui.output]
	other = "output"

	[ui.total]
	other = "total"

	[ui.cost]
	other = "Cost"

	[ui.duration]
	other = "Duration"

	[ui_error.try_suggestion]
	other = "Try: "

	[label.urgent]
	other = "Needs attention as soon as possible"

	[label.bug]
	other = "Something is broken"

	[label.feature]
	other = "New functionality"

	[label.question]
	other = "Needs an answer"

	[label.docs]
	other = "Documentation work"

	[label.infra]
	other = "Infrastructure and tooling"

	[update.available]
	other = "New version available: {{.Latest}} (you have {{.Current}})"

	[update.run_hint]
	other = "Download it from https://github.com/Tomas-vilte/MailMate/releases"
	`
