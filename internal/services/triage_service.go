package services

import (
	"context"
	"strings"
	"sync"

	"github.com/Tomas-vilte/MailMate/internal/config"
	"github.com/Tomas-vilte/MailMate/internal/domain/models"
	"github.com/Tomas-vilte/MailMate/internal/domain/ports"
	domainErrors "github.com/Tomas-vilte/MailMate/internal/errors"
	"github.com/Tomas-vilte/MailMate/internal/logger"
	"github.com/Tomas-vilte/MailMate/internal/shell"
)

// TriageRequest es lo que el usuario pidió en una corrida.
type TriageRequest struct {
	Email      models.EmailMessage
	Hint       string
	MaxItems   int
	Repo       string
	SkipLabels bool
}

// TriageResult son los registros listos para mostrar más el uso de tokens.
type TriageResult struct {
	Records []models.IssueRecord
	Usage   *models.TokenUsage
}

// TriageService orquesta el único intercambio con la IA y la transformación
// de los items crudos en registros listos para copiar.
type TriageService struct {
	ai        ports.ActionItemExtractor
	vcsClient ports.VCSClient
	clipboard ports.Clipboard
	config    *config.Config

	mu     sync.Mutex
	status models.ExtractionStatus
}

type TriageOption func(*TriageService)

func WithVCSClient(vcs ports.VCSClient) TriageOption {
	return func(s *TriageService) {
		s.vcsClient = vcs
	}
}

func WithClipboard(cb ports.Clipboard) TriageOption {
	return func(s *TriageService) {
		s.clipboard = cb
	}
}

func NewTriageService(ai ports.ActionItemExtractor, cfg *config.Config, opts ...TriageOption) *TriageService {
	s := &TriageService{
		ai:     ai,
		config: cfg,
		status: models.StatusIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Status retorna el estado del último request.
func (s *TriageService) Status() models.ExtractionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *TriageService) setStatus(status models.ExtractionStatus) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}

// Triage extrae los items de acción del correo y los transforma en registros.
// Hay a lo sumo un request en vuelo: una segunda llamada concurrente falla.
func (s *TriageService) Triage(ctx context.Context, request TriageRequest) (*TriageResult, error) {
	if s.ai == nil {
		return nil, domainErrors.ErrAPIKeyMissing
	}

	if request.Email.IsEmpty() {
		return nil, domainErrors.ErrEmptyEmail
	}

	s.mu.Lock()
	if s.status == models.StatusExtracting {
		s.mu.Unlock()
		return nil, domainErrors.NewAppError(domainErrors.TypeInternal, "an extraction is already in progress", nil)
	}
	s.status = models.StatusExtracting
	s.mu.Unlock()

	maxItems := request.MaxItems
	if maxItems == 0 {
		maxItems = s.config.Triage.MaxItems
	}

	extraction := models.ExtractionRequest{
		Email:    request.Email,
		Hint:     request.Hint,
		MaxItems: maxItems,
		Language: s.config.Language,
	}

	result, err := s.ai.ExtractActionItems(ctx, extraction)
	if err != nil {
		s.setStatus(models.StatusFailed)
		return nil, domainErrors.NewAppError(domainErrors.TypeAI, "failed to extract action items", err)
	}

	if len(result.Items) == 0 {
		s.setStatus(models.StatusFailed)
		return nil, domainErrors.ErrNoActionItems
	}

	if maxItems > 0 && len(result.Items) > maxItems {
		logger.Debug(ctx, "truncating extracted items", "got", len(result.Items), "max", maxItems)
		result.Items = result.Items[:maxItems]
	}

	records := make([]models.IssueRecord, 0, len(result.Items))
	for _, item := range result.Items {
		records = append(records, s.buildRecord(item, request))
	}

	s.setStatus(models.StatusDone)

	return &TriageResult{
		Records: records,
		Usage:   result.Usage,
	}, nil
}

// buildRecord aplica las tres transformaciones locales: labels, prefijo de
// título y fusión de la cita original, y deja el comando de shell armado.
func (s *TriageService) buildRecord(item models.ActionItem, request TriageRequest) models.IssueRecord {
	var labels []string
	if !request.SkipLabels {
		labels = mergeLabels(item.Labels, s.config.Triage.DefaultLabels)
	}

	title := ApplyTitlePrefix(strings.TrimSpace(item.Title), labels)
	body := MergeOriginalQuote(item.Body, item.OriginalQuote, request.Email.Sender)

	repo := request.Repo
	if repo == "" {
		if vcsCfg, ok := s.config.VCSConfigs[s.config.ActiveVCS]; ok && vcsCfg.Owner != "" {
			repo = vcsCfg.Owner + "/" + vcsCfg.Repo
		}
	}

	command := shell.RenderCreateCommand(shell.CommandSpec{
		Tool:   s.config.Triage.Tool,
		Repo:   repo,
		Title:  title,
		Body:   body,
		Labels: labels,
	})

	return models.IssueRecord{
		Title:   title,
		Body:    body,
		Labels:  labels,
		Sender:  request.Email.Sender,
		Command: command,
	}
}

// CopyCommands pone todos los comandos en el portapapeles, uno por línea.
func (s *TriageService) CopyCommands(records []models.IssueRecord) error {
	if s.clipboard == nil {
		return domainErrors.ErrClipboardUnavailable
	}

	commands := make([]string, 0, len(records))
	for _, record := range records {
		commands = append(commands, record.Command)
	}

	if err := s.clipboard.WriteAll(strings.Join(commands, "\n")); err != nil {
		return domainErrors.ErrClipboardUnavailable.WithError(err)
	}
	return nil
}

// CreateIssues crea los registros directamente en el tracker configurado.
// Devuelve las issues creadas hasta el primer error.
func (s *TriageService) CreateIssues(ctx context.Context, records []models.IssueRecord) ([]*models.Issue, error) {
	if s.vcsClient == nil {
		return nil, domainErrors.ErrTokenMissing
	}

	if err := s.vcsClient.EnsureLabels(ctx); err != nil {
		logger.Warn(ctx, "could not ensure labels before creating issues", "error", err)
	}

	created := make([]*models.Issue, 0, len(records))
	for _, record := range records {
		issue, err := s.vcsClient.CreateIssue(ctx, record.Title, record.Body, record.Labels)
		if err != nil {
			return created, domainErrors.ErrCreateIssue.WithError(err)
		}
		created = append(created, issue)
	}

	return created, nil
}
