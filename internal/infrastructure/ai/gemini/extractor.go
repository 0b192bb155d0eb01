package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MailMate/internal/config"
	"github.com/Tomas-vilte/MailMate/internal/domain/models"
	"github.com/Tomas-vilte/MailMate/internal/domain/ports"
	"github.com/Tomas-vilte/MailMate/internal/i18n"
	"github.com/Tomas-vilte/MailMate/internal/infrastructure/ai"
	"github.com/Tomas-vilte/MailMate/internal/services"
	"google.golang.org/genai"
)

type GeminiActionItemExtractor struct {
	*GeminiProvider
	wrapper    *ai.CostAwareWrapper
	generateFn ai.GenerateFunc
	config     *config.Config
	trans      *i18n.Translations
}

var _ ports.ActionItemExtractor = (*GeminiActionItemExtractor)(nil)

func NewGeminiActionItemExtractor(ctx context.Context, cfg *config.Config, trans *i18n.Translations) (*GeminiActionItemExtractor, error) {
	providerCfg, exists := cfg.AIProviders["gemini"]
	if !exists || providerCfg.APIKey == "" {
		msg := trans.GetMessage("error_missing_api_key", 0, map[string]interface{}{"Provider": "gemini"})
		return nil, fmt.Errorf("%s", msg)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  providerCfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		msg := trans.GetMessage("ai_service.error_ai_client", 0, map[string]interface{}{
			"Error": err,
		})
		return nil, fmt.Errorf("%s", msg)
	}

	modelName := string(cfg.AIConfig.Models[config.AIGemini])

	budgetDaily := 0.0
	if cfg.AIConfig.BudgetDaily != nil {
		budgetDaily = *cfg.AIConfig.BudgetDaily
	}

	service := &GeminiActionItemExtractor{
		GeminiProvider: NewGeminiProvider(client, modelName),
		config:         cfg,
		trans:          trans,
	}

	wrapper, err := ai.NewCostAwareWrapper(ai.WrapperConfig{
		Provider:              service,
		BudgetDaily:           budgetDaily,
		Trans:                 trans,
		EstimatedOutputTokens: 800,
		SkipConfirmation:      cfg.AIConfig.SkipCostConfirmation,
	})
	if err != nil {
		return nil, fmt.Errorf("error creando wrapper: %w", err)
	}

	service.wrapper = wrapper
	service.generateFn = service.defaultGenerate

	return service, nil
}

func (s *GeminiActionItemExtractor) defaultGenerate(ctx context.Context, mName string, p string) (interface{}, *models.TokenUsage, error) {
	genConfig := GetGenerateConfig(mName)

	resp, err := s.Client.Models.GenerateContent(ctx, mName, genai.Text(p), genConfig)
	if err != nil {
		return nil, nil, err
	}

	usage := extractUsage(resp)
	return resp, usage, nil
}

// ExtractActionItems extrae los items de acción del correo usando Gemini.
func (s *GeminiActionItemExtractor) ExtractActionItems(ctx context.Context, request models.ExtractionRequest) (*models.ExtractionResult, error) {
	prompt := s.buildPrompt(request)

	resp, usage, err := s.wrapper.WrapGenerate(ctx, "triage", prompt, s.generateFn)
	if err != nil {
		return nil, fmt.Errorf("error extrayendo items de acción: %w", err)
	}

	var responseText string
	if geminiResp, ok := resp.(*genai.GenerateContentResponse); ok {
		responseText = formatResponse(geminiResp)
	} else if str, ok := resp.(string); ok {
		responseText = str
	}

	if responseText == "" {
		return nil, fmt.Errorf("ningún contenido generado por IA")
	}

	items, err := s.parseResponse(responseText)
	if err != nil {
		return nil, fmt.Errorf("error al parsear la respuesta de la IA: %w", err)
	}

	return &models.ExtractionResult{
		Items: items,
		Usage: usage,
	}, nil
}

// buildPrompt construye el prompt de extracción a partir del correo.
func (s *GeminiActionItemExtractor) buildPrompt(request models.ExtractionRequest) string {
	var sb strings.Builder

	if request.Email.Subject != "" {
		sb.WriteString(fmt.Sprintf("Subject: %s\n", request.Email.Subject))
	}
	if request.Email.Sender != "" {
		sb.WriteString(fmt.Sprintf("From: %s\n", request.Email.Sender))
	}
	sb.WriteString("\n")
	sb.WriteString(request.Email.Body)

	if request.Hint != "" {
		sb.WriteString(fmt.Sprintf("\n\nUser Hint: %s\n", request.Hint))
	}

	maxItems := request.MaxItems
	if maxItems <= 0 {
		maxItems = 10
	}

	template := ai.GetTriagePromptTemplate(request.Language)
	return fmt.Sprintf(template, maxItems, sb.String())
}

// parseResponse parsea la respuesta JSON de Gemini.
// Acepta tanto la lista directa como un objeto {"items": [...]}.
func (s *GeminiActionItemExtractor) parseResponse(content string) ([]models.ActionItem, error) {
	if content == "" {
		return nil, fmt.Errorf("empty response from AI")
	}

	content = ExtractJSON(content)

	var items []models.ActionItem
	if err := json.Unmarshal([]byte(content), &items); err != nil {
		var wrapped struct {
			Items []models.ActionItem `json:"items"`
		}
		if err2 := json.Unmarshal([]byte(content), &wrapped); err2 != nil {
			return nil, fmt.Errorf("respuesta JSON inválida: %w", err)
		}
		items = wrapped.Items
	}

	cleaned := make([]models.ActionItem, 0, len(items))
	for _, item := range items {
		item.Title = strings.TrimSpace(item.Title)
		item.Body = strings.TrimSpace(item.Body)
		if item.Title == "" && item.Body == "" {
			continue
		}
		item.Labels = s.cleanLabels(item.Labels)
		cleaned = append(cleaned, item)
	}

	return cleaned, nil
}

// cleanLabels limpia y valida las labels, mantiene solo las permitidas.
func (s *GeminiActionItemExtractor) cleanLabels(labels []string) []string {
	allowedLabels := make(map[string]bool)
	for _, label := range services.AllowedLabels() {
		allowedLabels[label] = true
	}

	cleaned := make([]string, 0)
	seen := make(map[string]bool)

	for _, label := range labels {
		trimmed := strings.TrimSpace(strings.ToLower(label))
		if trimmed != "" && allowedLabels[trimmed] && !seen[trimmed] {
			cleaned = append(cleaned, trimmed)
			seen[trimmed] = true
		}
	}

	return cleaned
}
