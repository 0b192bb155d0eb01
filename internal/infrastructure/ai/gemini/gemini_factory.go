package gemini

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MailMate/internal/config"
	"github.com/Tomas-vilte/MailMate/internal/domain/ports"
	"github.com/Tomas-vilte/MailMate/internal/i18n"
)

// GeminiProviderFactory implementa AIProviderFactory para Gemini
type GeminiProviderFactory struct{}

// NewGeminiProviderFactory crea una nueva factory para Gemini
func NewGeminiProviderFactory() *GeminiProviderFactory {
	return &GeminiProviderFactory{}
}

// CreateActionItemExtractor crea un servicio Gemini para extraer items de acción
func (f *GeminiProviderFactory) CreateActionItemExtractor(
	ctx context.Context,
	cfg *config.Config,
	trans *i18n.Translations,
) (ports.ActionItemExtractor, error) {
	return NewGeminiActionItemExtractor(ctx, cfg, trans)
}

// ValidateConfig valida la configuración de Gemini
func (f *GeminiProviderFactory) ValidateConfig(cfg *config.Config) error {
	providerCfg, exists := cfg.AIProviders["gemini"]
	if !exists {
		return fmt.Errorf("configuracion de gemini no encontrada")
	}

	if providerCfg.APIKey == "" {
		return fmt.Errorf("gemini API key es requerida")
	}

	return nil
}

// Name retorna el nombre del proveedor
func (f *GeminiProviderFactory) Name() string {
	return "gemini"
}
