package di

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MailMate/internal/config"
	"github.com/Tomas-vilte/MailMate/internal/domain/ports"
	"github.com/Tomas-vilte/MailMate/internal/i18n"
	"github.com/Tomas-vilte/MailMate/internal/infrastructure/ai/registry"
	"github.com/Tomas-vilte/MailMate/internal/infrastructure/clipboard"
	vcsregistry "github.com/Tomas-vilte/MailMate/internal/infrastructure/vcs/registry"
	"github.com/Tomas-vilte/MailMate/internal/services"
)

// Container gestiona las dependencias de la aplicación
type Container struct {
	config       *config.Config
	translations *i18n.Translations

	// Registries
	aiRegistry  *registry.AIProviderRegistry
	vcsRegistry *vcsregistry.VCSProviderRegistry

	// Services (lazy initialized)
	triageService *services.TriageService
	clipboard     ports.Clipboard
}

// NewContainer crea un nuevo contenedor de dependencias
func NewContainer(cfg *config.Config, trans *i18n.Translations) *Container {
	return &Container{
		config:       cfg,
		translations: trans,
		aiRegistry:   registry.NewAIProviderRegistry(),
		vcsRegistry:  vcsregistry.NewVCSProviderRegistry(),
		clipboard:    clipboard.NewSystemClipboard(),
	}
}

// RegisterAIProvider registra un proveedor de IA
func (c *Container) RegisterAIProvider(name string, factory registry.AIProviderFactory) error {
	return c.aiRegistry.Register(name, factory)
}

// RegisterVCSProvider registra un proveedor VCS
func (c *Container) RegisterVCSProvider(name string, factory vcsregistry.VCSProviderFactory) error {
	return c.vcsRegistry.Register(name, factory)
}

// SetClipboard permite reemplazar el portapapeles, pensado para tests
func (c *Container) SetClipboard(cb ports.Clipboard) {
	c.clipboard = cb
}

// GetClipboard retorna el portapapeles configurado
func (c *Container) GetClipboard() ports.Clipboard {
	return c.clipboard
}

// GetAIRegistry retorna el registro de proveedores AI
func (c *Container) GetAIRegistry() *registry.AIProviderRegistry {
	return c.aiRegistry
}

// GetVCSRegistry retorna el registro de proveedores VCS
func (c *Container) GetVCSRegistry() *vcsregistry.VCSProviderRegistry {
	return c.vcsRegistry
}

// GetExtractor retorna el extractor de items de acción del proveedor activo
func (c *Container) GetExtractor(ctx context.Context) (ports.ActionItemExtractor, error) {
	if c.config.AIConfig.ActiveAI == "" {
		return nil, fmt.Errorf("no hay IA activa configurada")
	}

	aiFactory, err := c.aiRegistry.Get(string(c.config.AIConfig.ActiveAI))
	if err != nil {
		return nil, fmt.Errorf("proveedor de IA '%s' no encontrado: %w", c.config.AIConfig.ActiveAI, err)
	}

	extractor, err := aiFactory.CreateActionItemExtractor(ctx, c.config, c.translations)
	if err != nil {
		return nil, fmt.Errorf("error al crear el extractor de items: %w", err)
	}

	return extractor, nil
}

// GetVCSClient crea el cliente VCS desde la configuración activa.
// repoOverride viene del flag --repo como owner/repo y puede ser vacío.
func (c *Container) GetVCSClient(ctx context.Context, ownerOverride, repoOverride string) (ports.VCSClient, error) {
	return c.vcsRegistry.CreateClientFromConfig(ctx, c.config, c.translations, ownerOverride, repoOverride)
}

// GetTriageService retorna el servicio de triage (lazy initialization)
func (c *Container) GetTriageService(ctx context.Context) (*services.TriageService, error) {
	if c.triageService != nil {
		return c.triageService, nil
	}

	extractor, err := c.GetExtractor(ctx)
	if err != nil {
		return nil, err
	}

	c.triageService = services.NewTriageService(
		extractor,
		c.config,
		services.WithClipboard(c.clipboard),
	)

	return c.triageService, nil
}

// GetConfig retorna la configuración
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetTranslations retorna las traducciones
func (c *Container) GetTranslations() *i18n.Translations {
	return c.translations
}
