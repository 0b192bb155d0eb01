package ports

import (
	"context"

	"github.com/Tomas-vilte/MailMate/internal/domain/models"
)

// ActionItemExtractor define la interfaz para extraer items de acción de un correo.
type ActionItemExtractor interface {
	// ExtractActionItems analiza el correo y devuelve los items de acción encontrados.
	// Una llamada, una respuesta: no hay reintentos ni streaming.
	ExtractActionItems(ctx context.Context, request models.ExtractionRequest) (*models.ExtractionResult, error)
}
