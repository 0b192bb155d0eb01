package models

// ExtractionRequest contiene la información necesaria para extraer items de
// acción de un correo.
type ExtractionRequest struct {
	// Email es el correo a analizar
	Email EmailMessage

	// Hint es contexto adicional proporcionado por el usuario para guiar la extracción (opcional)
	Hint string

	// MaxItems limita la cantidad de items a extraer (0 = sin límite)
	MaxItems int

	// Language es el idioma para la generación de contenido (ej: "es", "en")
	Language string
}

// ExtractionResult contiene el resultado crudo de la extracción.
type ExtractionResult struct {
	// Items son los items de acción extraídos por la IA
	Items []ActionItem

	// Usage contiene los metadatos de uso de tokens de la IA
	Usage *TokenUsage
}
