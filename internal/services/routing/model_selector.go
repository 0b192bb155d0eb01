package routing

// ModelSelector sugiere un modelo según el tamaño de la entrada.
// Un correo corto no justifica el modelo configurado si este es caro.
type ModelSelector struct{}

func NewModelSelector() *ModelSelector {
	return &ModelSelector{}
}

// lightInputThreshold es el límite de tokens por debajo del cual
// un modelo liviano alcanza para extraer items de acción.
const lightInputThreshold = 2000

// SelectBestModel retorna el modelo sugerido para el comando dado.
// Si devuelve el modelo actual, no hay sugerencia.
func (s *ModelSelector) SelectBestModel(command string, inputTokens int, currentModel string) string {
	if command != "triage" {
		return currentModel
	}

	if inputTokens > 0 && inputTokens < lightInputThreshold && currentModel == "gemini-2.5-pro" {
		return "gemini-2.5-flash"
	}

	return currentModel
}

// GetRationale retorna la clave i18n que explica la sugerencia.
func (s *ModelSelector) GetRationale(command string, suggested string, current string) string {
	if suggested != current {
		return "routing.rationale_light"
	}
	return "routing.rationale_default"
}
