package models

// ActionItem es un item de acción tal como lo devuelve la IA, antes de
// cualquier transformación local.
type ActionItem struct {
	// Title es el título propuesto para el ticket
	Title string `json:"title"`

	// Body es la descripción propuesta para el ticket
	Body string `json:"body"`

	// Labels son las etiquetas sugeridas (se validan contra el set permitido)
	Labels []string `json:"labels"`

	// OriginalQuote es la cita textual del correo que originó el item (opcional)
	OriginalQuote string `json:"original_quote,omitempty"`
}

// IssueRecord es un item de acción ya transformado, listo para mostrar:
// título con prefijo según label y cita original fusionada en el cuerpo.
type IssueRecord struct {
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Labels []string `json:"labels,omitempty"`

	// Sender es quien pidió la acción en el correo original (opcional)
	Sender string `json:"sender,omitempty"`

	// Command es la invocación de shell lista para copiar
	Command string `json:"command"`
}

// Issue es una issue ya creada en el tracker remoto.
type Issue struct {
	ID     int
	Number int
	Title  string
	State  string
	Labels []string
	URL    string
}
