package models

// ExtractionStatus es el estado del único request en vuelo contra la IA.
type ExtractionStatus int

const (
	// StatusIdle indica que todavía no se pidió nada
	StatusIdle ExtractionStatus = iota

	// StatusExtracting indica que hay un request en curso
	StatusExtracting

	// StatusDone indica que la extracción terminó con resultados
	StatusDone

	// StatusFailed indica que la extracción falló o no devolvió datos
	StatusFailed
)

func (s ExtractionStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusExtracting:
		return "extracting"
	case StatusDone:
		return "done"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}
