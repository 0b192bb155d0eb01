package models

import "strings"

// EmailMessage es el correo pegado por el usuario. Solo necesitamos el texto,
// no se parsean headers MIME ni adjuntos.
type EmailMessage struct {
	// Subject es el asunto del correo (opcional)
	Subject string

	// Body es el cuerpo del correo en texto plano
	Body string

	// Sender es quien escribió el correo, tal como lo pegó el usuario (opcional)
	Sender string
}

// IsEmpty reporta si el correo no tiene contenido utilizable.
func (m EmailMessage) IsEmpty() bool {
	return strings.TrimSpace(m.Subject) == "" && strings.TrimSpace(m.Body) == ""
}
