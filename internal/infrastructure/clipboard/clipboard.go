// Package clipboard adapta la librería del sistema al port de dominio.
package clipboard

import (
	"github.com/Tomas-vilte/MailMate/internal/domain/ports"
	"github.com/atotto/clipboard"
)

var _ ports.Clipboard = (*SystemClipboard)(nil)

// SystemClipboard escribe en el portapapeles del sistema operativo.
type SystemClipboard struct{}

func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

func (c *SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
