package ports

// Clipboard abstrae el portapapeles del sistema.
type Clipboard interface {
	// WriteAll reemplaza el contenido del portapapeles
	WriteAll(text string) error
}
