// Package shell arma las invocaciones de 'gh issue create' listas para copiar.
// El escape cubre embebido dentro de comillas dobles: POSIX sh solo interpreta
// \, ", ` y $ ahí adentro, así que esos cuatro se escapan y el resto queda igual.
package shell

import (
	"strings"
)

// replacer escapa los cuatro metacaracteres de una double-quoted string
// en una sola pasada, sin re-escapar lo ya escapado.
var replacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"`", "\\`",
	`$`, `\$`,
)

// Escape escapa un texto para embeberlo dentro de comillas dobles.
func Escape(s string) string {
	return replacer.Replace(s)
}

// Quote retorna el texto escapado y rodeado de comillas dobles.
func Quote(s string) string {
	return `"` + Escape(s) + `"`
}

// CommandSpec describe una invocación de creación de ticket.
type CommandSpec struct {
	// Tool es el binario del tracker ("gh" por defecto)
	Tool string

	// Repo es el destino como owner/repo (opcional)
	Repo string

	Title  string
	Body   string
	Labels []string
}

// RenderCreateCommand arma el comando de shell para crear el ticket.
// Labels se unen con coma en un solo --label, como lo espera gh.
func RenderCreateCommand(spec CommandSpec) string {
	tool := spec.Tool
	if tool == "" {
		tool = "gh"
	}

	var sb strings.Builder
	sb.WriteString(tool)
	sb.WriteString(" issue create --title ")
	sb.WriteString(Quote(spec.Title))
	sb.WriteString(" --body ")
	sb.WriteString(Quote(spec.Body))

	if len(spec.Labels) > 0 {
		sb.WriteString(" --label ")
		sb.WriteString(Quote(strings.Join(spec.Labels, ",")))
	}

	if spec.Repo != "" {
		sb.WriteString(" --repo ")
		sb.WriteString(Quote(spec.Repo))
	}

	return sb.String()
}
