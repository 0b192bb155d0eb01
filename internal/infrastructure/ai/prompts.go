package ai

// Templates para extraer items de acción de un correo
const (
	triagePromptTemplateEN = `You are an assistant that turns emails into actionable issue tickets.

	Instructions:
	1. Read the email below and extract up to %d concrete action items.
	2. An action item is something a developer must DO: fix, build, investigate, answer, document.
	3. Ignore greetings, signatures, legal footers and pure FYI content.
	4. For each action item produce:
	   - title: short and imperative (max 80 chars), no trailing period
	   - body: 2-4 sentences of context a developer needs to start working
	   - labels: zero or more from this exact set: urgent, bug, feature, question, docs, infra
	   - original_quote: the verbatim sentence(s) of the email that motivated the item, or empty if none fits
	5. Only use "urgent" when the email makes the urgency explicit.
	6. Do not invent work the email does not ask for. If the email contains no action items, return an empty list.

	Email:
	%s
	`

	triagePromptTemplateES = `Sos un asistente que convierte correos en tickets accionables.

	Instrucciones:
	1. Leé el correo de abajo y extraé hasta %d items de acción concretos.
	2. Un item de acción es algo que un desarrollador tiene que HACER: arreglar, construir, investigar, responder, documentar.
	3. Ignorá saludos, firmas, pies legales y contenido puramente informativo.
	4. Para cada item de acción generá:
	   - title: corto e imperativo (máx 80 caracteres), sin punto final
	   - body: 2-4 oraciones con el contexto que un desarrollador necesita para arrancar
	   - labels: cero o más de este set exacto: urgent, bug, feature, question, docs, infra
	   - original_quote: la o las oraciones textuales del correo que motivaron el item, o vacío si ninguna aplica
	5. Usá "urgent" solo cuando el correo hace explícita la urgencia.
	6. No inventes trabajo que el correo no pide. Si el correo no tiene items de acción, devolvé una lista vacía.

	Correo:
	%s
	`
)

// GetTriagePromptTemplate devuelve el template adecuado según el idioma
func GetTriagePromptTemplate(lang string) string {
	switch lang {
	case "es":
		return triagePromptTemplateES
	default:
		return triagePromptTemplateEN
	}
}
