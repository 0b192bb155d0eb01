package services

import (
	"fmt"
	"strings"
)

// titlePrefixRules mapea label → prefijo de título, en orden de prioridad.
// Gana la primera label presente; sin label conocida el título queda igual.
var titlePrefixRules = []struct {
	Label  string
	Prefix string
}{
	{"urgent", "[Urgent] "},
	{"bug", "[Bug] "},
	{"feature", "[Feature] "},
	{"question", "[Question] "},
	{"docs", "[Docs] "},
	{"infra", "[Infra] "},
}

// AllowedLabels es el set de labels que aceptamos de la IA.
func AllowedLabels() []string {
	labels := make([]string, 0, len(titlePrefixRules))
	for _, rule := range titlePrefixRules {
		labels = append(labels, rule.Label)
	}
	return labels
}

// ApplyTitlePrefix antepone el prefijo correspondiente a la label de mayor
// prioridad. Un título que ya trae el prefijo no se toca.
func ApplyTitlePrefix(title string, labels []string) string {
	labelSet := make(map[string]bool, len(labels))
	for _, l := range labels {
		labelSet[strings.ToLower(strings.TrimSpace(l))] = true
	}

	for _, rule := range titlePrefixRules {
		if labelSet[rule.Label] {
			if strings.HasPrefix(title, rule.Prefix) {
				return title
			}
			return rule.Prefix + title
		}
	}
	return title
}

// MergeOriginalQuote fusiona la cita textual del correo dentro del cuerpo,
// como bloque quoteado de markdown atribuido al remitente si se conoce.
func MergeOriginalQuote(body, quote, sender string) string {
	quote = strings.TrimSpace(quote)
	if quote == "" {
		return strings.TrimSpace(body)
	}

	attribution := "*From the original email:*"
	if sender != "" {
		attribution = fmt.Sprintf("*From the original email (%s):*", sender)
	}

	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(body))
	sb.WriteString("\n\n---\n")
	sb.WriteString(attribution)
	sb.WriteString("\n\n")

	for i, line := range strings.Split(quote, "\n") {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("> ")
		sb.WriteString(line)
	}

	return sb.String()
}

// mergeLabels combina las labels de la IA con las default de la config,
// deduplicando y descartando vacías. No inventa labels si ambas están vacías.
func mergeLabels(aiLabels, defaultLabels []string) []string {
	seen := make(map[string]bool)
	merged := make([]string, 0, len(aiLabels)+len(defaultLabels))

	for _, group := range [][]string{aiLabels, defaultLabels} {
		for _, label := range group {
			trimmed := strings.ToLower(strings.TrimSpace(label))
			if trimmed != "" && !seen[trimmed] {
				seen[trimmed] = true
				merged = append(merged, trimmed)
			}
		}
	}

	return merged
}
