// Package textlayout hace word-wrap codicioso contra una función de medición
// inyectada por el host (métricas de fuente reales del page-writer).
package textlayout

import "strings"

// Measure mapea un string a su ancho en unidades de documento (puntos).
// Debe ser pura y monotónica respecto a concatenación.
type Measure func(s string) float64

// Wrap parte text en líneas que midan <= maxWidth. Estrategia codiciosa:
// se agregan palabras (separadas por un espacio) mientras quepan; al exceder
// se cierra la línea y la palabra abre la siguiente. Una palabra sola más
// ancha que maxWidth queda en su propia línea (el desborde se acepta, no se
// parte por caracteres). Entrada vacía o solo espacios produce nil.
func Wrap(text string, measure Measure, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
