package textlayout_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/proposal-pro/internal/domain/textlayout"
)

// runeWidth mide 1 unidad por runa: suficiente para verificar la estrategia
// de corte sin depender de métricas de fuente reales.
func runeWidth(s string) float64 {
	return float64(len([]rune(s)))
}

func TestWrap_CorteCodicioso(t *testing.T) {
	lines := textlayout.Wrap("aaa bbb ccc", runeWidth, 7)
	assert.Equal(t, []string{"aaa bbb", "ccc"}, lines,
		"deben caber dos palabras por línea con ancho 7")
}

func TestWrap_TodoCabeEnUnaLinea(t *testing.T) {
	lines := textlayout.Wrap("uno dos tres", runeWidth, 100)
	assert.Equal(t, []string{"uno dos tres"}, lines)
}

func TestWrap_PalabraMasAnchaQueElLimite(t *testing.T) {
	// Una palabra sola que excede el ancho queda en su propia línea; el
	// desborde se acepta, nunca se parte por caracteres.
	lines := textlayout.Wrap("ok supercalifragilistico fin", runeWidth, 5)
	assert.Equal(t, []string{"ok", "supercalifragilistico", "fin"}, lines)
}

func TestWrap_EntradaVaciaProduceNil(t *testing.T) {
	assert.Nil(t, textlayout.Wrap("", runeWidth, 10))
	assert.Nil(t, textlayout.Wrap("   \t\n  ", runeWidth, 10))
}

func TestWrap_ConservaOrdenYPalabras(t *testing.T) {
	text := "el rápido zorro marrón salta sobre el perro perezoso"
	lines := textlayout.Wrap(text, runeWidth, 15)

	// Ninguna línea con más de una palabra debe exceder el ancho.
	for _, line := range lines {
		if strings.Contains(line, " ") {
			assert.LessOrEqual(t, runeWidth(line), 15.0,
				"la línea %q no debe exceder el ancho máximo", line)
		}
	}
	// Reunir las líneas reconstruye exactamente la secuencia de palabras.
	assert.Equal(t, strings.Join(strings.Fields(text), " "), strings.Join(lines, " "),
		"el wrap no debe perder ni reordenar palabras")
}

func TestWrap_EspaciosMultiplesSeNormalizan(t *testing.T) {
	lines := textlayout.Wrap("uno   dos\t\ttres", runeWidth, 100)
	assert.Equal(t, []string{"uno dos tres"}, lines)
}
