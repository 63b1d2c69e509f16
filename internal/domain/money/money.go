// Package money implementa la aritmética monetaria de punto fijo del sistema:
// todos los montos viven como centavos enteros (int64) y solo se convierten a
// texto para mostrar. Regla de redondeo única en todas las operaciones:
// half-away-from-zero sobre la última multiplicación.
package money

import (
	"math"
	"regexp"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formato fijo en-US sin importar el locale del host: separador de miles ",",
// decimal "." y símbolo "$" al frente.
var usPrinter = message.NewPrinter(language.AmericanEnglish)

var nonNumeric = regexp.MustCompile(`[^0-9.]`)

// ParseToCents convierte texto de dinero ("$10.99", "10.99", "1,000") a centavos.
// Elimina todo excepto dígitos y punto; entrada vacía o no parseable produce 0.
// Nunca falla: el default a cero es decisión de diseño, no un error.
func ParseToCents(input string) int64 {
	cleaned := nonNumeric.ReplaceAllString(input, "")
	if cleaned == "" {
		return 0
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}
	// Shift(2) mueve a centavos; Round redondea half-away-from-zero.
	return d.Shift(2).Round(0).IntPart()
}

// FormatCents renderiza centavos como moneda en-US, ej. 1099 -> "$10.99",
// 100000 -> "$1,000.00".
func FormatCents(cents int64) string {
	v := float64(cents) / 100.0
	return usPrinter.Sprintf("$%v", number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// CentsToDisplay renderiza centavos como número plano de dos decimales para
// campos de formulario, ej. 1099 -> "10.99".
func CentsToDisplay(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// LineTotal calcula el total de una línea: round(cantidad × precio unitario).
func LineTotal(quantity float64, unitPriceCents int64) int64 {
	return int64(math.Round(quantity * float64(unitPriceCents)))
}

// TaxAmount calcula el impuesto en centavos: round(subtotal × porcentaje / 100).
func TaxAmount(subtotalCents int64, taxPercent float64) int64 {
	return int64(math.Round(float64(subtotalCents) * taxPercent / 100.0))
}
