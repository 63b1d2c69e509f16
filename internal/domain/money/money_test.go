package money_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/proposal-pro/internal/domain/money"
)

// ──────────────────────────────────────────────────────────────────────────────
// ParseToCents
// ──────────────────────────────────────────────────────────────────────────────

func TestParseToCents_EntradasValidas(t *testing.T) {
	cases := []struct {
		input string
		want  int64
	}{
		{"10.99", 1099},
		{"$10.99", 1099},
		{"1,000", 100000},
		{"$1,234.56", 123456},
		{"0", 0},
		{"0.01", 1},
		{"5", 500},
		{"  $ 42.50  ", 4250},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, money.ParseToCents(tc.input),
			"el monto %q debe parsearse a %d centavos", tc.input, tc.want)
	}
}

func TestParseToCents_EntradasInvalidasProducenCero(t *testing.T) {
	// El defaulting a cero es contrato, no error: el formulario manda texto libre.
	for _, input := range []string{"", "abc", "10.9.9", "$", "..", "N/A"} {
		assert.Zero(t, money.ParseToCents(input),
			"la entrada no parseable %q debe producir 0", input)
	}
}

func TestParseToCents_RedondeaMitadLejosDeCero(t *testing.T) {
	// 0.005 dólares = 0.5 centavos → sube a 1.
	assert.Equal(t, int64(1), money.ParseToCents("0.005"))
	assert.Equal(t, int64(1100), money.ParseToCents("10.995"))
}

// ──────────────────────────────────────────────────────────────────────────────
// FormatCents / CentsToDisplay
// ──────────────────────────────────────────────────────────────────────────────

func TestFormatCents_FormatoEnUS(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{1, "$0.01"},
		{1099, "$10.99"},
		{100000, "$1,000.00"},
		{123456789, "$1,234,567.89"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, money.FormatCents(tc.cents),
			"%d centavos deben formatearse como %s", tc.cents, tc.want)
	}
}

func TestCentsToDisplay_DosDecimalesSinSimbolo(t *testing.T) {
	assert.Equal(t, "10.99", money.CentsToDisplay(1099))
	assert.Equal(t, "0.00", money.CentsToDisplay(0))
	assert.Equal(t, "1000.00", money.CentsToDisplay(100000))
}

func TestFormatParse_RoundTrip(t *testing.T) {
	// format→parse debe devolver los centavos originales en todo el rango útil.
	for _, cents := range []int64{0, 1, 99, 100, 1099, 50000, 999999, 62000, 123456789, 100000000000} {
		got := money.ParseToCents(money.FormatCents(cents))
		assert.Equal(t, cents, got,
			"round-trip de %d centavos vía %s", cents, money.FormatCents(cents))
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// LineTotal / TaxAmount
// ──────────────────────────────────────────────────────────────────────────────

func TestLineTotal(t *testing.T) {
	assert.Equal(t, int64(2198), money.LineTotal(2.0, 1099))
	assert.Equal(t, int64(0), money.LineTotal(0.0, 1099))
	assert.Equal(t, int64(1500), money.LineTotal(1.5, 1000))
	assert.Equal(t, int64(1099), money.LineTotal(1.0, 1099))
}

func TestLineTotal_MitadSubeLejosDeCero(t *testing.T) {
	// 0.5 × 1 centavo = 0.5 → redondea a 1, nunca banker's rounding.
	assert.Equal(t, int64(1), money.LineTotal(0.5, 1))
	assert.Equal(t, int64(3), money.LineTotal(2.5, 1))
}

func TestTaxAmount(t *testing.T) {
	assert.Equal(t, int64(825), money.TaxAmount(10000, 8.25))
	assert.Equal(t, int64(0), money.TaxAmount(10000, 0))
	assert.Equal(t, int64(5115), money.TaxAmount(62000, 8.25))
	assert.Equal(t, int64(0), money.TaxAmount(0, 8.25))
}

func TestTaxAmount_MitadSubeLejosDeCero(t *testing.T) {
	// 10 centavos × 5% = 0.5 → 1 centavo.
	assert.Equal(t, int64(1), money.TaxAmount(10, 5))
}

func ExampleFormatCents() {
	fmt.Println(money.FormatCents(188075))
	// Output: $1,880.75
}
