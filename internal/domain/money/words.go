package money

import (
	"fmt"
	"strings"
)

var onesWords = [...]string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tensWords = [...]string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// AmountInWords convierte centavos al formato escrito de un cheque en inglés,
// ej. 188075 -> "One Thousand Eight Hundred Eighty and 75/100".
// El monto debe ser no negativo; un negativo es bug del caller y hace panic.
func AmountInWords(cents int64) string {
	if cents < 0 {
		panic(fmt.Sprintf("money: AmountInWords con monto negativo %d", cents))
	}
	dollars := cents / 100
	remainder := cents % 100
	words := "Zero"
	if dollars > 0 {
		words = dollarsToWords(dollars)
	}
	return fmt.Sprintf("%s and %02d/100", words, remainder)
}

// dollarsToWords agrupa de a tres dígitos decimales en escala corta:
// billones / millones / miles / unidades. Los grupos en cero se omiten.
func dollarsToWords(n int64) string {
	billions := n / 1_000_000_000
	millions := (n % 1_000_000_000) / 1_000_000
	thousands := (n % 1_000_000) / 1_000
	remainder := n % 1_000

	var parts []string
	if billions > 0 {
		parts = append(parts, hundredsToWords(billions)+" Billion")
	}
	if millions > 0 {
		parts = append(parts, hundredsToWords(millions)+" Million")
	}
	if thousands > 0 {
		parts = append(parts, hundredsToWords(thousands)+" Thousand")
	}
	if remainder > 0 {
		parts = append(parts, hundredsToWords(remainder))
	}
	return strings.Join(parts, " ")
}

// hundredsToWords deletrea un grupo 1..999: dígito de centenas con "Hundred",
// luego la tabla de teens para 11-19 o decena-guion-unidad ("Seventy-One").
func hundredsToWords(n int64) string {
	var parts []string
	if h := n / 100; h > 0 {
		parts = append(parts, onesWords[h]+" Hundred")
	}
	switch remainder := n % 100; {
	case remainder >= 1 && remainder <= 19:
		parts = append(parts, onesWords[remainder])
	case remainder >= 20:
		t, o := remainder/10, remainder%10
		if o > 0 {
			parts = append(parts, tensWords[t]+"-"+onesWords[o])
		} else {
			parts = append(parts, tensWords[t])
		}
	}
	return strings.Join(parts, " ")
}
