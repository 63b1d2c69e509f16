package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/proposal-pro/internal/domain/layout"
)

func TestFileName_NombreYApellido(t *testing.T) {
	assert.Equal(t, "Pat_L_invoice_7.pdf", layout.FileName("Pat Lopez", 7))
}

func TestFileName_UnSoloToken(t *testing.T) {
	assert.Equal(t, "Cher_invoice_3.pdf", layout.FileName("Cher", 3))
}

func TestFileName_NombreVacioUsaLiteral(t *testing.T) {
	assert.Equal(t, "invoice_invoice_9.pdf", layout.FileName("", 9))
	assert.Equal(t, "invoice_invoice_9.pdf", layout.FileName("   ", 9))
}

func TestFileName_SaneaCaracteresNoAlfanumericos(t *testing.T) {
	// El guion y el apóstrofe se eliminan del primer token; del apellido solo
	// se toma la inicial en mayúscula.
	assert.Equal(t, "MaryJane_O_invoice_12.pdf", layout.FileName("Mary-Jane O'Brien", 12))
}

func TestFileName_TomaInicialDelUltimoToken(t *testing.T) {
	assert.Equal(t, "Ana_G_invoice_1.pdf", layout.FileName("Ana Maria Garcia", 1))
	// Apellido en minúscula: la inicial siempre sube a mayúscula.
	assert.Equal(t, "Ana_G_invoice_2.pdf", layout.FileName("Ana garcia", 2))
}
