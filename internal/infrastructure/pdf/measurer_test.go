package pdf_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/proposal-pro/internal/infrastructure/pdf"
)

func TestHelveticaMeasurer_AnchosBasicos(t *testing.T) {
	m := pdf.NewHelveticaMeasurer()

	assert.Zero(t, m.Measure("", 8.5, false), "el string vacío mide cero")
	assert.Greater(t, m.Measure("Proposal", 8.5, false), 0.0)
	assert.Greater(t, m.Measure("Proposal extendido", 8.5, false),
		m.Measure("Proposal", 8.5, false),
		"más texto debe medir más ancho")
	assert.Greater(t, m.Measure("Proposal", 14, false),
		m.Measure("Proposal", 8.5, false),
		"mayor tamaño de fuente debe medir más ancho")
}

// Un solo medidor sirve a todos los renders en paralelo (una goroutine de
// Fiber por descarga de PDF): mediciones concurrentes con tamaños y pesos
// distintos deben ser estables, sin contaminarse por el estado de fuente del
// documento interno. Correr con -race.
func TestHelveticaMeasurer_ConcurrenciaEstable(t *testing.T) {
	m := pdf.NewHelveticaMeasurer()

	const sample = "All material is guaranteed to be as specified"
	wantRegular := m.Measure(sample, 8.5, false)
	wantBold := m.Measure(sample, 8.5, true)
	require.Greater(t, wantRegular, 0.0)
	require.NotEqual(t, wantRegular, wantBold)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				// Alternar peso y tamaño fuerza el cambio de fuente en cada
				// llamada: el peor caso para el estado compartido.
				if (g+i)%2 == 0 {
					if got := m.Measure(sample, 8.5, false); got != wantRegular {
						t.Errorf("medición regular inestable: got %v want %v", got, wantRegular)
						return
					}
				} else {
					if got := m.Measure(sample, 8.5, true); got != wantBold {
						t.Errorf("medición bold inestable: got %v want %v", got, wantBold)
						return
					}
				}
				m.Measure("✓", 9, true)
			}
		}(g)
	}
	wg.Wait()
}
