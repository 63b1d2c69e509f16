// Package pdf adapta el stream de primitivas del layout a un archivo PDF de
// una página usando gofpdf, y expone las capacidades que el renderer inyecta:
// medición de texto y validación de imágenes.
package pdf

import (
	"sync"

	"github.com/jung-kurt/gofpdf"
)

// HelveticaMeasurer mide texto con las métricas Helvetica de gofpdf, la misma
// fuente con la que el Writer dibuja, de modo que lo medido coincide con lo
// impreso. Una sola instancia sirve a todos los renders concurrentes: el
// documento interno y el buffer del traductor unicode son estado mutable
// compartido, así que cada medición va bajo el mutex.
type HelveticaMeasurer struct {
	mu  sync.Mutex
	doc *gofpdf.Fpdf
	tr  func(string) string
}

// NewHelveticaMeasurer construye el medidor con un documento interno que solo
// se usa como contexto de métricas de fuente.
func NewHelveticaMeasurer() *HelveticaMeasurer {
	doc := gofpdf.New("P", "pt", "Letter", "")
	return &HelveticaMeasurer{
		doc: doc,
		tr:  doc.UnicodeTranslatorFromDescriptor(""),
	}
}

// Measure retorna el ancho en puntos de s al tamaño y peso indicados.
// Seguro para uso concurrente desde cualquier goroutine.
func (m *HelveticaMeasurer) Measure(s string, size float64, bold bool) float64 {
	style := ""
	if bold {
		style = "B"
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doc.SetFont("Helvetica", style, size)
	return m.doc.GetStringWidth(m.tr(s))
}
