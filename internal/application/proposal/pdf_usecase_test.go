package proposal_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/proposal-pro/internal/application/proposal"
	"github.com/tu-usuario/proposal-pro/internal/domain"
	"github.com/tu-usuario/proposal-pro/internal/domain/layout"
)

// fakeWriter captura la página y la ruta sin tocar el disco.
type fakeWriter struct {
	page     *layout.Page
	path     string
	failWith error
}

func (w *fakeWriter) WritePage(page *layout.Page, path string) error {
	if w.failWith != nil {
		return w.failWith
	}
	w.page = page
	w.path = path
	return nil
}

func measureByRunes(s string, size float64, bold bool) float64 {
	return float64(len([]rune(s))) * size * 0.5
}

func newPDFUseCase(t *testing.T, writer *fakeWriter) (*proposal.PDFUseCase, *fakeInvoiceRepo) {
	t.Helper()
	invoices := newFakeInvoiceRepo()
	profiles := &fakeProfileRepo{}
	renderer := layout.NewRenderer(measureByRunes, nil)
	uc := proposal.NewPDFUseCase(invoices, profiles, renderer, writer, "/data", testLogger())
	return uc, invoices
}

func TestGenerateInvoicePDF_RutaYNombre(t *testing.T) {
	writer := &fakeWriter{}
	uc, invoices := newPDFUseCase(t, writer)

	createUC := proposal.NewUseCase(invoices, &fakeProfileRepo{}, testLogger())
	created, err := createUC.Create(sampleRequest())
	require.NoError(t, err)

	path, filename, err := uc.GenerateInvoicePDF(created.ID)
	require.NoError(t, err)

	assert.Equal(t, "Pat_L_invoice_1.pdf", filename)
	assert.Equal(t, filepath.Join("/data", "pdfs", filename), path)
	assert.Equal(t, path, writer.path, "el writer recibe la ruta final")
	require.NotNil(t, writer.page, "el writer recibe la página renderizada")
	assert.NotEmpty(t, writer.page.Prims)

	// La ruta queda registrada en la factura.
	assert.Equal(t, path, invoices.pdfPaths[created.ID])
}

func TestGenerateInvoicePDF_FacturaInexistente(t *testing.T) {
	uc, _ := newPDFUseCase(t, &fakeWriter{})
	_, _, err := uc.GenerateInvoicePDF(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGenerateInvoicePDF_PropagaErrorDelWriter(t *testing.T) {
	bootErr := errors.New("disco lleno")
	writer := &fakeWriter{failWith: bootErr}
	uc, invoices := newPDFUseCase(t, writer)

	createUC := proposal.NewUseCase(invoices, &fakeProfileRepo{}, testLogger())
	created, err := createUC.Create(sampleRequest())
	require.NoError(t, err)

	_, _, err = uc.GenerateInvoicePDF(created.ID)
	assert.ErrorIs(t, err, bootErr, "el fallo del writer es la única superficie de error")
	assert.Empty(t, invoices.pdfPaths, "sin PDF publicado no se registra ruta")
}

func TestGenerateInvoicePDF_PerfilAusenteNoBloquea(t *testing.T) {
	writer := &fakeWriter{}
	uc, invoices := newPDFUseCase(t, writer)

	createUC := proposal.NewUseCase(invoices, &fakeProfileRepo{}, testLogger())
	created, err := createUC.Create(sampleRequest())
	require.NoError(t, err)

	_, _, err = uc.GenerateInvoicePDF(created.ID)
	require.NoError(t, err, "sin perfil guardado el render usa sus defaults")
}
