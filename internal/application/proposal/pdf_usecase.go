package proposal

import (
	"fmt"
	"path/filepath"

	"github.com/tu-usuario/proposal-pro/internal/domain"
	"github.com/tu-usuario/proposal-pro/internal/domain/entity"
	"github.com/tu-usuario/proposal-pro/internal/domain/layout"
	"github.com/tu-usuario/proposal-pro/internal/domain/repository"
	"github.com/tu-usuario/proposal-pro/pkg/logger"
)

// PDFUseCase genera el PDF de una factura: carga los datos, renderiza el
// stream de primitivas y lo publica bajo <storageDir>/pdfs/<nombre>.
type PDFUseCase struct {
	invoices   repository.InvoiceRepository
	profiles   repository.BusinessProfileRepository
	renderer   *layout.Renderer
	writer     PageWriter
	storageDir string
	log        *logger.Logger
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	invoices repository.InvoiceRepository,
	profiles repository.BusinessProfileRepository,
	renderer *layout.Renderer,
	writer PageWriter,
	storageDir string,
	log *logger.Logger,
) *PDFUseCase {
	return &PDFUseCase{
		invoices:   invoices,
		profiles:   profiles,
		renderer:   renderer,
		writer:     writer,
		storageDir: storageDir,
		log:        log.WithComponent("pdf"),
	}
}

// GenerateInvoicePDF renderiza y escribe el PDF de la factura.
//
// Retorna:
//   - (path, filename, nil) si todo sale bien.
//   - domain.ErrNotFound    si la factura no existe.
//   - error de I/O          si el page-writer no pudo publicar el archivo
//     (única superficie de fallo: el render en sí nunca falla).
func (uc *PDFUseCase) GenerateInvoicePDF(invoiceID int64) (path, filename string, err error) {
	inv, err := uc.invoices.GetByID(invoiceID)
	if err != nil {
		return "", "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return "", "", domain.ErrNotFound
	}

	// Un perfil ausente no bloquea: el renderer usa sus defaults.
	profile, err := uc.profiles.Get()
	if err != nil {
		return "", "", fmt.Errorf("pdf: obtener perfil: %w", err)
	}
	if profile == nil {
		profile = &entity.BusinessProfile{}
	}

	page := uc.renderer.Render(inv, profile)
	filename = layout.FileName(inv.ClientName, inv.ID)
	path = filepath.Join(uc.storageDir, "pdfs", filename)

	if err := uc.writer.WritePage(page, path); err != nil {
		return "", "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	if err := uc.invoices.SetPDFPath(inv.ID, path); err != nil {
		// El PDF ya está publicado; dejar la ruta sin registrar no es fatal.
		uc.log.Warn().Err(err).Int64("invoice_id", inv.ID).Msg("no se pudo registrar pdf_path")
	}

	uc.log.Info().Int64("invoice_id", inv.ID).Str("file", filename).
		Int("primitives", len(page.Prims)).Msg("pdf generado")
	return path, filename, nil
}
