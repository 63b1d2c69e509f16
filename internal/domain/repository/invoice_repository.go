package repository

import "github.com/tu-usuario/proposal-pro/internal/domain/entity"

// InvoiceRepository persiste facturas con sus líneas.
// Los métodos de lectura retornan (nil, nil) cuando el recurso no existe.
type InvoiceRepository interface {
	// Create persiste cabecera + líneas en una transacción y asigna IDs.
	Create(invoice *entity.Invoice) error
	// GetByID obtiene la factura con sus líneas en orden de inserción.
	GetByID(id int64) (*entity.Invoice, error)
	// ListAll devuelve todas las facturas (más recientes primero), con líneas.
	ListAll() ([]*entity.Invoice, error)
	// Update reemplaza la cabecera y todas las líneas.
	Update(invoice *entity.Invoice) error
	// Delete elimina la factura; las líneas caen en cascada con el padre.
	Delete(id int64) error
	// GetItemsByInvoiceID obtiene las líneas de una factura en orden.
	GetItemsByInvoiceID(invoiceID int64) ([]entity.LineItem, error)
	// SetPDFPath guarda la ruta del último PDF generado.
	SetPDFPath(id int64, path string) error
}
