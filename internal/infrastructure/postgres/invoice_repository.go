package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/proposal-pro/internal/domain/entity"
	"github.com/tu-usuario/proposal-pro/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository. Usa el pool directamente
// porque Create/Update necesitan transacción propia (cabecera + líneas).
type InvoiceRepo struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository construye el adaptador.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepo {
	return &InvoiceRepo{pool: pool}
}

const invoiceColumns = `
	id, client_name, client_address, client_phone, proposal_date,
	job_address, date_plans, architect, work_description, document_kind,
	subtotal, tax_percent, total, notes, COALESCE(pdf_path, ''), created_at`

// Create persiste cabecera + líneas en una transacción y asigna IDs.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO invoices (client_name, client_address, client_phone, proposal_date,
			job_address, date_plans, architect, work_description, document_kind,
			subtotal, tax_percent, total, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`
	err = tx.QueryRow(ctx, query,
		invoice.ClientName, invoice.ClientAddress, invoice.ClientPhone, invoice.ProposalDate,
		invoice.JobAddress, invoice.DatePlans, invoice.Architect, invoice.WorkDescription,
		invoice.DocumentKind, invoice.Subtotal, invoice.TaxPercent, invoice.Total,
		invoice.Notes, invoice.CreatedAt,
	).Scan(&invoice.ID)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}

	if err := insertItems(ctx, tx, invoice.ID, invoice.Items); err != nil {
		return err
	}
	for i := range invoice.Items {
		invoice.Items[i].InvoiceID = invoice.ID
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Update reemplaza la cabecera y todas las líneas en una transacción.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		UPDATE invoices
		SET client_name = $2, client_address = $3, client_phone = $4, proposal_date = $5,
		    job_address = $6, date_plans = $7, architect = $8, work_description = $9,
		    document_kind = $10, subtotal = $11, tax_percent = $12, total = $13, notes = $14
		WHERE id = $1`
	tag, err := tx.Exec(ctx, query,
		invoice.ID,
		invoice.ClientName, invoice.ClientAddress, invoice.ClientPhone, invoice.ProposalDate,
		invoice.JobAddress, invoice.DatePlans, invoice.Architect, invoice.WorkDescription,
		invoice.DocumentKind, invoice.Subtotal, invoice.TaxPercent, invoice.Total, invoice.Notes,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	if _, err := tx.Exec(ctx, `DELETE FROM line_items WHERE invoice_id = $1`, invoice.ID); err != nil {
		return fmt.Errorf("delete line items: %w", err)
	}
	if err := insertItems(ctx, tx, invoice.ID, invoice.Items); err != nil {
		return err
	}
	for i := range invoice.Items {
		invoice.Items[i].InvoiceID = invoice.ID
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func insertItems(ctx context.Context, tx pgx.Tx, invoiceID int64, items []entity.LineItem) error {
	query := `
		INSERT INTO line_items (invoice_id, description, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	for i := range items {
		err := tx.QueryRow(ctx, query,
			invoiceID, items[i].Description, items[i].Quantity,
			items[i].UnitPrice, items[i].LineTotal,
		).Scan(&items[i].ID)
		if err != nil {
			return fmt.Errorf("insert line item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la factura con sus líneas; (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(id int64) (*entity.Invoice, error) {
	ctx := context.Background()
	query := `SELECT` + invoiceColumns + ` FROM invoices WHERE id = $1`
	inv, err := scanInvoice(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	items, err := r.GetItemsByInvoiceID(inv.ID)
	if err != nil {
		return nil, err
	}
	inv.Items = items
	return inv, nil
}

// ListAll devuelve todas las facturas con sus líneas, más recientes primero.
func (r *InvoiceRepo) ListAll() ([]*entity.Invoice, error) {
	ctx := context.Background()
	query := `SELECT` + invoiceColumns + ` FROM invoices ORDER BY created_at DESC, id DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, inv := range list {
		items, err := r.GetItemsByInvoiceID(inv.ID)
		if err != nil {
			return nil, err
		}
		inv.Items = items
	}
	return list, nil
}

// Delete elimina la factura; line_items cae en cascada (FK ON DELETE CASCADE).
func (r *InvoiceRepo) Delete(id int64) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// GetItemsByInvoiceID obtiene las líneas en orden de inserción.
func (r *InvoiceRepo) GetItemsByInvoiceID(invoiceID int64) ([]entity.LineItem, error) {
	query := `
		SELECT id, invoice_id, description, quantity, unit_price, line_total
		FROM line_items WHERE invoice_id = $1 ORDER BY id`
	rows, err := r.pool.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list line items: %w", err)
	}
	defer rows.Close()

	var items []entity.LineItem
	for rows.Next() {
		var it entity.LineItem
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.Description, &it.Quantity, &it.UnitPrice, &it.LineTotal); err != nil {
			return nil, fmt.Errorf("scan line item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// SetPDFPath guarda la ruta del último PDF generado.
func (r *InvoiceRepo) SetPDFPath(id int64, path string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE invoices SET pdf_path = $2 WHERE id = $1`, id, path)
	if err != nil {
		return fmt.Errorf("set pdf path: %w", err)
	}
	return nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.ClientName, &inv.ClientAddress, &inv.ClientPhone, &inv.ProposalDate,
		&inv.JobAddress, &inv.DatePlans, &inv.Architect, &inv.WorkDescription, &inv.DocumentKind,
		&inv.Subtotal, &inv.TaxPercent, &inv.Total, &inv.Notes, &inv.PDFPath, &inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
