// Package proposal contiene los casos de uso de propuestas/contratos:
// captura con recálculo de totales, consulta y generación del PDF.
package proposal

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/proposal-pro/internal/application/dto"
	"github.com/tu-usuario/proposal-pro/internal/domain"
	"github.com/tu-usuario/proposal-pro/internal/domain/entity"
	"github.com/tu-usuario/proposal-pro/internal/domain/money"
	"github.com/tu-usuario/proposal-pro/internal/domain/repository"
	"github.com/tu-usuario/proposal-pro/pkg/logger"
)

// UseCase operaciones CRUD sobre facturas y el perfil del negocio.
// Los totales se recalculan siempre aquí: el total persistido es la única
// fuente de verdad que el renderer muestra.
type UseCase struct {
	invoices repository.InvoiceRepository
	profiles repository.BusinessProfileRepository
	log      *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(invoices repository.InvoiceRepository, profiles repository.BusinessProfileRepository, log *logger.Logger) *UseCase {
	return &UseCase{invoices: invoices, profiles: profiles, log: log.WithComponent("proposal")}
}

// Create valida, recalcula totales y persiste una factura nueva.
func (uc *UseCase) Create(in dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.buildInvoice(in)
	if err != nil {
		return nil, err
	}
	inv.CreatedAt = time.Now()
	if err := uc.invoices.Create(inv); err != nil {
		return nil, fmt.Errorf("proposal: crear factura: %w", err)
	}
	uc.log.Info().Int64("invoice_id", inv.ID).Str("kind", inv.DocumentKind).
		Int64("total_cents", inv.Total).Msg("factura creada")
	return toInvoiceResponse(inv), nil
}

// Update reemplaza una factura existente (cabecera + líneas) recalculando totales.
func (uc *UseCase) Update(id int64, in dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	existing, err := uc.invoices.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("proposal: obtener factura: %w", err)
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	inv, err := uc.buildInvoice(in)
	if err != nil {
		return nil, err
	}
	inv.ID = id
	inv.CreatedAt = existing.CreatedAt
	inv.PDFPath = existing.PDFPath
	if err := uc.invoices.Update(inv); err != nil {
		return nil, fmt.Errorf("proposal: actualizar factura: %w", err)
	}
	return toInvoiceResponse(inv), nil
}

// GetByID obtiene una factura completa.
func (uc *UseCase) GetByID(id int64) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoices.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("proposal: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return toInvoiceResponse(inv), nil
}

// List devuelve todas las facturas, más recientes primero.
func (uc *UseCase) List() ([]*dto.InvoiceResponse, error) {
	invoices, err := uc.invoices.ListAll()
	if err != nil {
		return nil, fmt.Errorf("proposal: listar facturas: %w", err)
	}
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

// Delete elimina la factura y sus líneas (cascada).
func (uc *UseCase) Delete(id int64) error {
	inv, err := uc.invoices.GetByID(id)
	if err != nil {
		return fmt.Errorf("proposal: obtener factura: %w", err)
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	if err := uc.invoices.Delete(id); err != nil {
		return fmt.Errorf("proposal: eliminar factura: %w", err)
	}
	uc.log.Info().Int64("invoice_id", id).Msg("factura eliminada")
	return nil
}

// GetProfile retorna el perfil del negocio (vacío si nunca se guardó).
func (uc *UseCase) GetProfile() (*dto.BusinessProfileResponse, error) {
	p, err := uc.profiles.Get()
	if err != nil {
		return nil, fmt.Errorf("proposal: obtener perfil: %w", err)
	}
	if p == nil {
		p = &entity.BusinessProfile{}
	}
	return &dto.BusinessProfileResponse{
		BusinessName: p.BusinessName,
		Address:      p.Address,
		Phone:        p.Phone,
		Email:        p.Email,
		LogoPath:     p.LogoPath,
	}, nil
}

// SaveProfile guarda (upsert) el perfil del negocio.
func (uc *UseCase) SaveProfile(in dto.BusinessProfileRequest) error {
	p := &entity.BusinessProfile{
		BusinessName: in.BusinessName,
		Address:      in.Address,
		Phone:        in.Phone,
		Email:        in.Email,
		LogoPath:     in.LogoPath,
	}
	if err := uc.profiles.Save(p); err != nil {
		return fmt.Errorf("proposal: guardar perfil: %w", err)
	}
	return nil
}

// buildInvoice convierte el request en entidad recalculando línea por línea:
// lineTotal = round(qty × precio), subtotal = Σ lineTotal,
// total = subtotal + round(subtotal × tax / 100).
func (uc *UseCase) buildInvoice(in dto.SaveInvoiceRequest) (*entity.Invoice, error) {
	kind := in.DocumentKind
	if kind == "" {
		kind = entity.KindProposal
	}
	if !entity.ValidKind(kind) {
		return nil, fmt.Errorf("%w: document_kind desconocido %q", domain.ErrInvalidInput, in.DocumentKind)
	}
	if in.TaxPercent < 0 {
		return nil, fmt.Errorf("%w: tax_percent negativo", domain.ErrInvalidInput)
	}

	items := make([]entity.LineItem, 0, len(in.Items))
	var subtotal int64
	for _, it := range in.Items {
		qty := parseQuantity(it.Quantity)
		if qty.IsNegative() {
			return nil, fmt.Errorf("%w: cantidad negativa en línea %q", domain.ErrInvalidInput, it.Description)
		}
		unitPrice := money.ParseToCents(it.UnitPrice)
		lineTotal := money.LineTotal(qty.InexactFloat64(), unitPrice)
		items = append(items, entity.LineItem{
			Description: it.Description,
			Quantity:    qty,
			UnitPrice:   unitPrice,
			LineTotal:   lineTotal,
		})
		subtotal += lineTotal
	}
	total := subtotal + money.TaxAmount(subtotal, in.TaxPercent)

	return &entity.Invoice{
		ClientName:      in.ClientName,
		ClientAddress:   in.ClientAddress,
		ClientPhone:     in.ClientPhone,
		ProposalDate:    in.ProposalDate,
		JobAddress:      in.JobAddress,
		DatePlans:       in.DatePlans,
		Architect:       in.Architect,
		WorkDescription: in.WorkDescription,
		DocumentKind:    kind,
		Items:           items,
		Subtotal:        subtotal,
		TaxPercent:      in.TaxPercent,
		Total:           total,
		Notes:           in.Notes,
	}, nil
}

// parseQuantity: vacío vale 1 (default del formulario); texto no parseable
// vale 0, igual que los montos (defaulting silencioso, nunca error).
func parseQuantity(s string) decimal.Decimal {
	if s == "" {
		return decimal.NewFromInt(1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	items := make([]dto.LineItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, dto.LineItemResponse{
			ID:               it.ID,
			Description:      it.Description,
			Quantity:         it.Quantity.StringFixed(2),
			UnitPrice:        it.UnitPrice,
			UnitPriceForm:    money.CentsToDisplay(it.UnitPrice),
			UnitPriceDisplay: money.FormatCents(it.UnitPrice),
			LineTotal:        it.LineTotal,
			LineTotalDisplay: money.FormatCents(it.LineTotal),
		})
	}
	return &dto.InvoiceResponse{
		ID:              inv.ID,
		ClientName:      inv.ClientName,
		ClientAddress:   inv.ClientAddress,
		ClientPhone:     inv.ClientPhone,
		ProposalDate:    inv.ProposalDate,
		JobAddress:      inv.JobAddress,
		DatePlans:       inv.DatePlans,
		Architect:       inv.Architect,
		WorkDescription: inv.WorkDescription,
		DocumentKind:    inv.DocumentKind,
		Items:           items,
		Subtotal:        inv.Subtotal,
		SubtotalDisplay: money.FormatCents(inv.Subtotal),
		TaxPercent:      inv.TaxPercent,
		Total:           inv.Total,
		TotalDisplay:    money.FormatCents(inv.Total),
		Notes:           inv.Notes,
		PDFPath:         inv.PDFPath,
		CreatedAt:       inv.CreatedAt,
	}
}
