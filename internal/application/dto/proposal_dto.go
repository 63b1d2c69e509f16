package dto

import "time"

// LineItemRequest una línea del formulario. Quantity y UnitPrice llegan como
// texto libre del formulario: Quantity vacío vale 1, texto no parseable vale 0
// (defaulting silencioso, nunca error); UnitPrice acepta "$1,099.00" o "1099".
type LineItemRequest struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
}

// SaveInvoiceRequest cuerpo para crear o actualizar una propuesta/contrato.
// Los totales NO se aceptan del cliente: siempre se recalculan en el servidor.
type SaveInvoiceRequest struct {
	ClientName      string            `json:"client_name"`
	ClientAddress   string            `json:"client_address"`
	ClientPhone     string            `json:"client_phone"`
	ProposalDate    string            `json:"proposal_date"`
	JobAddress      string            `json:"job_address"`
	DatePlans       string            `json:"date_plans"`
	Architect       string            `json:"architect"`
	WorkDescription string            `json:"work_description"`
	DocumentKind    string            `json:"document_kind"` // PROPOSAL | CONTRACT; vacío = PROPOSAL
	TaxPercent      float64           `json:"tax_percent"`
	Notes           string            `json:"notes"`
	Items           []LineItemRequest `json:"items"`
}

// LineItemResponse línea con montos en centavos y su versión mostrable.
// UnitPriceForm es el valor plano ("10.99") con el que el formulario de
// edición repuebla su campo de precio; *Display lleva el formato de moneda.
type LineItemResponse struct {
	ID               int64  `json:"id"`
	Description      string `json:"description"`
	Quantity         string `json:"quantity"`
	UnitPrice        int64  `json:"unit_price"`
	UnitPriceForm    string `json:"unit_price_form"`
	UnitPriceDisplay string `json:"unit_price_display"`
	LineTotal        int64  `json:"line_total"`
	LineTotalDisplay string `json:"line_total_display"`
}

// InvoiceResponse factura completa para el cliente HTTP.
type InvoiceResponse struct {
	ID              int64              `json:"id"`
	ClientName      string             `json:"client_name"`
	ClientAddress   string             `json:"client_address"`
	ClientPhone     string             `json:"client_phone"`
	ProposalDate    string             `json:"proposal_date"`
	JobAddress      string             `json:"job_address"`
	DatePlans       string             `json:"date_plans"`
	Architect       string             `json:"architect"`
	WorkDescription string             `json:"work_description"`
	DocumentKind    string             `json:"document_kind"`
	Items           []LineItemResponse `json:"items"`
	Subtotal        int64              `json:"subtotal"`
	SubtotalDisplay string             `json:"subtotal_display"`
	TaxPercent      float64            `json:"tax_percent"`
	Total           int64              `json:"total"`
	TotalDisplay    string             `json:"total_display"`
	Notes           string             `json:"notes"`
	PDFPath         string             `json:"pdf_path,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

// BusinessProfileRequest datos del negocio para el encabezado del documento.
type BusinessProfileRequest struct {
	BusinessName string `json:"business_name"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	LogoPath     string `json:"logo_path"`
}

// BusinessProfileResponse perfil persistido.
type BusinessProfileResponse struct {
	BusinessName string `json:"business_name"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	LogoPath     string `json:"logo_path"`
}
