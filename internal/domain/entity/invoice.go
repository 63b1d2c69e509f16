package entity

import "time"

// Tipos de documento. Son mutuamente excluyentes: una factura es
// propuesta O contrato, nunca ambos.
const (
	KindProposal = "PROPOSAL"
	KindContract = "CONTRACT"
)

// ValidKind indica si k es un tipo de documento conocido.
func ValidKind(k string) bool {
	return k == KindProposal || k == KindContract
}

// Invoice representa una propuesta/contrato de obra con sus líneas.
// Los montos van siempre en centavos (int64); nunca float en persistencia.
type Invoice struct {
	ID              int64
	ClientName      string
	ClientAddress   string
	ClientPhone     string
	ProposalDate    string // ya formateada por el caller, se dibuja tal cual
	JobAddress      string
	DatePlans       string
	Architect       string
	WorkDescription string
	DocumentKind    string // KindProposal | KindContract
	Items           []LineItem
	Subtotal        int64   // centavos; invariante: suma de Items[i].LineTotal
	TaxPercent      float64 // porcentaje decimal, ej. 8.25
	Total           int64   // centavos; Subtotal + impuesto redondeado
	Notes           string
	PDFPath         string // último PDF generado (vacío si nunca se generó)
	CreatedAt       time.Time
}
