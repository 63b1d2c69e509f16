package entity

import "github.com/shopspring/decimal"

// LineItem es una línea de trabajo/material de una factura.
// Invariante: LineTotal == round(Quantity × UnitPrice), redondeo half-away-from-zero.
type LineItem struct {
	ID          int64
	InvoiceID   int64
	Description string
	Quantity    decimal.Decimal // por defecto 1
	UnitPrice   int64           // centavos
	LineTotal   int64           // centavos
}
