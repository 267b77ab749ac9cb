package entity

import "github.com/shopspring/decimal"

// InvoiceItem representa una línea de una factura. Vive y muere con su factura:
// se crea junto con ella (o en un reemplazo completo) y se elimina en cascada.
type InvoiceItem struct {
	ID          string
	InvoiceID   string
	Description string
	Quantity    int64 // entero positivo
	UnitPrice   decimal.Decimal
}

// Subtotal devuelve quantity * unit_price con aritmética decimal exacta.
func (i InvoiceItem) Subtotal() decimal.Decimal {
	return decimal.NewFromInt(i.Quantity).Mul(i.UnitPrice)
}
