package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura. Son un campo de datos, no una máquina de estados:
// cualquier update puede mover la factura a cualquier estado.
const (
	StatusDraft   = "DRAFT"
	StatusPending = "PENDING"
	StatusPaid    = "PAID"
)

// IsValidStatus indica si s es uno de los estados conocidos.
func IsValidStatus(s string) bool {
	return s == StatusDraft || s == StatusPending || s == StatusPaid
}

// Invoice representa la cabecera de una factura. Invariantes:
//   - UserID coincide con el dueño del Client referenciado por ClientID.
//   - TotalAmount siempre es la suma de quantity*unit_price de sus ítems
//     vigentes; se recalcula al mutar ítems y nunca lo fija el cliente HTTP.
type Invoice struct {
	ID          string
	UserID      string
	ClientID    string
	InvoiceNo   string // texto libre, no se exige único
	Status      string // DRAFT, PENDING, PAID
	DueDate     time.Time
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
