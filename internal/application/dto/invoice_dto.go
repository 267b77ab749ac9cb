package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItemRequest línea de factura (descripción, cantidad, precio unitario).
type InvoiceItemRequest struct {
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateInvoiceRequest body para POST /api/invoices.
// El total nunca viene del cliente HTTP: se calcula siempre desde los ítems.
type CreateInvoiceRequest struct {
	InvoiceNo string               `json:"invoice_no"`
	Status    string               `json:"status"`
	DueDate   time.Time            `json:"due_date"`
	ClientID  string               `json:"client_id"`
	Items     []InvoiceItemRequest `json:"items"`
}

// UpdateInvoiceRequest body para PATCH /api/invoices/:id.
// Campos en nil se dejan intactos. Items no vacío reemplaza el conjunto
// completo de ítems y recalcula el total; Items ausente o vacío no toca
// ítems ni total.
type UpdateInvoiceRequest struct {
	InvoiceNo *string              `json:"invoice_no,omitempty"`
	Status    *string              `json:"status,omitempty"`
	DueDate   *time.Time           `json:"due_date,omitempty"`
	ClientID  *string              `json:"client_id,omitempty"`
	Items     []InvoiceItemRequest `json:"items,omitempty"`
}

// InvoiceItemResponse línea de factura en la respuesta.
type InvoiceItemResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// InvoiceResponse factura con cliente e ítems.
type InvoiceResponse struct {
	ID          string                `json:"id"`
	UserID      string                `json:"user_id"`
	ClientID    string                `json:"client_id"`
	InvoiceNo   string                `json:"invoice_no"`
	Status      string                `json:"status"`
	DueDate     time.Time             `json:"due_date"`
	TotalAmount decimal.Decimal       `json:"total_amount"`
	CreatedAt   time.Time             `json:"created_at"`
	Client      *ClientResponse       `json:"client,omitempty"`
	Items       []InvoiceItemResponse `json:"items"`
}
