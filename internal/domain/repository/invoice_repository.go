package repository

import "github.com/jhoicas/FreelanceCRM-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice y sus ítems.
// Las lecturas retornan (nil, nil) cuando el registro no existe.
//
// Las escrituras multi-efecto (crear factura con ítems, reemplazar ítems,
// borrar factura con ítems) se componen dentro de una transacción vía el
// TxRunner de la capa de aplicación: este puerto solo expone las operaciones
// primitivas.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateItem(item *entity.InvoiceItem) error
	GetByID(id string) (*entity.Invoice, error)
	GetByUserAndID(userID, id string) (*entity.Invoice, error)
	// ListByUser lista las facturas del usuario, ordenadas por created_at descendente.
	ListByUser(userID string, limit, offset int) ([]*entity.Invoice, error)
	// ListByClient lista las facturas del cliente, ordenadas por created_at descendente.
	ListByClient(clientID string) ([]*entity.Invoice, error)
	CountByClient(clientID string) (int64, error)
	GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error)
	DeleteItemsByInvoiceID(invoiceID string) error
	// Update actualiza los campos escalares de la cabecera: invoice_no, status,
	// due_date, client_id, total_amount, updated_at.
	Update(invoice *entity.Invoice) error
	Delete(id string) error
}
