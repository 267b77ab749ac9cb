package billing

import (
	"context"

	"github.com/jhoicas/FreelanceCRM-api/internal/domain/entity"
	"github.com/jhoicas/FreelanceCRM-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con repos de clientes
// y facturas atados a la tx. Es el mecanismo de escritura multi-efecto atómica:
// crear factura con ítems, reemplazar ítems (borrar + insertar + actualizar
// total) y borrar factura con ítems deben verse completos o no verse, nunca a
// medias.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		clientRepo repository.ClientRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}

// InvoicePDFGenerator genera la representación gráfica (PDF) de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		issuer *entity.User,
		client *entity.Client,
		items []*entity.InvoiceItem,
	) ([]byte, error)
}
