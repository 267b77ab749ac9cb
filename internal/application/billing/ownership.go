package billing

import (
	"github.com/jhoicas/FreelanceCRM-api/internal/domain"
	"github.com/jhoicas/FreelanceCRM-api/internal/domain/entity"
	"github.com/jhoicas/FreelanceCRM-api/internal/domain/repository"
)

// OwnershipValidator centraliza la frontera de autorización: toda operación de
// lectura puntual o mutación pasa por aquí antes de tocar datos, de modo que
// ningún workflow pueda filtrar o mutar registros de otro usuario.
//
// El orden de las verificaciones es parte del contrato: existencia primero,
// propiedad después. Un registro inexistente siempre es ErrNotFound, nunca
// ErrForbidden, aunque el id pertenezca a otro usuario.
type OwnershipValidator struct {
	clientRepo  repository.ClientRepository
	invoiceRepo repository.InvoiceRepository
}

// NewOwnershipValidator construye el validador con los puertos de persistencia.
func NewOwnershipValidator(clientRepo repository.ClientRepository, invoiceRepo repository.InvoiceRepository) *OwnershipValidator {
	return &OwnershipValidator{clientRepo: clientRepo, invoiceRepo: invoiceRepo}
}

// ClientOwnedBy retorna el cliente si existe y pertenece a userID.
func (v *OwnershipValidator) ClientOwnedBy(clientID, userID string) (*entity.Client, error) {
	client, err := v.clientRepo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if client.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return client, nil
}

// InvoiceOwnedBy retorna la factura si existe y pertenece a userID.
func (v *OwnershipValidator) InvoiceOwnedBy(invoiceID, userID string) (*entity.Invoice, error) {
	invoice, err := v.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	if invoice.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return invoice, nil
}

// ClientRef valida una referencia cruzada a cliente (client_id en crear o
// actualizar factura). A diferencia de ClientOwnedBy, colapsa a propósito
// inexistente y ajeno en un único ErrForbidden: la respuesta no debe revelar
// qué ids de clientes de otros usuarios existen.
func (v *OwnershipValidator) ClientRef(clientID, userID string) (*entity.Client, error) {
	client, err := v.clientRepo.GetByUserAndID(userID, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrForbidden
	}
	return client, nil
}
