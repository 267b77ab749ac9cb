package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/FreelanceCRM-api/internal/application/dto"
	"github.com/jhoicas/FreelanceCRM-api/internal/domain"
	"github.com/jhoicas/FreelanceCRM-api/internal/domain/entity"
	"github.com/jhoicas/FreelanceCRM-api/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD para clientes del usuario autenticado.
type ClientUseCase struct {
	clientRepo  repository.ClientRepository
	invoiceRepo repository.InvoiceRepository
	ownership   *OwnershipValidator
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clientRepo repository.ClientRepository, invoiceRepo repository.InvoiceRepository, ownership *OwnershipValidator) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo, invoiceRepo: invoiceRepo, ownership: ownership}
}

// Create crea un cliente del usuario. Recurso nuevo: no requiere validación de
// propiedad, el UserID se fija al del llamador y es inmutable desde aquí.
func (uc *ClientUseCase) Create(userID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		Email:     in.Email,
		Company:   in.Company,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.clientRepo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List lista los clientes del usuario, más recientes primero.
func (uc *ClientUseCase) List(userID string, limit, offset int) ([]*dto.ClientResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.clientRepo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// GetByID obtiene un cliente del usuario junto con sus facturas (más recientes primero).
func (uc *ClientUseCase) GetByID(userID, id string) (*dto.ClientDetailResponse, error) {
	client, err := uc.ownership.ClientOwnedBy(id, userID)
	if err != nil {
		return nil, err
	}
	invoices, err := uc.invoiceRepo.ListByClient(id)
	if err != nil {
		return nil, err
	}
	out := &dto.ClientDetailResponse{
		ClientResponse: *toClientResponse(client),
		Invoices:       make([]dto.InvoiceResponse, 0, len(invoices)),
	}
	for _, inv := range invoices {
		out.Invoices = append(out.Invoices, *toInvoiceResponse(inv, nil, nil))
	}
	return out, nil
}

// Update aplica una actualización parcial: solo los campos presentes cambian.
// La validación de propiedad va primero; el resultado de la lectura solo se
// usa como base de la mutación.
func (uc *ClientUseCase) Update(userID, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.ownership.ClientOwnedBy(id, userID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		client.Name = *in.Name
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Company != nil {
		client.Company = *in.Company
	}
	client.UpdatedAt = time.Now()
	if err := uc.clientRepo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente del usuario. Un cliente con facturas no se puede
// eliminar: retorna domain.ErrConflict en lugar de dejar facturas huérfanas
// apuntando a un cliente inexistente.
func (uc *ClientUseCase) Delete(userID, id string) error {
	if _, err := uc.ownership.ClientOwnedBy(id, userID); err != nil {
		return err
	}
	n, err := uc.invoiceRepo.CountByClient(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrConflict
	}
	return uc.clientRepo.Delete(id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		Email:     c.Email,
		Company:   c.Company,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
