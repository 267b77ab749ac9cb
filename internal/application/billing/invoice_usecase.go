package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/FreelanceCRM-api/internal/application/dto"
	"github.com/jhoicas/FreelanceCRM-api/internal/domain"
	"github.com/jhoicas/FreelanceCRM-api/internal/domain/entity"
	"github.com/jhoicas/FreelanceCRM-api/internal/domain/money"
	"github.com/jhoicas/FreelanceCRM-api/internal/domain/repository"
)

// InvoiceUseCase casos de uso CRUD para facturas: creación con ítems y total
// calculado, reemplazo completo de ítems en updates y borrado en cascada.
// Las escrituras multi-efecto van por el TxRunner para que un lector
// concurrente nunca vea una factura con los ítems a medio reemplazar.
type InvoiceUseCase struct {
	txRunner    TxRunner
	clientRepo  repository.ClientRepository
	invoiceRepo repository.InvoiceRepository
	ownership   *OwnershipValidator
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	txRunner TxRunner,
	clientRepo repository.ClientRepository,
	invoiceRepo repository.InvoiceRepository,
	ownership *OwnershipValidator,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		txRunner:    txRunner,
		clientRepo:  clientRepo,
		invoiceRepo: invoiceRepo,
		ownership:   ownership,
	}
}

// Create crea una factura con sus ítems en una sola transacción.
// Pasos: validar la referencia al cliente (colapsada a ErrForbidden si no
// existe o es ajeno), calcular el total desde los ítems y persistir cabecera
// e ítems atómicamente. Ninguna mutación ocurre antes de pasar la validación.
func (uc *InvoiceUseCase) Create(ctx context.Context, userID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.ClientID == "" || in.InvoiceNo == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.IsValidStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.Description == "" || it.Quantity < 1 || it.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	client, err := uc.ownership.ClientRef(in.ClientID, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	invoice := &entity.Invoice{
		ID:        uuid.New().String(),
		UserID:    userID,
		ClientID:  in.ClientID,
		InvoiceNo: in.InvoiceNo,
		Status:    in.Status,
		DueDate:   in.DueDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	items := buildItems(invoice.ID, in.Items)

	total, err := money.ComputeTotal(deref(items))
	if err != nil {
		return nil, err
	}
	invoice.TotalAmount = total

	err = uc.txRunner.Run(ctx, func(_ repository.ClientRepository, invoiceRepo repository.InvoiceRepository) error {
		if err := invoiceRepo.Create(invoice); err != nil {
			return err
		}
		for _, item := range items {
			if err := invoiceRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toInvoiceResponse(invoice, client, items), nil
}

// List lista las facturas del usuario (más recientes primero), cada una con su
// cliente y sus ítems.
func (uc *InvoiceUseCase) List(userID string, limit, offset int) ([]*dto.InvoiceResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	invoices, err := uc.invoiceRepo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		resp, err := uc.loadDetail(inv)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// GetByID obtiene una factura del usuario con su cliente y sus ítems.
func (uc *InvoiceUseCase) GetByID(userID, id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.ownership.InvoiceOwnedBy(id, userID)
	if err != nil {
		return nil, err
	}
	return uc.loadDetail(invoice)
}

// Update aplica una actualización parcial sobre una factura del usuario.
//
// Reglas:
//   - La validación de propiedad de la factura es el primer paso efectivo.
//   - client_id presente se revalida contra el usuario (nadie reasigna una
//     factura a un cliente ajeno); falla con ErrForbidden.
//   - items presente y no vacío reemplaza el conjunto completo (borrar todo,
//     insertar lo nuevo) y recalcula el total, en una sola transacción junto
//     con la cabecera. Items ausente o vacío deja ítems y total intactos.
func (uc *InvoiceUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	invoice, err := uc.ownership.InvoiceOwnedBy(id, userID)
	if err != nil {
		return nil, err
	}

	if in.ClientID != nil {
		if _, err := uc.ownership.ClientRef(*in.ClientID, userID); err != nil {
			return nil, err
		}
		invoice.ClientID = *in.ClientID
	}
	if in.InvoiceNo != nil {
		if *in.InvoiceNo == "" {
			return nil, domain.ErrInvalidInput
		}
		invoice.InvoiceNo = *in.InvoiceNo
	}
	if in.Status != nil {
		if !entity.IsValidStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		invoice.Status = *in.Status
	}
	if in.DueDate != nil {
		invoice.DueDate = *in.DueDate
	}
	invoice.UpdatedAt = time.Now()

	replaceItems := len(in.Items) > 0
	var items []*entity.InvoiceItem
	if replaceItems {
		for _, it := range in.Items {
			if it.Description == "" || it.Quantity < 1 || it.UnitPrice.IsNegative() {
				return nil, domain.ErrInvalidInput
			}
		}
		items = buildItems(invoice.ID, in.Items)
		total, err := money.ComputeTotal(deref(items))
		if err != nil {
			return nil, err
		}
		invoice.TotalAmount = total
	}

	err = uc.txRunner.Run(ctx, func(_ repository.ClientRepository, invoiceRepo repository.InvoiceRepository) error {
		if replaceItems {
			if err := invoiceRepo.DeleteItemsByInvoiceID(invoice.ID); err != nil {
				return err
			}
			for _, item := range items {
				if err := invoiceRepo.CreateItem(item); err != nil {
					return err
				}
			}
		}
		return invoiceRepo.Update(invoice)
	})
	if err != nil {
		return nil, err
	}

	return uc.loadDetail(invoice)
}

// Delete elimina una factura del usuario junto con todos sus ítems, en una
// sola transacción: no quedan ítems huérfanos recuperables.
func (uc *InvoiceUseCase) Delete(ctx context.Context, userID, id string) error {
	if _, err := uc.ownership.InvoiceOwnedBy(id, userID); err != nil {
		return err
	}
	return uc.txRunner.Run(ctx, func(_ repository.ClientRepository, invoiceRepo repository.InvoiceRepository) error {
		if err := invoiceRepo.DeleteItemsByInvoiceID(id); err != nil {
			return err
		}
		return invoiceRepo.Delete(id)
	})
}

// loadDetail completa la factura con su cliente y sus ítems.
func (uc *InvoiceUseCase) loadDetail(invoice *entity.Invoice) (*dto.InvoiceResponse, error) {
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(invoice.ID)
	if err != nil {
		return nil, err
	}
	client, err := uc.clientRepo.GetByID(invoice.ClientID)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice, client, items), nil
}

func buildItems(invoiceID string, in []dto.InvoiceItemRequest) []*entity.InvoiceItem {
	items := make([]*entity.InvoiceItem, 0, len(in))
	for _, it := range in {
		items = append(items, &entity.InvoiceItem{
			ID:          uuid.New().String(),
			InvoiceID:   invoiceID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return items
}

func deref(items []*entity.InvoiceItem) []entity.InvoiceItem {
	out := make([]entity.InvoiceItem, 0, len(items))
	for _, it := range items {
		out = append(out, *it)
	}
	return out
}

func toInvoiceResponse(inv *entity.Invoice, client *entity.Client, items []*entity.InvoiceItem) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:          inv.ID,
		UserID:      inv.UserID,
		ClientID:    inv.ClientID,
		InvoiceNo:   inv.InvoiceNo,
		Status:      inv.Status,
		DueDate:     inv.DueDate,
		TotalAmount: inv.TotalAmount,
		CreatedAt:   inv.CreatedAt,
		Client:      toClientResponse(client),
		Items:       make([]dto.InvoiceItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return resp
}
