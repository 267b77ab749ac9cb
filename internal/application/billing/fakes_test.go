package billing_test

import (
	"context"
	"sort"

	"github.com/jhoicas/FreelanceCRM-api/internal/domain/entity"
	"github.com/jhoicas/FreelanceCRM-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios fake en memoria para los tests de casos de uso.
// Copian las entidades al entrar y salir para que los tests no muten el
// "almacén" por accidente a través de punteros compartidos.
// ──────────────────────────────────────────────────────────────────────────────

type fakeClientRepo struct {
	clients map[string]entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[string]entity.Client)}
}

func (r *fakeClientRepo) Create(c *entity.Client) error {
	r.clients[c.ID] = *c
	return nil
}

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	out := c
	return &out, nil
}

func (r *fakeClientRepo) GetByUserAndID(userID, id string) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}
	out := c
	return &out, nil
}

func (r *fakeClientRepo) ListByUser(userID string, limit, offset int) ([]*entity.Client, error) {
	var list []*entity.Client
	for _, c := range r.clients {
		if c.UserID == userID {
			out := c
			list = append(list, &out)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return page(list, limit, offset), nil
}

func (r *fakeClientRepo) Update(c *entity.Client) error {
	r.clients[c.ID] = *c
	return nil
}

func (r *fakeClientRepo) Delete(id string) error {
	delete(r.clients, id)
	return nil
}

type fakeInvoiceRepo struct {
	invoices map[string]entity.Invoice
	items    map[string]entity.InvoiceItem
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices: make(map[string]entity.Invoice),
		items:    make(map[string]entity.InvoiceItem),
	}
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	r.invoices[inv.ID] = *inv
	return nil
}

func (r *fakeInvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	r.items[item.ID] = *item
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	out := inv
	return &out, nil
}

func (r *fakeInvoiceRepo) GetByUserAndID(userID, id string) (*entity.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok || inv.UserID != userID {
		return nil, nil
	}
	out := inv
	return &out, nil
}

func (r *fakeInvoiceRepo) ListByUser(userID string, limit, offset int) ([]*entity.Invoice, error) {
	var list []*entity.Invoice
	for _, inv := range r.invoices {
		if inv.UserID == userID {
			out := inv
			list = append(list, &out)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return page(list, limit, offset), nil
}

func (r *fakeInvoiceRepo) ListByClient(clientID string) ([]*entity.Invoice, error) {
	var list []*entity.Invoice
	for _, inv := range r.invoices {
		if inv.ClientID == clientID {
			out := inv
			list = append(list, &out)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (r *fakeInvoiceRepo) CountByClient(clientID string) (int64, error) {
	var n int64
	for _, inv := range r.invoices {
		if inv.ClientID == clientID {
			n++
		}
	}
	return n, nil
}

func (r *fakeInvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	var list []*entity.InvoiceItem
	for _, item := range r.items {
		if item.InvoiceID == invoiceID {
			out := item
			list = append(list, &out)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *fakeInvoiceRepo) DeleteItemsByInvoiceID(invoiceID string) error {
	for id, item := range r.items {
		if item.InvoiceID == invoiceID {
			delete(r.items, id)
		}
	}
	return nil
}

func (r *fakeInvoiceRepo) Update(inv *entity.Invoice) error {
	r.invoices[inv.ID] = *inv
	return nil
}

func (r *fakeInvoiceRepo) Delete(id string) error {
	delete(r.invoices, id)
	return nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes: en memoria la
// atomicidad es trivial, lo que interesa probar es la semántica del workflow.
type fakeTxRunner struct {
	clientRepo  repository.ClientRepository
	invoiceRepo repository.InvoiceRepository
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.ClientRepository, repository.InvoiceRepository) error) error {
	return fn(r.clientRepo, r.invoiceRepo)
}

func page[T any](list []*T, limit, offset int) []*T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
