package billing_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/FreelanceCRM-api/internal/application/billing"
	"github.com/jhoicas/FreelanceCRM-api/internal/application/dto"
	"github.com/jhoicas/FreelanceCRM-api/internal/domain"
	"github.com/jhoicas/FreelanceCRM-api/internal/domain/entity"
)

const (
	userAna  = "user-ana"
	userLuis = "user-luis"
)

func newClientUseCase() (*billing.ClientUseCase, *fakeClientRepo, *fakeInvoiceRepo) {
	clientRepo := newFakeClientRepo()
	invoiceRepo := newFakeInvoiceRepo()
	ownership := billing.NewOwnershipValidator(clientRepo, invoiceRepo)
	return billing.NewClientUseCase(clientRepo, invoiceRepo, ownership), clientRepo, invoiceRepo
}

func seedClient(repo *fakeClientRepo, userID, name string, createdAt time.Time) *entity.Client {
	c := &entity.Client{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		Email:     name + "@example.com",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	_ = repo.Create(c)
	return c
}

func TestClientCreate_AsignaUsuarioDelLlamador(t *testing.T) {
	uc, repo, _ := newClientUseCase()

	out, err := uc.Create(userAna, dto.CreateClientRequest{
		Name:    "Jane Smith",
		Email:   "jane@example.com",
		Company: "Acme",
	})
	require.NoError(t, err)
	assert.Equal(t, userAna, out.UserID, "el cliente debe quedar asociado al usuario autenticado")

	stored, _ := repo.GetByID(out.ID)
	require.NotNil(t, stored)
	assert.Equal(t, userAna, stored.UserID)
}

func TestClientCreate_CamposRequeridos(t *testing.T) {
	uc, _, _ := newClientUseCase()

	_, err := uc.Create(userAna, dto.CreateClientRequest{Email: "sin-nombre@example.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(userAna, dto.CreateClientRequest{Name: "Sin Email"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClientList_SoloDelUsuarioYOrdenDescendente(t *testing.T) {
	uc, repo, _ := newClientUseCase()
	base := time.Now()
	seedClient(repo, userAna, "antigua", base.Add(-2*time.Hour))
	seedClient(repo, userAna, "reciente", base)
	seedClient(repo, userLuis, "ajena", base.Add(-time.Hour))

	list, err := uc.List(userAna, 20, 0)
	require.NoError(t, err)
	require.Len(t, list, 2, "no deben aparecer clientes de otros usuarios")
	assert.Equal(t, "reciente", list[0].Name, "el más reciente va primero")
	assert.Equal(t, "antigua", list[1].Name)
}

// Clasificación de errores: inexistente es NotFound, ajeno es Forbidden.
// Nunca al revés: la existencia se decide antes que la propiedad.
func TestClientGet_NotFoundVsForbidden(t *testing.T) {
	uc, repo, _ := newClientUseCase()
	ajeno := seedClient(repo, userLuis, "de-luis", time.Now())

	_, err := uc.GetByID(userAna, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetByID(userAna, ajeno.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestClientGet_IncluyeFacturasDescendentes(t *testing.T) {
	uc, clientRepo, invoiceRepo := newClientUseCase()
	c := seedClient(clientRepo, userAna, "con-facturas", time.Now())
	base := time.Now()
	_ = invoiceRepo.Create(&entity.Invoice{
		ID: "inv-vieja", UserID: userAna, ClientID: c.ID, InvoiceNo: "F-001",
		Status: entity.StatusPaid, TotalAmount: decimal.NewFromInt(100),
		CreatedAt: base.Add(-time.Hour),
	})
	_ = invoiceRepo.Create(&entity.Invoice{
		ID: "inv-nueva", UserID: userAna, ClientID: c.ID, InvoiceNo: "F-002",
		Status: entity.StatusDraft, TotalAmount: decimal.NewFromInt(200),
		CreatedAt: base,
	})

	out, err := uc.GetByID(userAna, c.ID)
	require.NoError(t, err)
	require.Len(t, out.Invoices, 2)
	assert.Equal(t, "F-002", out.Invoices[0].InvoiceNo, "facturas más recientes primero")
}

func TestClientUpdate_Parcial(t *testing.T) {
	uc, repo, _ := newClientUseCase()
	c := seedClient(repo, userAna, "original", time.Now())
	c.Company = "Empresa Original"
	_ = repo.Update(c)

	nuevo := "renombrada"
	out, err := uc.Update(userAna, c.ID, dto.UpdateClientRequest{Name: &nuevo})
	require.NoError(t, err)
	assert.Equal(t, "renombrada", out.Name)
	assert.Equal(t, c.Email, out.Email, "los campos no enviados quedan intactos")
	assert.Equal(t, "Empresa Original", out.Company)
}

func TestClientUpdate_AjenoEsForbidden(t *testing.T) {
	uc, repo, _ := newClientUseCase()
	ajeno := seedClient(repo, userLuis, "de-luis", time.Now())

	nuevo := "hackeada"
	_, err := uc.Update(userAna, ajeno.ID, dto.UpdateClientRequest{Name: &nuevo})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	stored, _ := repo.GetByID(ajeno.ID)
	assert.Equal(t, "de-luis", stored.Name, "el registro ajeno no debe mutar")
}

func TestClientDelete_BloqueadoConFacturas(t *testing.T) {
	uc, clientRepo, invoiceRepo := newClientUseCase()
	c := seedClient(clientRepo, userAna, "con-facturas", time.Now())
	_ = invoiceRepo.Create(&entity.Invoice{
		ID: "inv-1", UserID: userAna, ClientID: c.ID, InvoiceNo: "F-001",
		Status: entity.StatusPending, CreatedAt: time.Now(),
	})

	err := uc.Delete(userAna, c.ID)
	assert.ErrorIs(t, err, domain.ErrConflict,
		"un cliente con facturas no se puede eliminar")

	stored, _ := clientRepo.GetByID(c.ID)
	assert.NotNil(t, stored, "el cliente debe seguir existiendo")
}

func TestClientDelete_SinFacturas(t *testing.T) {
	uc, repo, _ := newClientUseCase()
	c := seedClient(repo, userAna, "libre", time.Now())

	require.NoError(t, uc.Delete(userAna, c.ID))

	stored, _ := repo.GetByID(c.ID)
	assert.Nil(t, stored)
}
