package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/FreelanceCRM-api/internal/domain"
	"github.com/jhoicas/FreelanceCRM-api/internal/domain/repository"
)

// PDFUseCase genera la representación gráfica (PDF) de una factura.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	userRepo    repository.UserRepository
	ownership   *OwnershipValidator
	generator   InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	userRepo repository.UserRepository,
	ownership *OwnershipValidator,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		userRepo:    userRepo,
		ownership:   ownership,
		generator:   generator,
	}
}

// DownloadInvoicePDF recupera la factura del usuario con su cliente y sus
// ítems, y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe.
//   - domain.ErrForbidden        si la factura no pertenece al usuario del token.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, userID, invoiceID string) (pdfBytes []byte, filename string, err error) {
	invoice, err := uc.ownership.InvoiceOwnedBy(invoiceID, userID)
	if err != nil {
		return nil, "", err
	}

	issuer, err := uc.userRepo.GetByID(userID)
	if err != nil || issuer == nil {
		return nil, "", fmt.Errorf("pdf: obtener emisor: %w", domain.ErrNotFound)
	}

	client, err := uc.clientRepo.GetByID(invoice.ClientID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if client == nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", domain.ErrNotFound)
	}

	items, err := uc.invoiceRepo.GetItemsByInvoiceID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener ítems: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, invoice, issuer, client, items)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("factura_%s.pdf", invoice.InvoiceNo)
	return pdfBytes, filename, nil
}
