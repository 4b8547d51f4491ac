package invoices

import (
	"context"

	"github.com/heliconnect/client-api/internal/domain"
	"github.com/heliconnect/client-api/internal/repository"
)

// Invoices are produced by the billing back office; this service is a
// scoped read-through.
type InvoiceUseCase interface {
	List(ctx context.Context, userID int64) ([]domain.Invoice, error)
	GetByID(ctx context.Context, userID, id int64) (*domain.Invoice, error)
}

type InvoiceService struct {
	invoices repository.InvoiceRepository
}

func NewInvoiceService(invoices repository.InvoiceRepository) *InvoiceService {
	return &InvoiceService{invoices: invoices}
}

func (s *InvoiceService) List(ctx context.Context, userID int64) ([]domain.Invoice, error) {
	return s.invoices.ListByUser(ctx, userID)
}

func (s *InvoiceService) GetByID(ctx context.Context, userID, id int64) (*domain.Invoice, error) {
	return s.invoices.GetByID(ctx, userID, id)
}

var _ InvoiceUseCase = (*InvoiceService)(nil)
