package services

import (
	"context"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
)

// InvoiceSvcFacade exposes owner-scoped operations over invoices, including the
// sequential number generator and the dashboard roll-up.
type InvoiceSvcFacade interface {
	CreateInvoice(ctx context.Context, userID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, userID string) ([]domain.Invoice, error)
	GetInvoiceByID(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error)
	UpdateInvoice(ctx context.Context, userID, invoiceID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, userID, invoiceID string) error

	// UpdateStatus transitions the invoice lifecycle status; when the new status is
	// "paid" an optional payment date is recorded.
	UpdateStatus(ctx context.Context, userID, invoiceID string, req dto.UpdateInvoiceStatusRequest) (*domain.Invoice, error)

	// NextInvoiceNumber suggests the next sequential invoice number for the owner.
	// On storage failure it degrades to a timestamp-derived placeholder instead of
	// failing the create flow.
	NextInvoiceNumber(ctx context.Context, userID string) (string, error)

	// Summary folds all of the user's invoices into the dashboard figures; zero
	// invoices yield an all-zero structure.
	Summary(ctx context.Context, userID string) (*dto.InvoiceSummaryResponse, error)
}
