package repositories

import (
	"context"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
)

// InvoiceReader defines read operations for invoices
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice by its ID, regardless of owner.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves all of a user's invoices, newest issue date first.
	ListInvoices(ctx context.Context, userID string) ([]domain.Invoice, error)

	// FindLatestInvoiceNumber returns the highest invoice number for a user by
	// descending lexicographic order of the stored string, or "" when the user has
	// no invoices yet.
	FindLatestInvoiceNumber(ctx context.Context, userID string) (string, error)
}

// InvoiceWriter defines write operations for invoices
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice with its items in a single write.
	// Returns apperrors.ErrDuplicate when the invoice number already exists for
	// the owner.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoice rewrites an existing invoice document. Same duplicate semantics
	// as SaveInvoice.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error

	// DeleteInvoice removes an invoice and, with it, its inline items.
	DeleteInvoice(ctx context.Context, invoiceID string) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
