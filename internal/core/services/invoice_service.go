package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
	"github.com/fintrackhq/fintrack_backend/internal/utils/invoicing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// invoiceService implements InvoiceSvcFacade.
type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	now         func() time.Time
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(repo portsrepo.InvoiceRepositoryFacade) portssvc.InvoiceSvcFacade {
	return &invoiceService{invoiceRepo: repo, now: time.Now}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// buildInvoice validates a create/update request and assembles the invoice document,
// recomputing every derived field from the submitted items, tax rate and discount.
func (s *invoiceService) buildInvoice(userID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("invoice must have at least one item: %w", apperrors.ErrValidation)
	}

	status := domain.InvoiceDraft
	if req.Status != "" {
		status = domain.InvoiceStatus(req.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("invalid invoice status %q: %w", req.Status, apperrors.ErrValidation)
		}
	}

	items := make([]domain.InvoiceItem, len(req.Items))
	for i, item := range req.Items {
		if item.Description == "" {
			return nil, fmt.Errorf("item %d: description is required: %w", i+1, apperrors.ErrValidation)
		}
		items[i] = domain.InvoiceItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}

	totals, err := invoicing.ComputeTotals(items, req.TaxRate, req.Discount)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), apperrors.ErrValidation)
	}

	return &domain.Invoice{
		UserID:        userID,
		InvoiceNumber: req.InvoiceNumber,
		Customer: domain.Customer{
			Name:    req.CustomerName,
			Address: req.CustomerAddress,
			Email:   req.CustomerEmail,
			Phone:   req.CustomerPhone,
		},
		IssueDate:     req.IssueDate,
		DueDate:       req.DueDate,
		Items:         items,
		Subtotal:      totals.Subtotal,
		TaxRate:       req.TaxRate,
		TaxAmount:     totals.TaxAmount,
		Discount:      req.Discount,
		Total:         totals.Total,
		Notes:         req.Notes,
		Status:        status,
		PaymentMethod: req.PaymentMethod,
	}, nil
}

func (s *invoiceService) CreateInvoice(ctx context.Context, userID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	invoice, err := s.buildInvoice(userID, req)
	if err != nil {
		return nil, err
	}

	now := s.now()
	invoice.InvoiceID = uuid.NewString()
	invoice.AuditFields = domain.NewAuditFields(now)

	if err := s.invoiceRepo.SaveInvoice(ctx, *invoice); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogWarn(ctx, "Duplicate invoice number", slog.String("invoice_number", invoice.InvoiceNumber))
			return nil, fmt.Errorf("invoice number %s already exists: %w", invoice.InvoiceNumber, apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to save invoice")
		return nil, err
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_number", invoice.InvoiceNumber))
	return invoice, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, userID string) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices")
		return nil, err
	}
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	return invoices, nil
}

func (s *invoiceService) ownedInvoice(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.UserID != userID {
		return nil, apperrors.ErrUnauthorized
	}
	return invoice, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error) {
	return s.ownedInvoice(ctx, userID, invoiceID)
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, userID, invoiceID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	existing, err := s.ownedInvoice(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}

	invoice, err := s.buildInvoice(userID, req)
	if err != nil {
		return nil, err
	}

	invoice.InvoiceID = existing.InvoiceID
	invoice.PaymentDate = existing.PaymentDate
	invoice.AuditFields = existing.AuditFields
	invoice.LastUpdatedAt = s.now()

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("invoice number %s already exists: %w", invoice.InvoiceNumber, apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to update invoice", slog.String("invoice_id", invoiceID))
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, userID, invoiceID string) error {
	if _, err := s.ownedInvoice(ctx, userID, invoiceID); err != nil {
		return err
	}

	// Items live inline with the invoice document, so this removes them too.
	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID); err != nil {
		s.LogError(ctx, err, "Failed to delete invoice", slog.String("invoice_id", invoiceID))
		return err
	}

	s.LogInfo(ctx, "Invoice deleted", slog.String("invoice_id", invoiceID))
	return nil
}

func (s *invoiceService) UpdateStatus(ctx context.Context, userID, invoiceID string, req dto.UpdateInvoiceStatusRequest) (*domain.Invoice, error) {
	invoice, err := s.ownedInvoice(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}

	status := domain.InvoiceStatus(req.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("invalid invoice status %q: %w", req.Status, apperrors.ErrValidation)
	}

	invoice.Status = status
	if status == domain.InvoicePaid && req.PaymentDate != nil {
		invoice.PaymentDate = req.PaymentDate
	}
	invoice.LastUpdatedAt = s.now()

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		s.LogError(ctx, err, "Failed to update invoice status", slog.String("invoice_id", invoiceID))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice status updated",
		slog.String("invoice_id", invoiceID),
		slog.String("status", string(status)))
	return invoice, nil
}

// NextInvoiceNumber derives the next sequential number from the owner's latest
// invoice. The suggestion is advisory; the client may still submit a different
// number, and per-owner uniqueness is enforced at write time.
func (s *invoiceService) NextInvoiceNumber(ctx context.Context, userID string) (string, error) {
	lastNumber, err := s.invoiceRepo.FindLatestInvoiceNumber(ctx, userID)
	if err != nil {
		// Degraded mode: a storage failure falls back to a timestamp-derived
		// placeholder rather than failing the whole create flow.
		s.LogWarn(ctx, "Invoice number lookup failed, using timestamp fallback",
			slog.String("error", err.Error()))
		return fmt.Sprintf("INV-%d", s.now().Unix()), nil
	}
	return invoicing.NextNumber(lastNumber), nil
}

// Summary folds all of the user's invoices into the dashboard figures. An invoice
// counts as overdue only while its status is "sent" and its due date has passed;
// a paid invoice never counts as overdue regardless of date.
func (s *invoiceService) Summary(ctx context.Context, userID string) (*dto.InvoiceSummaryResponse, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load invoice summary data")
		return nil, err
	}

	now := s.now()
	summary := &dto.InvoiceSummaryResponse{
		TotalInvoiced: decimal.Zero,
		TotalPaid:     decimal.Zero,
		TotalOverdue:  decimal.Zero,
		TotalPending:  decimal.Zero,
	}
	for _, invoice := range invoices {
		summary.TotalInvoiced = summary.TotalInvoiced.Add(invoice.Total)
		summary.InvoiceCount++
		if invoice.Status == domain.InvoicePaid {
			summary.TotalPaid = summary.TotalPaid.Add(invoice.Total)
			summary.PaidCount++
		}
		if invoice.IsOverdue(now) {
			summary.TotalOverdue = summary.TotalOverdue.Add(invoice.Total)
			summary.OverdueCount++
		}
	}
	summary.TotalPending = summary.TotalInvoiced.Sub(summary.TotalPaid)
	return summary, nil
}
