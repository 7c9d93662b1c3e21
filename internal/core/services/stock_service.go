package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// stockService implements StockSvcFacade.
type stockService struct {
	BaseService
	stockRepo portsrepo.StockRepositoryFacade
}

// NewStockService creates a new stock service.
func NewStockService(repo portsrepo.StockRepositoryFacade) portssvc.StockSvcFacade {
	return &stockService{stockRepo: repo}
}

var _ portssvc.StockSvcFacade = (*stockService)(nil)

func validateStockFields(movementType domain.StockMovementType, quantity, unitPrice decimal.Decimal) error {
	if !movementType.Valid() {
		return fmt.Errorf("stock type must be purchase or sale: %w", apperrors.ErrValidation)
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("quantity must be positive: %w", apperrors.ErrValidation)
	}
	if unitPrice.IsNegative() {
		return fmt.Errorf("unit price must not be negative: %w", apperrors.ErrValidation)
	}
	return nil
}

func (s *stockService) CreateStockEntry(ctx context.Context, userID string, req dto.CreateStockEntryRequest) (*domain.StockEntry, error) {
	movementType := domain.StockMovementType(req.Type)
	if err := validateStockFields(movementType, req.Quantity, req.UnitPrice); err != nil {
		return nil, err
	}

	now := time.Now()
	date := req.Date
	if date.IsZero() {
		date = now
	}

	entry := domain.StockEntry{
		StockID:     uuid.NewString(),
		UserID:      userID,
		ItemName:    req.ItemName,
		Type:        movementType,
		VendorName:  req.VendorName,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		TotalAmount: req.Quantity.Mul(req.UnitPrice),
		Notes:       req.Notes,
		Date:        date,
		AuditFields: domain.NewAuditFields(now),
	}

	if err := s.stockRepo.SaveStockEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save stock entry")
		return nil, err
	}

	s.LogInfo(ctx, "Stock entry created", slog.String("stock_id", entry.StockID), slog.String("type", string(entry.Type)))
	return &entry, nil
}

func (s *stockService) ListStockEntries(ctx context.Context, userID string) ([]domain.StockEntry, error) {
	entries, err := s.stockRepo.ListStockEntries(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list stock entries")
		return nil, err
	}
	if entries == nil {
		entries = []domain.StockEntry{}
	}
	return entries, nil
}

func (s *stockService) ownedStockEntry(ctx context.Context, userID, stockID string) (*domain.StockEntry, error) {
	entry, err := s.stockRepo.FindStockEntryByID(ctx, stockID)
	if err != nil {
		return nil, err
	}
	if entry.UserID != userID {
		return nil, apperrors.ErrUnauthorized
	}
	return entry, nil
}

func (s *stockService) GetStockEntryByID(ctx context.Context, userID, stockID string) (*domain.StockEntry, error) {
	return s.ownedStockEntry(ctx, userID, stockID)
}

func (s *stockService) UpdateStockEntry(ctx context.Context, userID, stockID string, req dto.UpdateStockEntryRequest) (*domain.StockEntry, error) {
	entry, err := s.ownedStockEntry(ctx, userID, stockID)
	if err != nil {
		return nil, err
	}

	if req.ItemName != nil {
		entry.ItemName = *req.ItemName
	}
	if req.Type != nil {
		entry.Type = domain.StockMovementType(*req.Type)
	}
	if req.VendorName != nil {
		entry.VendorName = *req.VendorName
	}
	if req.Quantity != nil {
		entry.Quantity = *req.Quantity
	}
	if req.UnitPrice != nil {
		entry.UnitPrice = *req.UnitPrice
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}
	if req.Date != nil {
		entry.Date = *req.Date
	}

	if err := validateStockFields(entry.Type, entry.Quantity, entry.UnitPrice); err != nil {
		return nil, err
	}

	// TotalAmount is always derived; a quantity or price edit recomputes it.
	entry.TotalAmount = entry.Quantity.Mul(entry.UnitPrice)
	entry.LastUpdatedAt = time.Now()

	if err := s.stockRepo.UpdateStockEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to update stock entry", slog.String("stock_id", stockID))
		return nil, err
	}
	return entry, nil
}

func (s *stockService) DeleteStockEntry(ctx context.Context, userID, stockID string) error {
	if _, err := s.ownedStockEntry(ctx, userID, stockID); err != nil {
		return err
	}

	if err := s.stockRepo.DeleteStockEntry(ctx, stockID); err != nil {
		s.LogError(ctx, err, "Failed to delete stock entry", slog.String("stock_id", stockID))
		return err
	}

	s.LogInfo(ctx, "Stock entry deleted", slog.String("stock_id", stockID))
	return nil
}

// Summary folds all stock entries into purchase/sale value totals and counts.
// Inventory is the value difference, not a unit count.
func (s *stockService) Summary(ctx context.Context, userID string) (*dto.StockSummaryResponse, error) {
	entries, err := s.stockRepo.ListStockEntries(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load stock summary data")
		return nil, err
	}

	summary := &dto.StockSummaryResponse{
		TotalPurchases: decimal.Zero,
		TotalSales:     decimal.Zero,
		Inventory:      decimal.Zero,
	}
	for _, entry := range entries {
		switch entry.Type {
		case domain.StockPurchase:
			summary.TotalPurchases = summary.TotalPurchases.Add(entry.TotalAmount)
			summary.PurchaseCount++
		case domain.StockSale:
			summary.TotalSales = summary.TotalSales.Add(entry.TotalAmount)
			summary.SalesCount++
		}
	}
	summary.Inventory = summary.TotalPurchases.Sub(summary.TotalSales)
	return summary, nil
}
