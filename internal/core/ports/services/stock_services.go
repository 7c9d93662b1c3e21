package services

import (
	"context"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
)

// StockSvcFacade exposes owner-scoped CRUD and aggregation over stock entries.
type StockSvcFacade interface {
	CreateStockEntry(ctx context.Context, userID string, req dto.CreateStockEntryRequest) (*domain.StockEntry, error)
	ListStockEntries(ctx context.Context, userID string) ([]domain.StockEntry, error)
	GetStockEntryByID(ctx context.Context, userID, stockID string) (*domain.StockEntry, error)
	UpdateStockEntry(ctx context.Context, userID, stockID string, req dto.UpdateStockEntryRequest) (*domain.StockEntry, error)
	DeleteStockEntry(ctx context.Context, userID, stockID string) error

	// Summary folds all of the user's stock entries into purchase/sale totals and
	// counts; zero entries yield an all-zero structure.
	Summary(ctx context.Context, userID string) (*dto.StockSummaryResponse, error)
}
