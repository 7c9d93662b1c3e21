package repositories

import (
	"context"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
)

// StockReader defines read operations for stock entries
type StockReader interface {
	// FindStockEntryByID retrieves a stock entry by its ID, regardless of owner.
	FindStockEntryByID(ctx context.Context, stockID string) (*domain.StockEntry, error)

	// ListStockEntries retrieves all of a user's stock entries, newest date first.
	ListStockEntries(ctx context.Context, userID string) ([]domain.StockEntry, error)
}

// StockWriter defines write operations for stock entries
type StockWriter interface {
	SaveStockEntry(ctx context.Context, entry domain.StockEntry) error
	UpdateStockEntry(ctx context.Context, entry domain.StockEntry) error
	DeleteStockEntry(ctx context.Context, stockID string) error
}

// StockRepositoryFacade combines all stock-related repository interfaces.
type StockRepositoryFacade interface {
	StockReader
	StockWriter
}
