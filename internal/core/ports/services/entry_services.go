package services

import (
	"context"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// EntrySummary is the kind-neutral roll-up the entry service produces; handlers map
// it onto the income- or expense-flavoured response shape.
type EntrySummary struct {
	Total          decimal.Decimal
	CategoryTotals []dto.CategoryTotal
}

// EntrySvcFacade exposes owner-scoped operations over one entry kind (income or
// expense). Two instances are wired, one per kind.
type EntrySvcFacade interface {
	CreateEntry(ctx context.Context, userID string, req dto.CreateEntryRequest) (*domain.Entry, error)

	// ListEntries returns a page of entries (newest first) and, when more remain,
	// an opaque continuation token.
	ListEntries(ctx context.Context, userID string, params dto.ListEntriesParams) ([]domain.Entry, string, error)

	GetEntryByID(ctx context.Context, userID, entryID string) (*domain.Entry, error)
	UpdateEntry(ctx context.Context, userID, entryID string, req dto.UpdateEntryRequest) (*domain.Entry, error)
	DeleteEntry(ctx context.Context, userID, entryID string) error

	// Summary folds all of the user's entries of this kind into a total plus
	// per-category totals; categories without entries appear with total 0.
	Summary(ctx context.Context, userID string) (*EntrySummary, error)
}
