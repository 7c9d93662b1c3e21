package repositories

import (
	"context"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/utils/pagination"
)

// EntryReader defines read operations for income/expense entries
type EntryReader interface {
	// FindEntryByID retrieves an entry by its ID, regardless of owner.
	FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error)

	// ListEntries retrieves a user's entries of one kind, ordered by
	// (date DESC, created_at DESC), with the category name joined in. A non-positive
	// limit returns all entries; before, when set, restricts the page to entries
	// strictly earlier in that ordering, so entries sharing the boundary date are
	// not skipped.
	ListEntries(ctx context.Context, userID string, kind domain.EntryKind, limit int, before *pagination.Cursor) ([]domain.Entry, error)
}

// EntryWriter defines write operations for income/expense entries
type EntryWriter interface {
	// SaveEntry persists a new entry.
	SaveEntry(ctx context.Context, entry domain.Entry) error

	// UpdateEntry updates an existing entry.
	UpdateEntry(ctx context.Context, entry domain.Entry) error

	// DeleteEntry removes an entry outright.
	DeleteEntry(ctx context.Context, entryID string) error
}

// EntryRepositoryFacade combines all entry-related repository interfaces.
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}
