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
	"github.com/fintrackhq/fintrack_backend/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// entryService implements EntrySvcFacade for a single entry kind (income or expense).
type entryService struct {
	BaseService
	kind         domain.EntryKind
	entryRepo    portsrepo.EntryRepositoryFacade
	categoryRepo portsrepo.CategoryReader
}

// NewEntryService creates an entry service bound to one kind.
func NewEntryService(kind domain.EntryKind, entryRepo portsrepo.EntryRepositoryFacade, categoryRepo portsrepo.CategoryReader) portssvc.EntrySvcFacade {
	return &entryService{kind: kind, entryRepo: entryRepo, categoryRepo: categoryRepo}
}

var _ portssvc.EntrySvcFacade = (*entryService)(nil)

// validateCategory checks that the referenced category exists, belongs to the same
// user, and is of this service's kind.
func (s *entryService) validateCategory(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("category does not exist: %w", apperrors.ErrValidation)
		}
		return nil, err
	}
	if category.UserID != userID || category.Kind != s.kind {
		return nil, fmt.Errorf("category does not exist: %w", apperrors.ErrValidation)
	}
	return category, nil
}

func (s *entryService) CreateEntry(ctx context.Context, userID string, req dto.CreateEntryRequest) (*domain.Entry, error) {
	category, err := s.validateCategory(ctx, userID, req.CategoryID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	date := req.Date
	if date.IsZero() {
		date = now
	}

	entry := domain.Entry{
		EntryID:      uuid.NewString(),
		UserID:       userID,
		Kind:         s.kind,
		CategoryID:   req.CategoryID,
		Amount:       req.Amount,
		Description:  req.Description,
		Date:         date,
		Reference:    req.Reference,
		CategoryName: category.Name,
		AuditFields:  domain.NewAuditFields(now),
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save entry", slog.String("kind", string(s.kind)))
		return nil, err
	}

	s.LogInfo(ctx, "Entry created", slog.String("entry_id", entry.EntryID), slog.String("kind", string(s.kind)))
	return &entry, nil
}

func (s *entryService) ListEntries(ctx context.Context, userID string, params dto.ListEntriesParams) ([]domain.Entry, string, error) {
	var before *pagination.Cursor
	if params.NextToken != "" {
		cursor, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		before = &cursor
	}

	limit := params.Limit
	fetch := limit
	if fetch > 0 {
		// Fetch one extra row to learn whether another page exists.
		fetch++
	}

	entries, err := s.entryRepo.ListEntries(ctx, userID, s.kind, fetch, before)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries", slog.String("kind", string(s.kind)))
		return nil, "", err
	}
	if entries == nil {
		entries = []domain.Entry{}
	}

	nextToken := ""
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		nextToken = pagination.EncodeToken(last.Date, last.CreatedAt)
	}
	return entries, nextToken, nil
}

// ownedEntry fetches an entry and verifies kind and ownership.
func (s *entryService) ownedEntry(ctx context.Context, userID, entryID string) (*domain.Entry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Kind != s.kind {
		return nil, apperrors.ErrNotFound
	}
	if entry.UserID != userID {
		return nil, apperrors.ErrUnauthorized
	}
	return entry, nil
}

func (s *entryService) GetEntryByID(ctx context.Context, userID, entryID string) (*domain.Entry, error) {
	return s.ownedEntry(ctx, userID, entryID)
}

func (s *entryService) UpdateEntry(ctx context.Context, userID, entryID string, req dto.UpdateEntryRequest) (*domain.Entry, error) {
	entry, err := s.ownedEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		category, err := s.validateCategory(ctx, userID, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		entry.CategoryID = *req.CategoryID
		entry.CategoryName = category.Name
	}
	if req.Amount != nil {
		entry.Amount = *req.Amount
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.Date != nil {
		entry.Date = *req.Date
	}
	if req.Reference != nil {
		entry.Reference = *req.Reference
	}
	entry.LastUpdatedAt = time.Now()

	if err := s.entryRepo.UpdateEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to update entry", slog.String("entry_id", entryID))
		return nil, err
	}
	return entry, nil
}

func (s *entryService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	if _, err := s.ownedEntry(ctx, userID, entryID); err != nil {
		return err
	}

	if err := s.entryRepo.DeleteEntry(ctx, entryID); err != nil {
		s.LogError(ctx, err, "Failed to delete entry", slog.String("entry_id", entryID))
		return err
	}

	s.LogInfo(ctx, "Entry deleted", slog.String("entry_id", entryID), slog.String("kind", string(s.kind)))
	return nil
}

// Summary folds the user's entries of this kind into a grand total plus one total
// per category. Categories with no entries still appear with total 0. The two
// independent reads run concurrently.
func (s *entryService) Summary(ctx context.Context, userID string) (*portssvc.EntrySummary, error) {
	var (
		entries    []domain.Entry
		categories []domain.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = s.entryRepo.ListEntries(gctx, userID, s.kind, 0, nil)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categoryRepo.ListCategories(gctx, userID, s.kind)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load summary data", slog.String("kind", string(s.kind)))
		return nil, err
	}

	total := decimal.Zero
	perCategory := make(map[string]decimal.Decimal, len(categories))
	for _, entry := range entries {
		total = total.Add(entry.Amount)
		perCategory[entry.CategoryID] = perCategory[entry.CategoryID].Add(entry.Amount)
	}

	categoryTotals := make([]dto.CategoryTotal, len(categories))
	for i, category := range categories {
		categoryTotals[i] = dto.CategoryTotal{
			Category: category.Name,
			Total:    perCategory[category.CategoryID],
		}
	}

	return &portssvc.EntrySummary{Total: total, CategoryTotals: categoryTotals}, nil
}
