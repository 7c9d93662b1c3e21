package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrackhq/fintrack_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEntryRepository struct {
	db *pgxpool.Pool
}

func newPgxEntryRepository(db *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{db: db}
}

var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	query := `
        INSERT INTO entries (entry_id, user_id, kind, category_id, amount, description, date, reference, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.db.Exec(ctx, query,
		entry.EntryID,
		entry.UserID,
		entry.Kind,
		entry.CategoryID,
		entry.Amount,
		entry.Description,
		entry.Date,
		entry.Reference,
		entry.CreatedAt,
		entry.LastUpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("category %s does not exist: %w", entry.CategoryID, apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to save entry: %w", err)
	}
	return nil
}

func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	query := `
        SELECT e.entry_id, e.user_id, e.kind, e.category_id, e.amount, e.description, e.date, e.reference,
               c.name, e.created_at, e.last_updated_at
        FROM entries e
        JOIN categories c ON c.category_id = e.category_id
        WHERE e.entry_id = $1;
    `
	var entry domain.Entry
	err := r.db.QueryRow(ctx, query, entryID).Scan(
		&entry.EntryID,
		&entry.UserID,
		&entry.Kind,
		&entry.CategoryID,
		&entry.Amount,
		&entry.Description,
		&entry.Date,
		&entry.Reference,
		&entry.CategoryName,
		&entry.CreatedAt,
		&entry.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry by ID %s: %w", entryID, err)
	}
	return &entry, nil
}

func (r *PgxEntryRepository) ListEntries(ctx context.Context, userID string, kind domain.EntryKind, limit int, before *pagination.Cursor) ([]domain.Entry, error) {
	query := `
        SELECT e.entry_id, e.user_id, e.kind, e.category_id, e.amount, e.description, e.date, e.reference,
               c.name, e.created_at, e.last_updated_at
        FROM entries e
        JOIN categories c ON c.category_id = e.category_id
        WHERE e.user_id = $1 AND e.kind = $2
    `
	args := []any{userID, kind}
	if before != nil {
		// Tuple comparison against the full sort key; a date-only filter would skip
		// entries sharing the boundary date.
		args = append(args, before.Date, before.CreatedAt)
		query += fmt.Sprintf(" AND (e.date, e.created_at) < ($%d, $%d)", len(args)-1, len(args))
	}
	query += " ORDER BY e.date DESC, e.created_at DESC"
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	query += ";"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.Entry{}
	for rows.Next() {
		var entry domain.Entry
		err := rows.Scan(
			&entry.EntryID,
			&entry.UserID,
			&entry.Kind,
			&entry.CategoryID,
			&entry.Amount,
			&entry.Description,
			&entry.Date,
			&entry.Reference,
			&entry.CategoryName,
			&entry.CreatedAt,
			&entry.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		entries = append(entries, entry)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", rows.Err())
	}
	return entries, nil
}

func (r *PgxEntryRepository) UpdateEntry(ctx context.Context, entry domain.Entry) error {
	query := `
        UPDATE entries
        SET category_id = $1, amount = $2, description = $3, date = $4, reference = $5, last_updated_at = $6
        WHERE entry_id = $7;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		entry.CategoryID,
		entry.Amount,
		entry.Description,
		entry.Date,
		entry.Reference,
		entry.LastUpdatedAt,
		entry.EntryID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("category %s does not exist: %w", entry.CategoryID, apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to execute update entry query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("entry not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	query := `DELETE FROM entries WHERE entry_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("entry not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
