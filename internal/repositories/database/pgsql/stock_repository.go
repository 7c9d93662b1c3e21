package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxStockRepository struct {
	db *pgxpool.Pool
}

func newPgxStockRepository(db *pgxpool.Pool) portsrepo.StockRepositoryFacade {
	return &PgxStockRepository{db: db}
}

var _ portsrepo.StockRepositoryFacade = (*PgxStockRepository)(nil)

func (r *PgxStockRepository) SaveStockEntry(ctx context.Context, entry domain.StockEntry) error {
	query := `
        INSERT INTO stock_entries (stock_id, user_id, item_name, type, vendor_name, quantity, unit_price, total_amount, notes, date, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.db.Exec(ctx, query,
		entry.StockID,
		entry.UserID,
		entry.ItemName,
		entry.Type,
		entry.VendorName,
		entry.Quantity,
		entry.UnitPrice,
		entry.TotalAmount,
		entry.Notes,
		entry.Date,
		entry.CreatedAt,
		entry.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save stock entry: %w", err)
	}
	return nil
}

func (r *PgxStockRepository) FindStockEntryByID(ctx context.Context, stockID string) (*domain.StockEntry, error) {
	query := `
        SELECT stock_id, user_id, item_name, type, vendor_name, quantity, unit_price, total_amount, notes, date, created_at, last_updated_at
        FROM stock_entries
        WHERE stock_id = $1;
    `
	var entry domain.StockEntry
	err := r.db.QueryRow(ctx, query, stockID).Scan(
		&entry.StockID,
		&entry.UserID,
		&entry.ItemName,
		&entry.Type,
		&entry.VendorName,
		&entry.Quantity,
		&entry.UnitPrice,
		&entry.TotalAmount,
		&entry.Notes,
		&entry.Date,
		&entry.CreatedAt,
		&entry.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find stock entry by ID %s: %w", stockID, err)
	}
	return &entry, nil
}

func (r *PgxStockRepository) ListStockEntries(ctx context.Context, userID string) ([]domain.StockEntry, error) {
	query := `
        SELECT stock_id, user_id, item_name, type, vendor_name, quantity, unit_price, total_amount, notes, date, created_at, last_updated_at
        FROM stock_entries
        WHERE user_id = $1
        ORDER BY date DESC, created_at DESC;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.StockEntry{}
	for rows.Next() {
		var entry domain.StockEntry
		err := rows.Scan(
			&entry.StockID,
			&entry.UserID,
			&entry.ItemName,
			&entry.Type,
			&entry.VendorName,
			&entry.Quantity,
			&entry.UnitPrice,
			&entry.TotalAmount,
			&entry.Notes,
			&entry.Date,
			&entry.CreatedAt,
			&entry.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock entry row: %w", err)
		}
		entries = append(entries, entry)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating stock entry rows: %w", rows.Err())
	}
	return entries, nil
}

func (r *PgxStockRepository) UpdateStockEntry(ctx context.Context, entry domain.StockEntry) error {
	query := `
        UPDATE stock_entries
        SET item_name = $1, type = $2, vendor_name = $3, quantity = $4, unit_price = $5, total_amount = $6, notes = $7, date = $8, last_updated_at = $9
        WHERE stock_id = $10;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		entry.ItemName,
		entry.Type,
		entry.VendorName,
		entry.Quantity,
		entry.UnitPrice,
		entry.TotalAmount,
		entry.Notes,
		entry.Date,
		entry.LastUpdatedAt,
		entry.StockID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update stock entry query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("stock entry not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxStockRepository) DeleteStockEntry(ctx context.Context, stockID string) error {
	query := `DELETE FROM stock_entries WHERE stock_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, stockID)
	if err != nil {
		return fmt.Errorf("failed to delete stock entry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("stock entry not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
