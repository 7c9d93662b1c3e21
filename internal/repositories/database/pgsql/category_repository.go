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

type PgxCategoryRepository struct {
	db *pgxpool.Pool
}

func newPgxCategoryRepository(db *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{db: db}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	query := `
        INSERT INTO categories (category_id, user_id, kind, name, description, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		category.CategoryID,
		category.UserID,
		category.Kind,
		category.Name,
		category.Description,
		category.CreatedAt,
		category.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}
	return nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `
        SELECT category_id, user_id, kind, name, description, created_at, last_updated_at
        FROM categories
        WHERE category_id = $1;
    `
	var category domain.Category
	err := r.db.QueryRow(ctx, query, categoryID).Scan(
		&category.CategoryID,
		&category.UserID,
		&category.Kind,
		&category.Name,
		&category.Description,
		&category.CreatedAt,
		&category.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}
	return &category, nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context, userID string, kind domain.CategoryKind) ([]domain.Category, error) {
	query := `
        SELECT category_id, user_id, kind, name, description, created_at, last_updated_at
        FROM categories
        WHERE user_id = $1 AND kind = $2
        ORDER BY created_at DESC;
    `
	rows, err := r.db.Query(ctx, query, userID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		err := rows.Scan(
			&category.CategoryID,
			&category.UserID,
			&category.Kind,
			&category.Name,
			&category.Description,
			&category.CreatedAt,
			&category.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, category)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", rows.Err())
	}
	return categories, nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	query := `
        UPDATE categories
        SET name = $1, description = $2, last_updated_at = $3
        WHERE category_id = $4;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		category.Name,
		category.Description,
		category.LastUpdatedAt,
		category.CategoryID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update category query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("category not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// DeleteCategory removes a category. The entries table holds an ON DELETE RESTRICT
// foreign key on category_id, so a category still referenced by any entry fails
// atomically at the database rather than via a racy check-then-delete.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	query := `DELETE FROM categories WHERE category_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, categoryID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("category is in use by existing entries: %w", apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("category not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
