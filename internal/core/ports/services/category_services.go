package services

import (
	"context"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
)

// CategorySvcFacade exposes owner-scoped CRUD over one category kind. Two instances
// are wired, one for income categories and one for expense categories.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error)
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeleteCategory removes a category; it fails with apperrors.ErrConflict while any
	// entry still references the category.
	DeleteCategory(ctx context.Context, userID, categoryID string) error
}
