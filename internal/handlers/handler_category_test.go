package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
	"github.com/fintrackhq/fintrack_backend/internal/middleware"
	"github.com/fintrackhq/fintrack_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCategoryService struct {
	mock.Mock
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *mockCategoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *mockCategoryService) UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, userID, categoryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	args := m.Called(ctx, userID, categoryID)
	return args.Error(0)
}

func categoryTestRouter(t *testing.T, svc *mockCategoryService) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	const secret = "test-secret"
	token, err := utils.GenerateJWT("user-1", secret, time.Hour, "test")
	require.NoError(t, err)

	r := gin.New()
	api := r.Group("/api/income", middleware.AuthMiddleware(secret))
	registerCategoryRoutes(api, svc)
	return r, token
}

func TestDeleteCategory_InUseEnvelope(t *testing.T) {
	svc := new(mockCategoryService)
	svc.On("DeleteCategory", mock.Anything, "user-1", "cat-1").
		Return(fmt.Errorf("Cannot delete category in use: %w", apperrors.ErrConflict))

	r, token := categoryTestRouter(t, svc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/income/categories/cat-1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"msg":"Cannot delete category in use"}`, w.Body.String())
	svc.AssertExpectations(t)
}

func TestDeleteCategory_Removed(t *testing.T) {
	svc := new(mockCategoryService)
	svc.On("DeleteCategory", mock.Anything, "user-1", "cat-1").Return(nil)

	r, token := categoryTestRouter(t, svc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/income/categories/cat-1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"msg":"Category removed"}`, w.Body.String())
}
