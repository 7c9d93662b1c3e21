package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/core/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockCategoryRepository is a mock implementation of CategoryRepositoryFacade.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, userID string, kind domain.CategoryKind) ([]domain.Category, error) {
	args := m.Called(ctx, userID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

type CategoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCategoryRepository
	service  portssvc.CategorySvcFacade
	ctx      context.Context
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCategoryRepository)
	suite.service = services.NewCategoryService(domain.CategoryIncome, suite.mockRepo)
	suite.ctx = context.Background()
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	suite.mockRepo.On("SaveCategory", suite.ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.CategoryID != "" &&
			c.UserID == "user-1" &&
			c.Kind == domain.CategoryIncome &&
			c.Name == "Consulting"
	})).Return(nil)

	category, err := suite.service.CreateCategory(suite.ctx, "user-1", dto.CreateCategoryRequest{Name: "Consulting"})

	suite.Require().NoError(err)
	suite.Equal("Consulting", category.Name)
	suite.Equal(domain.CategoryIncome, category.Kind)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_PartialUpdate() {
	existing := &domain.Category{
		CategoryID:  "cat-1",
		UserID:      "user-1",
		Kind:        domain.CategoryIncome,
		Name:        "Consulting",
		Description: "Hourly work",
	}
	newName := "Retainers"

	suite.mockRepo.On("FindCategoryByID", suite.ctx, "cat-1").Return(existing, nil)
	suite.mockRepo.On("UpdateCategory", suite.ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.Name == "Retainers" && c.Description == "Hourly work"
	})).Return(nil)

	category, err := suite.service.UpdateCategory(suite.ctx, "user-1", "cat-1", dto.UpdateCategoryRequest{Name: &newName})

	suite.Require().NoError(err)
	suite.Equal("Retainers", category.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_Conflict() {
	suite.mockRepo.On("FindCategoryByID", suite.ctx, "cat-1").
		Return(&domain.Category{CategoryID: "cat-1", UserID: "user-1", Kind: domain.CategoryIncome}, nil)
	suite.mockRepo.On("DeleteCategory", suite.ctx, "cat-1").Return(apperrors.ErrConflict)

	err := suite.service.DeleteCategory(suite.ctx, "user-1", "cat-1")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrConflict))
	// The descriptive part survives to the handler, which strips the sentinel.
	suite.Contains(err.Error(), "Cannot delete category in use")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_KindMismatch() {
	// An expense category reached through the income service reads as absent.
	suite.mockRepo.On("FindCategoryByID", suite.ctx, "cat-1").
		Return(&domain.Category{CategoryID: "cat-1", UserID: "user-1", Kind: domain.CategoryExpense}, nil)

	err := suite.service.DeleteCategory(suite.ctx, "user-1", "cat-1")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_OwnerMismatch() {
	suite.mockRepo.On("FindCategoryByID", suite.ctx, "cat-1").
		Return(&domain.Category{CategoryID: "cat-1", UserID: "someone-else", Kind: domain.CategoryIncome}, nil)

	err := suite.service.DeleteCategory(suite.ctx, "user-1", "cat-1")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrUnauthorized))
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteCategory", mock.Anything, mock.Anything)
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
