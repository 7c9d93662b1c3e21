package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/core/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
	"github.com/fintrackhq/fintrack_backend/internal/utils/pagination"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockEntryRepository is a mock implementation of EntryRepositoryFacade.
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) ListEntries(ctx context.Context, userID string, kind domain.EntryKind, limit int, before *pagination.Cursor) ([]domain.Entry, error) {
	args := m.Called(ctx, userID, kind, limit, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) UpdateEntry(ctx context.Context, entry domain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

type EntryServiceTestSuite struct {
	suite.Suite
	mockEntryRepo    *MockEntryRepository
	mockCategoryRepo *MockCategoryRepository
	service          portssvc.EntrySvcFacade
	ctx              context.Context
}

func (suite *EntryServiceTestSuite) SetupTest() {
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewEntryService(domain.CategoryIncome, suite.mockEntryRepo, suite.mockCategoryRepo)
	suite.ctx = context.Background()
}

func (suite *EntryServiceTestSuite) incomeCategory() *domain.Category {
	return &domain.Category{
		CategoryID: "cat-1",
		UserID:     "user-1",
		Kind:       domain.CategoryIncome,
		Name:       "Consulting",
	}
}

func (suite *EntryServiceTestSuite) TestCreateEntry_Success() {
	suite.mockCategoryRepo.On("FindCategoryByID", suite.ctx, "cat-1").Return(suite.incomeCategory(), nil)
	suite.mockEntryRepo.On("SaveEntry", suite.ctx, mock.MatchedBy(func(e domain.Entry) bool {
		return e.EntryID != "" &&
			e.UserID == "user-1" &&
			e.Kind == domain.CategoryIncome &&
			e.CategoryName == "Consulting" &&
			e.Amount.Equal(dec("150"))
	})).Return(nil)

	entry, err := suite.service.CreateEntry(suite.ctx, "user-1", dto.CreateEntryRequest{
		CategoryID: "cat-1",
		Amount:     dec("150"),
	})

	suite.Require().NoError(err)
	suite.Equal("Consulting", entry.CategoryName)
	suite.False(entry.Date.IsZero())
	suite.mockEntryRepo.AssertExpectations(suite.T())
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestCreateEntry_CategoryMissing() {
	suite.mockCategoryRepo.On("FindCategoryByID", suite.ctx, "cat-x").Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.CreateEntry(suite.ctx, "user-1", dto.CreateEntryRequest{
		CategoryID: "cat-x",
		Amount:     dec("10"),
	})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_CategoryWrongOwner() {
	category := suite.incomeCategory()
	category.UserID = "someone-else"
	suite.mockCategoryRepo.On("FindCategoryByID", suite.ctx, "cat-1").Return(category, nil)

	_, err := suite.service.CreateEntry(suite.ctx, "user-1", dto.CreateEntryRequest{
		CategoryID: "cat-1",
		Amount:     dec("10"),
	})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *EntryServiceTestSuite) TestCreateEntry_CategoryWrongKind() {
	category := suite.incomeCategory()
	category.Kind = domain.CategoryExpense
	suite.mockCategoryRepo.On("FindCategoryByID", suite.ctx, "cat-1").Return(category, nil)

	_, err := suite.service.CreateEntry(suite.ctx, "user-1", dto.CreateEntryRequest{
		CategoryID: "cat-1",
		Amount:     dec("10"),
	})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func testEntry(id string, date, createdAt time.Time) domain.Entry {
	return domain.Entry{
		EntryID:     id,
		Date:        date,
		AuditFields: domain.AuditFields{CreatedAt: createdAt, LastUpdatedAt: createdAt},
	}
}

func (suite *EntryServiceTestSuite) TestListEntries_PaginatesWithToken() {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	rows := []domain.Entry{
		testEntry("e1", base.Add(2*time.Hour), base.Add(2*time.Hour)),
		testEntry("e2", base.Add(time.Hour), base.Add(time.Hour)),
		testEntry("e3", base, base),
	}

	// limit 2 fetches 3 rows; the extra row signals another page.
	suite.mockEntryRepo.On("ListEntries", suite.ctx, "user-1", domain.CategoryIncome, 3, (*pagination.Cursor)(nil)).
		Return(rows, nil)

	entries, nextToken, err := suite.service.ListEntries(suite.ctx, "user-1", dto.ListEntriesParams{Limit: 2})

	suite.Require().NoError(err)
	suite.Len(entries, 2)
	suite.Require().NotEmpty(nextToken)

	cursor, err := pagination.DecodeToken(nextToken)
	suite.Require().NoError(err)
	suite.True(cursor.Date.Equal(rows[1].Date))
	suite.True(cursor.CreatedAt.Equal(rows[1].CreatedAt))
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

// Entries sharing a date are the common case (clients submit day-granularity
// dates); the cursor must carry created_at as well so the page boundary does not
// swallow them.
func (suite *EntryServiceTestSuite) TestListEntries_SameDateBoundary() {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	e1 := testEntry("e1", day, created.Add(2*time.Second))
	e2 := testEntry("e2", day, created.Add(time.Second))
	e3 := testEntry("e3", day, created)

	suite.mockEntryRepo.On("ListEntries", suite.ctx, "user-1", domain.CategoryIncome, 3, (*pagination.Cursor)(nil)).
		Return([]domain.Entry{e1, e2, e3}, nil).Once()

	entries, nextToken, err := suite.service.ListEntries(suite.ctx, "user-1", dto.ListEntriesParams{Limit: 2})
	suite.Require().NoError(err)
	suite.Len(entries, 2)
	suite.Require().NotEmpty(nextToken)

	// The second page must be keyed past e2 specifically, not past the whole day.
	wantCursor := &pagination.Cursor{Date: e2.Date, CreatedAt: e2.CreatedAt}
	suite.mockEntryRepo.On("ListEntries", suite.ctx, "user-1", domain.CategoryIncome, 3, mock.MatchedBy(func(c *pagination.Cursor) bool {
		return c != nil && c.Date.Equal(wantCursor.Date) && c.CreatedAt.Equal(wantCursor.CreatedAt)
	})).Return([]domain.Entry{e3}, nil).Once()

	entries, nextToken, err = suite.service.ListEntries(suite.ctx, "user-1", dto.ListEntriesParams{Limit: 2, NextToken: nextToken})
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal("e3", entries[0].EntryID)
	suite.Empty(nextToken)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestListEntries_LastPage() {
	rows := []domain.Entry{testEntry("e1", time.Now(), time.Now())}

	suite.mockEntryRepo.On("ListEntries", suite.ctx, "user-1", domain.CategoryIncome, 3, (*pagination.Cursor)(nil)).
		Return(rows, nil)

	entries, nextToken, err := suite.service.ListEntries(suite.ctx, "user-1", dto.ListEntriesParams{Limit: 2})

	suite.Require().NoError(err)
	suite.Len(entries, 1)
	suite.Empty(nextToken)
}

func (suite *EntryServiceTestSuite) TestListEntries_InvalidToken() {
	_, _, err := suite.service.ListEntries(suite.ctx, "user-1", dto.ListEntriesParams{NextToken: "!!!"})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "ListEntries", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestGetEntryByID_KindMismatch() {
	suite.mockEntryRepo.On("FindEntryByID", suite.ctx, "e1").
		Return(&domain.Entry{EntryID: "e1", UserID: "user-1", Kind: domain.CategoryExpense}, nil)

	_, err := suite.service.GetEntryByID(suite.ctx, "user-1", "e1")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func (suite *EntryServiceTestSuite) TestGetEntryByID_OwnerMismatch() {
	suite.mockEntryRepo.On("FindEntryByID", suite.ctx, "e1").
		Return(&domain.Entry{EntryID: "e1", UserID: "someone-else", Kind: domain.CategoryIncome}, nil)

	_, err := suite.service.GetEntryByID(suite.ctx, "user-1", "e1")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrUnauthorized))
}

func (suite *EntryServiceTestSuite) TestSummary_IncludesEmptyCategories() {
	// The two reads run inside an errgroup, so the contexts are derived.
	suite.mockEntryRepo.On("ListEntries", mock.Anything, "user-1", domain.CategoryIncome, 0, (*pagination.Cursor)(nil)).
		Return([]domain.Entry{
			{CategoryID: "cat-1", Amount: dec("100")},
			{CategoryID: "cat-1", Amount: dec("50")},
			{CategoryID: "cat-2", Amount: dec("25")},
		}, nil)
	suite.mockCategoryRepo.On("ListCategories", mock.Anything, "user-1", domain.CategoryIncome).
		Return([]domain.Category{
			{CategoryID: "cat-1", Name: "Consulting"},
			{CategoryID: "cat-2", Name: "Royalties"},
			{CategoryID: "cat-3", Name: "Grants"},
		}, nil)

	summary, err := suite.service.Summary(suite.ctx, "user-1")

	suite.Require().NoError(err)
	suite.True(summary.Total.Equal(dec("175")))
	suite.Require().Len(summary.CategoryTotals, 3)
	suite.True(summary.CategoryTotals[0].Total.Equal(dec("150")))
	suite.True(summary.CategoryTotals[1].Total.Equal(dec("25")))
	suite.True(summary.CategoryTotals[2].Total.IsZero())
	suite.Equal("Grants", summary.CategoryTotals[2].Category)
}

func TestEntryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EntryServiceTestSuite))
}
