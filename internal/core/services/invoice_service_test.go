package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/core/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// MockInvoiceRepository is a mock implementation of InvoiceRepositoryFacade.
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, userID string) ([]domain.Invoice, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindLatestInvoiceNumber(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockRepo *MockInvoiceRepository
	service  portssvc.InvoiceSvcFacade
	ctx      context.Context
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInvoiceRepository)
	suite.service = services.NewInvoiceService(suite.mockRepo)
	suite.ctx = context.Background()
}

func (suite *InvoiceServiceTestSuite) validRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		InvoiceNumber: "INV-00001",
		CustomerName:  "Acme Ltd",
		IssueDate:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		Items: []dto.InvoiceItemRequest{
			{Description: "Widgets", Quantity: dec("2"), UnitPrice: dec("10")},
			{Description: "Shipping", Quantity: dec("1"), UnitPrice: dec("5")},
		},
		TaxRate:  dec("10"),
		Discount: dec("2"),
	}
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ComputesTotals() {
	suite.mockRepo.On("SaveInvoice", suite.ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Subtotal.Equal(dec("25")) &&
			inv.TaxAmount.Equal(dec("2.5")) &&
			inv.Total.Equal(dec("25.5")) &&
			inv.Items[0].Amount.Equal(dec("20")) &&
			inv.Status == domain.InvoiceDraft &&
			inv.InvoiceID != ""
	})).Return(nil)

	invoice, err := suite.service.CreateInvoice(suite.ctx, "user-1", suite.validRequest())

	suite.Require().NoError(err)
	suite.True(invoice.Total.Equal(dec("25.5")))
	suite.Equal("user-1", invoice.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DuplicateNumber() {
	suite.mockRepo.On("SaveInvoice", suite.ctx, mock.AnythingOfType("domain.Invoice")).
		Return(apperrors.ErrDuplicate)

	_, err := suite.service.CreateInvoice(suite.ctx, "user-1", suite.validRequest())

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrDuplicate))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_RejectsEmptyItems() {
	req := suite.validRequest()
	req.Items = nil

	_, err := suite.service.CreateInvoice(suite.ctx, "user-1", req)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_RejectsUnknownStatus() {
	req := suite.validRequest()
	req.Status = "archived"

	_, err := suite.service.CreateInvoice(suite.ctx, "user-1", req)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *InvoiceServiceTestSuite) TestGetInvoiceByID_OwnerMismatch() {
	suite.mockRepo.On("FindInvoiceByID", suite.ctx, "inv-1").
		Return(&domain.Invoice{InvoiceID: "inv-1", UserID: "someone-else"}, nil)

	_, err := suite.service.GetInvoiceByID(suite.ctx, "user-1", "inv-1")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrUnauthorized))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestUpdateStatus_PaidSetsPaymentDate() {
	existing := &domain.Invoice{
		InvoiceID: "inv-1",
		UserID:    "user-1",
		Status:    domain.InvoiceSent,
		Total:     dec("100"),
	}
	paidOn := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("FindInvoiceByID", suite.ctx, "inv-1").Return(existing, nil)
	suite.mockRepo.On("UpdateInvoice", suite.ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Status == domain.InvoicePaid && inv.PaymentDate != nil && inv.PaymentDate.Equal(paidOn)
	})).Return(nil)

	invoice, err := suite.service.UpdateStatus(suite.ctx, "user-1", "inv-1", dto.UpdateInvoiceStatusRequest{
		Status:      "paid",
		PaymentDate: &paidOn,
	})

	suite.Require().NoError(err)
	suite.Equal(domain.InvoicePaid, invoice.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestUpdateStatus_RejectsUnknownStatus() {
	suite.mockRepo.On("FindInvoiceByID", suite.ctx, "inv-1").
		Return(&domain.Invoice{InvoiceID: "inv-1", UserID: "user-1"}, nil)

	_, err := suite.service.UpdateStatus(suite.ctx, "user-1", "inv-1", dto.UpdateInvoiceStatusRequest{Status: "archived"})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestNextInvoiceNumber_Success() {
	suite.mockRepo.On("FindLatestInvoiceNumber", suite.ctx, "user-1").Return("INV-00007", nil)

	number, err := suite.service.NextInvoiceNumber(suite.ctx, "user-1")

	suite.Require().NoError(err)
	suite.Equal("INV-00008", number)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestNextInvoiceNumber_FirstInvoice() {
	suite.mockRepo.On("FindLatestInvoiceNumber", suite.ctx, "user-1").Return("", nil)

	number, err := suite.service.NextInvoiceNumber(suite.ctx, "user-1")

	suite.Require().NoError(err)
	suite.Equal("INV-00001", number)
}

func (suite *InvoiceServiceTestSuite) TestNextInvoiceNumber_StorageFallback() {
	suite.mockRepo.On("FindLatestInvoiceNumber", suite.ctx, "user-1").
		Return("", errors.New("connection reset"))

	number, err := suite.service.NextInvoiceNumber(suite.ctx, "user-1")

	suite.Require().NoError(err)
	suite.True(strings.HasPrefix(number, "INV-"))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestSummary() {
	yesterday := time.Now().Add(-24 * time.Hour)
	nextWeek := time.Now().Add(7 * 24 * time.Hour)

	suite.mockRepo.On("ListInvoices", suite.ctx, "user-1").Return([]domain.Invoice{
		// Paid with a past due date: counts as paid, never as overdue.
		{Status: domain.InvoicePaid, DueDate: yesterday, Total: dec("100")},
		{Status: domain.InvoiceSent, DueDate: yesterday, Total: dec("50")},
		{Status: domain.InvoiceDraft, DueDate: nextWeek, Total: dec("25")},
	}, nil)

	summary, err := suite.service.Summary(suite.ctx, "user-1")

	suite.Require().NoError(err)
	suite.True(summary.TotalInvoiced.Equal(dec("175")))
	suite.True(summary.TotalPaid.Equal(dec("100")))
	suite.True(summary.TotalOverdue.Equal(dec("50")))
	suite.True(summary.TotalPending.Equal(dec("75")))
	suite.Equal(3, summary.InvoiceCount)
	suite.Equal(1, summary.PaidCount)
	suite.Equal(1, summary.OverdueCount)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestSummary_NoInvoices() {
	suite.mockRepo.On("ListInvoices", suite.ctx, "user-1").Return([]domain.Invoice{}, nil)

	summary, err := suite.service.Summary(suite.ctx, "user-1")

	suite.Require().NoError(err)
	suite.True(summary.TotalInvoiced.IsZero())
	suite.True(summary.TotalPending.IsZero())
	suite.Equal(0, summary.InvoiceCount)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
