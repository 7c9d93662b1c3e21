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
	"github.com/fintrackhq/fintrack_backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockUserRepository is a mock implementation of UserRepositoryFacade.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByRefreshTokenHash(ctx context.Context, tokenHash string) (*domain.User, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiry *time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiry)
	return args.Error(0)
}

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
	ctx      context.Context
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
	suite.ctx = context.Background()
}

func (suite *UserServiceTestSuite) TestRegister_HashesPassword() {
	suite.mockRepo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID != "" &&
			u.Email == "jo@example.com" &&
			u.PasswordHash != "hunter22" &&
			utils.CheckPasswordHash("hunter22", u.PasswordHash)
	})).Return(nil)

	user, err := suite.service.Register(suite.ctx, dto.RegisterRequest{
		Name:     "Jo",
		Email:    "jo@example.com",
		Password: "hunter22",
	})

	suite.Require().NoError(err)
	suite.Equal("Jo", user.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateEmail() {
	suite.mockRepo.On("SaveUser", suite.ctx, mock.AnythingOfType("domain.User")).
		Return(apperrors.ErrDuplicate)

	_, err := suite.service.Register(suite.ctx, dto.RegisterRequest{
		Name:     "Jo",
		Email:    "jo@example.com",
		Password: "hunter22",
	})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrDuplicate))
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	hash, err := utils.HashPassword("hunter22")
	suite.Require().NoError(err)

	suite.mockRepo.On("FindUserByEmail", suite.ctx, "jo@example.com").
		Return(&domain.User{UserID: "user-1", Email: "jo@example.com", PasswordHash: hash}, nil)

	user, err := suite.service.AuthenticateUser(suite.ctx, "jo@example.com", "hunter22")

	suite.Require().NoError(err)
	suite.Equal("user-1", user.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmail() {
	suite.mockRepo.On("FindUserByEmail", suite.ctx, "nobody@example.com").
		Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.AuthenticateUser(suite.ctx, "nobody@example.com", "hunter22")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrUnauthorized))
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	hash, err := utils.HashPassword("correct-password")
	suite.Require().NoError(err)

	suite.mockRepo.On("FindUserByEmail", suite.ctx, "jo@example.com").
		Return(&domain.User{UserID: "user-1", PasswordHash: hash}, nil)

	_, err = suite.service.AuthenticateUser(suite.ctx, "jo@example.com", "wrong-password")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrUnauthorized))
}

func (suite *UserServiceTestSuite) TestUpdateProfile_NoChangesSkipsWrite() {
	suite.mockRepo.On("FindUserByID", suite.ctx, "user-1").
		Return(&domain.User{UserID: "user-1", Name: "Jo"}, nil)

	user, err := suite.service.UpdateProfile(suite.ctx, "user-1", dto.UpdateProfileRequest{})

	suite.Require().NoError(err)
	suite.Equal("Jo", user.Name)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_ExistingUser() {
	suite.mockRepo.On("FindUserByEmail", suite.ctx, "jo@example.com").
		Return(&domain.User{UserID: "user-1", Email: "jo@example.com"}, nil)

	user, err := suite.service.FindOrCreateOAuthUser(suite.ctx, "Jo", "jo@example.com")

	suite.Require().NoError(err)
	suite.Equal("user-1", user.UserID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_ProvisionsNewUser() {
	suite.mockRepo.On("FindUserByEmail", suite.ctx, "new@example.com").
		Return(nil, apperrors.ErrNotFound)
	suite.mockRepo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		// No password hash means password login stays disabled for the account.
		return u.Email == "new@example.com" && u.PasswordHash == ""
	})).Return(nil)

	user, err := suite.service.FindOrCreateOAuthUser(suite.ctx, "New Person", "new@example.com")

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestStoreRefreshToken_PersistsHash() {
	expiry := time.Now().Add(24 * time.Hour)
	wantHash := utils.HashRefreshToken("raw-token")

	suite.mockRepo.On("UpdateRefreshToken", suite.ctx, "user-1", wantHash, &expiry).Return(nil)

	err := suite.service.StoreRefreshToken(suite.ctx, "user-1", "raw-token", expiry)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUserByRefreshToken_Success() {
	expiry := time.Now().Add(time.Hour)
	suite.mockRepo.On("FindUserByRefreshTokenHash", suite.ctx, utils.HashRefreshToken("raw-token")).
		Return(&domain.User{UserID: "user-1", RefreshTokenExpiry: &expiry}, nil)

	user, err := suite.service.UserByRefreshToken(suite.ctx, "raw-token")

	suite.Require().NoError(err)
	suite.Equal("user-1", user.UserID)
}

func (suite *UserServiceTestSuite) TestUserByRefreshToken_Expired() {
	expiry := time.Now().Add(-time.Minute)
	suite.mockRepo.On("FindUserByRefreshTokenHash", suite.ctx, utils.HashRefreshToken("raw-token")).
		Return(&domain.User{UserID: "user-1", RefreshTokenExpiry: &expiry}, nil)

	_, err := suite.service.UserByRefreshToken(suite.ctx, "raw-token")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrUnauthorized))
}

func (suite *UserServiceTestSuite) TestUserByRefreshToken_UnknownToken() {
	suite.mockRepo.On("FindUserByRefreshTokenHash", suite.ctx, mock.AnythingOfType("string")).
		Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.UserByRefreshToken(suite.ctx, "raw-token")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrUnauthorized))
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
