package services

import (
	"context"
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// Register creates a new user from a registration request.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// UpdateProfile updates the requesting user's own profile.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)

	// FindOrCreateOAuthUser resolves an externally authenticated identity to a local
	// user, creating one on first login.
	FindOrCreateOAuthUser(ctx context.Context, name, email string) (*domain.User, error)
}

// UserAuthSvc defines operations for user authentication and refresh-token state
type UserAuthSvc interface {
	// AuthenticateUser verifies email/password credentials.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// StoreRefreshToken persists the hash of a freshly issued refresh token.
	StoreRefreshToken(ctx context.Context, userID string, refreshToken string, expiry time.Time) error

	// UserByRefreshToken resolves a raw refresh token to its holder, rejecting
	// unknown or expired tokens.
	UserByRefreshToken(ctx context.Context, refreshToken string) (*domain.User, error)

	// ClearRefreshToken invalidates the user's stored refresh token.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
