package dto

import (
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
)

// RegisterRequest is the body for POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest is the body for PUT /api/auth/profile.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateProfileRequest struct {
	Name        *string `json:"name"`
	CompanyName *string `json:"companyName"`
	Logo        *string `json:"logo"`
}

// ExchangeCodeRequest carries the authorization code from the Google consent flow.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// UserResponse is the public shape of a user (never includes credential material).
type UserResponse struct {
	UserID      string    `json:"userID"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CompanyName string    `json:"companyName,omitempty"`
	Logo        string    `json:"logo,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:      user.UserID,
		Name:        user.Name,
		Email:       user.Email,
		CompanyName: user.CompanyName,
		Logo:        user.Logo,
		CreatedAt:   user.CreatedAt,
	}
}
