package domain

import "time"

// User represents an account that owns every other entity in the system.
type User struct {
	UserID       string `json:"userID"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	CompanyName  string `json:"companyName,omitempty"`
	Logo         string `json:"logo,omitempty"`

	// Refresh token state; only the SHA256 hash of the token is persisted.
	RefreshTokenHash   string     `json:"-"`
	RefreshTokenExpiry *time.Time `json:"-"`

	AuditFields
}
