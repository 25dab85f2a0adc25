package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserRole distinguishes regular users from administrators.
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// User represents a user of the application in the domain.
// Balance is the single running account balance; it is only mutated by the
// ledger transfer path, never by plain expense/income records.
type User struct {
	UserID       string          `json:"userID"` // Primary Key (UUID)
	Email        string          `json:"email"`
	Name         string          `json:"name"`
	PasswordHash string          `json:"-"`
	Balance      decimal.Decimal `json:"balance"`
	Role         UserRole        `json:"role"`
	Verified     bool            `json:"verified"`

	// Refresh token state (hash only, never the raw token)
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	// External auth provider linkage (e.g. "google")
	AuthProvider   string `json:"-"`
	ProviderUserID string `json:"-"`

	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// GoogleUserInfo holds the subset of the Google userinfo payload we consume.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
