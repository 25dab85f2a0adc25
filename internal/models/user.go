package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// User represents a user row in the users table.
type User struct {
	UserID       string          `json:"userID"`
	Email        string          `json:"email" db:"email"`
	Name         string          `json:"name"`
	PasswordHash string          `json:"-" db:"password_hash"`
	Balance      decimal.Decimal `json:"balance" db:"balance"`
	Role         string          `json:"role" db:"role"`
	Verified     bool            `json:"verified" db:"verified"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`

	// Refresh Token Fields
	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`        // Store hash of the refresh token
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"` // Expiry of the stored refresh token

	// External auth provider fields
	AuthProvider   sql.NullString `db:"auth_provider"`
	ProviderUserID sql.NullString `db:"provider_user_id"`
}
