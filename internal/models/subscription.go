package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// SubscriptionStatus mirrors the subscription_status enum in the database.
type SubscriptionStatus string

// Subscription represents a row in the subscriptions table.
type Subscription struct {
	SubscriptionID string             `json:"subscriptionID" db:"subscription_id"`
	UserID         string             `json:"userID" db:"user_id"`
	Name           string             `json:"name" db:"name"`
	Category       string             `json:"category" db:"category"`
	Description    sql.NullString     `json:"description" db:"description"`
	Amount         decimal.Decimal    `json:"amount" db:"amount"`
	Status         SubscriptionStatus `json:"status" db:"status"`
	StartDate      time.Time          `json:"startDate" db:"start_date"`
	EndDate        sql.NullTime       `json:"endDate" db:"end_date"`
	AuditFields
}
