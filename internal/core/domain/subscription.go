package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubscriptionStatus indicates the state of a recurring subscription.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "ACTIVE"
	SubscriptionInactive  SubscriptionStatus = "INACTIVE"
	SubscriptionCancelled SubscriptionStatus = "CANCELLED"
)

// ParseSubscriptionStatus maps a raw status string to a valid status,
// falling back to ACTIVE when the value is not recognized.
func ParseSubscriptionStatus(s string) SubscriptionStatus {
	switch SubscriptionStatus(s) {
	case SubscriptionActive, SubscriptionInactive, SubscriptionCancelled:
		return SubscriptionStatus(s)
	default:
		return SubscriptionActive
	}
}

// Subscription tracks a recurring cost. It has no linkage to the balance
// ledger; status transitions are unrestricted between the three states.
type Subscription struct {
	SubscriptionID string             `json:"subscriptionID"` // Primary Key (UUID)
	UserID         string             `json:"userID"`         // Owner (Not Null)
	Name           string             `json:"name"`
	Category       string             `json:"category"`
	Description    string             `json:"description,omitempty"`
	Amount         decimal.Decimal    `json:"amount"`
	Status         SubscriptionStatus `json:"status"`
	StartDate      time.Time          `json:"startDate"`
	EndDate        *time.Time         `json:"endDate,omitempty"`
	AuditFields
}
