package dto

import (
	"time"

	"github.com/SscSPs/fin_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSubscriptionRequest defines the payload for creating a subscription.
// Status defaults to ACTIVE, StartDate to the current time.
type CreateSubscriptionRequest struct {
	Name        string          `json:"name" binding:"required"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Status      string          `json:"status,omitempty"`
	StartDate   *time.Time      `json:"startDate,omitempty"`
	EndDate     *time.Time      `json:"endDate,omitempty"`
}

// UpdateSubscriptionRequest defines the partially updatable subscription fields.
type UpdateSubscriptionRequest struct {
	Name        *string          `json:"name,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	StartDate   *time.Time       `json:"startDate,omitempty"`
	EndDate     *time.Time       `json:"endDate,omitempty"`
}

// ToggleSubscriptionRequest carries the requested status for the toggle
// operation. Unrecognized values fall back to ACTIVE.
type ToggleSubscriptionRequest struct {
	Status string `json:"status" binding:"required"`
}

// SubscriptionResponse defines the subscription data returned to clients.
type SubscriptionResponse struct {
	SubscriptionID string          `json:"subscriptionID"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Description    string          `json:"description,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Status         string          `json:"status"`
	StartDate      time.Time       `json:"startDate"`
	EndDate        *time.Time      `json:"endDate,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToSubscriptionResponse converts a domain.Subscription to its response DTO.
func ToSubscriptionResponse(s *domain.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		SubscriptionID: s.SubscriptionID,
		Name:           s.Name,
		Category:       s.Category,
		Description:    s.Description,
		Amount:         s.Amount,
		Status:         string(s.Status),
		StartDate:      s.StartDate,
		EndDate:        s.EndDate,
		CreatedAt:      s.CreatedAt,
	}
}

// ToSubscriptionResponses converts a slice of subscriptions.
func ToSubscriptionResponses(subs []domain.Subscription) []SubscriptionResponse {
	responses := make([]SubscriptionResponse, len(subs))
	for i := range subs {
		responses[i] = ToSubscriptionResponse(&subs[i])
	}
	return responses
}
