package services

import (
	"context"

	"github.com/SscSPs/fin_tracker_app/internal/core/domain"
	"github.com/SscSPs/fin_tracker_app/internal/dto"
)

// SubscriptionSvcFacade defines the subscription lifecycle operations. Every
// mutating call is ownership-gated on the caller's user ID.
type SubscriptionSvcFacade interface {
	CreateSubscription(ctx context.Context, userID string, req dto.CreateSubscriptionRequest) (*domain.Subscription, error)
	GetSubscriptionByID(ctx context.Context, subscriptionID string, callerID string) (*domain.Subscription, error)
	ListSubscriptions(ctx context.Context, userID string) ([]domain.Subscription, error)
	UpdateSubscription(ctx context.Context, subscriptionID string, callerID string, req dto.UpdateSubscriptionRequest) (*domain.Subscription, error)
	DeleteSubscription(ctx context.Context, subscriptionID string, callerID string) error
	// ToggleSubscription sets the status, falling back to ACTIVE when the
	// requested value is not a valid status.
	ToggleSubscription(ctx context.Context, subscriptionID string, callerID string, requestedStatus string) (*domain.Subscription, error)
}
