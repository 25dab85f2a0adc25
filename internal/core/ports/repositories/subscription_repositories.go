package repositories

import (
	"context"

	"github.com/SscSPs/fin_tracker_app/internal/core/domain"
)

// SubscriptionRepositoryFacade defines persistence operations for subscriptions.
type SubscriptionRepositoryFacade interface {
	SaveSubscription(ctx context.Context, subscription domain.Subscription) error
	FindSubscriptionByID(ctx context.Context, subscriptionID string) (*domain.Subscription, error)
	ListSubscriptionsByUser(ctx context.Context, userID string) ([]domain.Subscription, error)
	UpdateSubscription(ctx context.Context, subscription domain.Subscription) error
	DeleteSubscription(ctx context.Context, subscriptionID string) error
}
