package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/fin_tracker_app/internal/apperrors"
	"github.com/SscSPs/fin_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fin_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/fin_tracker_app/internal/dto"
	"github.com/SscSPs/fin_tracker_app/internal/middleware"
)

type subscriptionService struct {
	subscriptionRepo portsrepo.SubscriptionRepositoryFacade
}

// NewSubscriptionService creates a new SubscriptionService.
func NewSubscriptionService(subscriptionRepo portsrepo.SubscriptionRepositoryFacade) portssvc.SubscriptionSvcFacade {
	return &subscriptionService{subscriptionRepo: subscriptionRepo}
}

var _ portssvc.SubscriptionSvcFacade = (*subscriptionService)(nil)

// CreateSubscription creates a subscription for userID. Status falls back to
// ACTIVE for unrecognized values, StartDate defaults to now.
func (s *subscriptionService) CreateSubscription(ctx context.Context, userID string, req dto.CreateSubscriptionRequest) (*domain.Subscription, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if userID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	startDate := now
	if req.StartDate != nil {
		startDate = req.StartDate.UTC()
	}
	if req.EndDate != nil && req.EndDate.Before(startDate) {
		return nil, fmt.Errorf("%w: end date must not precede start date", apperrors.ErrValidation)
	}

	subscription := domain.Subscription{
		SubscriptionID: uuid.NewString(),
		UserID:         userID,
		Name:           req.Name,
		Category:       req.Category,
		Description:    req.Description,
		Amount:         req.Amount,
		Status:         domain.ParseSubscriptionStatus(req.Status),
		StartDate:      startDate,
		EndDate:        req.EndDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.subscriptionRepo.SaveSubscription(ctx, subscription); err != nil {
		logger.Error("Failed to save subscription", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save subscription: %w", err)
	}

	logger.Info("Subscription created", slog.String("subscription_id", subscription.SubscriptionID))
	return &subscription, nil
}

// GetSubscriptionByID returns the subscription if the caller owns it.
// Non-owners get a not-found to avoid leaking existence.
func (s *subscriptionService) GetSubscriptionByID(ctx context.Context, subscriptionID string, callerID string) (*domain.Subscription, error) {
	subscription, err := s.subscriptionRepo.FindSubscriptionByID(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}
	if subscription.UserID != callerID {
		return nil, apperrors.ErrNotFound
	}
	return subscription, nil
}

// ListSubscriptions returns all subscriptions owned by userID.
func (s *subscriptionService) ListSubscriptions(ctx context.Context, userID string) ([]domain.Subscription, error) {
	return s.subscriptionRepo.ListSubscriptionsByUser(ctx, userID)
}

// UpdateSubscription applies a partial update. Status is not updatable here;
// use ToggleSubscription for status transitions.
func (s *subscriptionService) UpdateSubscription(ctx context.Context, subscriptionID string, callerID string, req dto.UpdateSubscriptionRequest) (*domain.Subscription, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	subscription, err := s.subscriptionRepo.FindSubscriptionByID(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}
	if subscription.UserID != callerID {
		return nil, fmt.Errorf("%w: not allowed to update this subscription", apperrors.ErrForbidden)
	}

	if req.Name != nil {
		subscription.Name = *req.Name
	}
	if req.Category != nil {
		subscription.Category = *req.Category
	}
	if req.Description != nil {
		subscription.Description = *req.Description
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		subscription.Amount = *req.Amount
	}
	if req.StartDate != nil {
		subscription.StartDate = req.StartDate.UTC()
	}
	if req.EndDate != nil {
		subscription.EndDate = req.EndDate
	}
	if subscription.EndDate != nil && subscription.EndDate.Before(subscription.StartDate) {
		return nil, fmt.Errorf("%w: end date must not precede start date", apperrors.ErrValidation)
	}

	subscription.LastUpdatedAt = time.Now().UTC()
	subscription.LastUpdatedBy = callerID

	if err := s.subscriptionRepo.UpdateSubscription(ctx, *subscription); err != nil {
		logger.Error("Failed to update subscription", slog.String("error", err.Error()), slog.String("subscription_id", subscriptionID))
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	return subscription, nil
}

// DeleteSubscription removes the subscription after the ownership check.
func (s *subscriptionService) DeleteSubscription(ctx context.Context, subscriptionID string, callerID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	subscription, err := s.subscriptionRepo.FindSubscriptionByID(ctx, subscriptionID)
	if err != nil {
		return err
	}
	if subscription.UserID != callerID {
		return fmt.Errorf("%w: not allowed to delete this subscription", apperrors.ErrForbidden)
	}

	if err := s.subscriptionRepo.DeleteSubscription(ctx, subscriptionID); err != nil {
		logger.Error("Failed to delete subscription", slog.String("error", err.Error()), slog.String("subscription_id", subscriptionID))
		return fmt.Errorf("failed to delete subscription: %w", err)
	}

	logger.Info("Subscription deleted", slog.String("subscription_id", subscriptionID))
	return nil
}

// ToggleSubscription sets the status to the requested value. Any value
// outside ACTIVE, INACTIVE and CANCELLED resolves to ACTIVE, so a toggle with
// garbage input reactivates rather than erroring.
func (s *subscriptionService) ToggleSubscription(ctx context.Context, subscriptionID string, callerID string, requestedStatus string) (*domain.Subscription, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	subscription, err := s.subscriptionRepo.FindSubscriptionByID(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}
	if subscription.UserID != callerID {
		return nil, fmt.Errorf("%w: not allowed to toggle this subscription", apperrors.ErrForbidden)
	}

	newStatus := domain.ParseSubscriptionStatus(requestedStatus)
	subscription.Status = newStatus
	subscription.LastUpdatedAt = time.Now().UTC()
	subscription.LastUpdatedBy = callerID

	if err := s.subscriptionRepo.UpdateSubscription(ctx, *subscription); err != nil {
		logger.Error("Failed to toggle subscription", slog.String("error", err.Error()), slog.String("subscription_id", subscriptionID))
		return nil, fmt.Errorf("failed to toggle subscription: %w", err)
	}

	logger.Info("Subscription status changed",
		slog.String("subscription_id", subscriptionID),
		slog.String("status", string(newStatus)))
	return subscription, nil
}
