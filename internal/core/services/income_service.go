package services

import (
	"context"
	"errors"
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

// incomeService mirrors expenseService on the receiving side of the ledger.
type incomeService struct {
	incomeRepo portsrepo.IncomeRepositoryFacade
}

// NewIncomeService creates a new IncomeService.
func NewIncomeService(incomeRepo portsrepo.IncomeRepositoryFacade) portssvc.IncomeSvcFacade {
	return &incomeService{incomeRepo: incomeRepo}
}

var _ portssvc.IncomeSvcFacade = (*incomeService)(nil)

// RecordIncome creates a plain income entry owned by ownerID.
func (s *incomeService) RecordIncome(ctx context.Context, ownerID string, req dto.RecordIncomeRequest) (*domain.Income, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if ownerID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	date := now
	if req.Date != nil {
		date = req.Date.UTC()
	}

	income := domain.Income{
		IncomeID:    uuid.NewString(),
		ReceiverID:  ownerID,
		SenderID:    req.SenderID,
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.incomeRepo.SaveIncome(ctx, income); err != nil {
		logger.Error("Failed to save income", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save income: %w", err)
	}

	logger.Info("Income recorded", slog.String("income_id", income.IncomeID))
	return &income, nil
}

// GetIncomeByID returns the income record if the caller owns it.
func (s *incomeService) GetIncomeByID(ctx context.Context, incomeID string, callerID string) (*domain.Income, error) {
	income, err := s.incomeRepo.FindIncomeByID(ctx, incomeID)
	if err != nil {
		return nil, err
	}
	if income.ReceiverID != callerID {
		return nil, apperrors.ErrNotFound
	}
	return income, nil
}

// UpdateIncome applies a partial update with the same field restrictions as
// UpdateExpense.
func (s *incomeService) UpdateIncome(ctx context.Context, incomeID string, callerID string, req dto.UpdateEntryRequest) (*domain.Income, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	income, err := s.incomeRepo.FindIncomeByID(ctx, incomeID)
	if err != nil {
		return nil, err
	}
	if income.ReceiverID != callerID {
		return nil, fmt.Errorf("%w: not allowed to update this income", apperrors.ErrForbidden)
	}

	if req.Title != nil {
		income.Title = *req.Title
	}
	if req.Category != nil {
		income.Category = *req.Category
	}
	if req.Description != nil {
		income.Description = *req.Description
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		income.Amount = *req.Amount
	}
	if req.Date != nil {
		income.Date = req.Date.UTC()
	}

	income.LastUpdatedAt = time.Now().UTC()
	income.LastUpdatedBy = callerID

	if err := s.incomeRepo.UpdateIncome(ctx, *income); err != nil {
		logger.Error("Failed to update income", slog.String("error", err.Error()), slog.String("income_id", incomeID))
		return nil, fmt.Errorf("failed to update income: %w", err)
	}

	return income, nil
}

// DeleteIncome hard-deletes the row after the ownership check. As with
// expenses, deleting a transfer-derived income does not reverse the balance
// adjustment of the original transfer.
func (s *incomeService) DeleteIncome(ctx context.Context, incomeID string, callerID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	income, err := s.incomeRepo.FindIncomeByID(ctx, incomeID)
	if err != nil {
		return err
	}
	if income.ReceiverID != callerID {
		return fmt.Errorf("%w: not allowed to delete this income", apperrors.ErrForbidden)
	}

	if err := s.incomeRepo.DeleteIncome(ctx, incomeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		logger.Error("Failed to delete income", slog.String("error", err.Error()), slog.String("income_id", incomeID))
		return fmt.Errorf("failed to delete income: %w", err)
	}

	logger.Info("Income deleted", slog.String("income_id", incomeID))
	return nil
}
