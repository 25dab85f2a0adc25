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

// expenseService is the single-sided expense record path. It never touches
// balances; that is the ledger service's job.
type expenseService struct {
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: expenseRepo}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// RecordExpense creates a plain expense entry owned by ownerID.
func (s *expenseService) RecordExpense(ctx context.Context, ownerID string, req dto.RecordExpenseRequest) (*domain.Expense, error) {
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

	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		SenderID:    ownerID,
		ReceiverID:  req.ReceiverID,
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

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		logger.Error("Failed to save expense", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	logger.Info("Expense recorded", slog.String("expense_id", expense.ExpenseID))
	return &expense, nil
}

// GetExpenseByID returns the expense if the caller owns it. Non-owners get
// ErrNotFound to obscure the record's existence.
func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string, callerID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.SenderID != callerID {
		return nil, apperrors.ErrNotFound
	}
	return expense, nil
}

// UpdateExpense applies a partial update. Only title, category, description,
// amount and date are mutable; sender and receiver references are fixed at
// creation.
func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, callerID string, req dto.UpdateEntryRequest) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.SenderID != callerID {
		return nil, fmt.Errorf("%w: not allowed to update this expense", apperrors.ErrForbidden)
	}

	if req.Title != nil {
		expense.Title = *req.Title
	}
	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		expense.Amount = *req.Amount
	}
	if req.Date != nil {
		expense.Date = req.Date.UTC()
	}

	expense.LastUpdatedAt = time.Now().UTC()
	expense.LastUpdatedBy = callerID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		logger.Error("Failed to update expense", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return expense, nil
}

// DeleteExpense hard-deletes the row after the ownership check. Deleting a
// transfer-derived expense does NOT reverse the balance adjustment of the
// original transfer; the paired income row and both balances are untouched.
// Known limitation, kept for compatibility with existing data.
func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string, callerID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return err
	}
	if expense.SenderID != callerID {
		return fmt.Errorf("%w: not allowed to delete this expense", apperrors.ErrForbidden)
	}

	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		logger.Error("Failed to delete expense", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	logger.Info("Expense deleted", slog.String("expense_id", expenseID))
	return nil
}
