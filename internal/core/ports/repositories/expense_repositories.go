package repositories

import (
	"context"

	"github.com/SscSPs/fin_tracker_app/internal/core/domain"
)

// ExpenseRepositoryFacade defines persistence operations for expense records.
type ExpenseRepositoryFacade interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	// SaveExpensesBatch inserts all rows in one database transaction: either
	// every row is committed or none are.
	SaveExpensesBatch(ctx context.Context, expenses []domain.Expense) error
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListExpensesBySender(ctx context.Context, senderID string) ([]domain.Expense, error)
	UpdateExpense(ctx context.Context, expense domain.Expense) error
	DeleteExpense(ctx context.Context, expenseID string) error
}
