package repositories

import (
	"context"

	"github.com/SscSPs/fin_tracker_app/internal/core/domain"
)

// IncomeRepositoryFacade defines persistence operations for income records.
type IncomeRepositoryFacade interface {
	SaveIncome(ctx context.Context, income domain.Income) error
	// SaveIncomesBatch inserts all rows in one database transaction.
	SaveIncomesBatch(ctx context.Context, incomes []domain.Income) error
	FindIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error)
	ListIncomesByReceiver(ctx context.Context, receiverID string) ([]domain.Income, error)
	UpdateIncome(ctx context.Context, income domain.Income) error
	DeleteIncome(ctx context.Context, incomeID string) error
}
