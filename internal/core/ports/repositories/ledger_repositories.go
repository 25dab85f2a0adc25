package repositories

import (
	"context"

	"github.com/SscSPs/fin_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransferRepositoryFacade persists a paired transfer atomically.
//
// SaveTransfer must apply all four writes — the expense row, the income row
// and both balance deltas in balanceChanges (keyed by user ID) — inside a
// single database transaction. Both affected user rows are locked for the
// duration and the payer's balance is re-checked under the lock, so two
// concurrent transfers from the same payer cannot both pass the funds check.
// It returns the post-commit balances keyed by user ID.
type TransferRepositoryFacade interface {
	SaveTransfer(ctx context.Context, expense domain.Expense, income domain.Income, balanceChanges map[string]decimal.Decimal) (map[string]decimal.Decimal, error)
}
