package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/SscSPs/fin_tracker_app/internal/apperrors"
	"github.com/SscSPs/fin_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_tracker_app/internal/core/ports/repositories"
	"github.com/SscSPs/fin_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxTransferRepository applies the transfer write set. It is the only code
// path that mutates user balances.
type PgxTransferRepository struct {
	BaseRepository
}

func newPgxTransferRepository(pool *pgxpool.Pool) portsrepo.TransferRepositoryFacade {
	return &PgxTransferRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransferRepositoryFacade = (*PgxTransferRepository)(nil)

// lockUserBalances locks the given user rows FOR UPDATE and returns their
// current balances. IDs are locked in sorted order so two concurrent
// transfers touching the same pair of users acquire locks in the same order
// and cannot deadlock each other.
func lockUserBalances(ctx context.Context, tx pgx.Tx, userIDs []string) (map[string]decimal.Decimal, error) {
	sorted := make([]string, len(userIDs))
	copy(sorted, userIDs)
	sort.Strings(sorted)

	balances := make(map[string]decimal.Decimal, len(sorted))
	for _, userID := range sorted {
		var balance decimal.Decimal
		err := tx.QueryRow(ctx,
			`SELECT balance FROM users WHERE user_id = $1 AND deleted_at IS NULL FOR UPDATE;`,
			userID,
		).Scan(&balance)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
			}
			return nil, fmt.Errorf("failed to lock user row %s: %w", userID, err)
		}
		balances[userID] = balance
	}
	return balances, nil
}

// SaveTransfer inserts the paired expense and income rows and applies both
// balance deltas in one database transaction. The payer's balance is
// re-checked under the row lock; a concurrent transfer that drained the
// balance after the service-level check surfaces as ErrInsufficientFunds.
func (r *PgxTransferRepository) SaveTransfer(ctx context.Context, expense domain.Expense, income domain.Income, balanceChanges map[string]decimal.Decimal) (map[string]decimal.Decimal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	userIDs := make([]string, 0, len(balanceChanges))
	for userID := range balanceChanges {
		userIDs = append(userIDs, userID)
	}

	lockedBalances, err := lockUserBalances(ctx, tx, userIDs)
	if err != nil {
		return nil, err
	}

	// Re-check under lock: any debited balance must cover its delta.
	newBalances := make(map[string]decimal.Decimal, len(balanceChanges))
	for userID, delta := range balanceChanges {
		newBalance := lockedBalances[userID].Add(delta)
		if delta.IsNegative() && newBalance.IsNegative() {
			return nil, fmt.Errorf("user %s balance %s cannot cover %s: %w",
				userID, lockedBalances[userID], delta.Neg(), apperrors.ErrInsufficientFunds)
		}
		newBalances[userID] = newBalance
	}

	batch := &pgx.Batch{}
	batch.Queue(insertExpenseQuery, expenseInsertArgs(mapping.ToModelExpense(expense))...)
	batch.Queue(insertIncomeQuery, incomeInsertArgs(mapping.ToModelIncome(income))...)
	for userID, newBalance := range newBalances {
		batch.Queue(
			`UPDATE users SET balance = $1, last_updated_at = $2 WHERE user_id = $3;`,
			newBalance, expense.LastUpdatedAt, userID,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return nil, apperrors.NewAppError(500, "failed to apply transfer write set", err)
		}
	}
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to close transfer batch", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return newBalances, nil
}
