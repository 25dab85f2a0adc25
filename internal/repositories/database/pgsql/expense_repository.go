package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/fin_tracker_app/internal/apperrors"
	"github.com/SscSPs/fin_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_tracker_app/internal/core/ports/repositories"
	"github.com/SscSPs/fin_tracker_app/internal/models"
	"github.com/SscSPs/fin_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const expenseColumns = `expense_id, sender_id, receiver_id, title, category, description,
	amount, transfer_id, date, created_at, created_by, last_updated_at, last_updated_by`

const insertExpenseQuery = `
	INSERT INTO expenses (expense_id, sender_id, receiver_id, title, category, description,
		amount, transfer_id, date, created_at, created_by, last_updated_at, last_updated_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
`

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func scanExpense(row pgx.Row) (*models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.SenderID,
		&m.ReceiverID,
		&m.Title,
		&m.Category,
		&m.Description,
		&m.Amount,
		&m.TransferID,
		&m.Date,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func expenseInsertArgs(m models.Expense) []any {
	return []any{
		m.ExpenseID,
		m.SenderID,
		m.ReceiverID,
		m.Title,
		m.Category,
		m.Description,
		m.Amount,
		m.TransferID,
		m.Date,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	if _, err := r.Pool.Exec(ctx, insertExpenseQuery, expenseInsertArgs(m)...); err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}
	return nil
}

// SaveExpensesBatch inserts all rows inside one transaction using a pgx batch.
func (r *PgxExpenseRepository) SaveExpensesBatch(ctx context.Context, expenses []domain.Expense) error {
	if len(expenses) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, expense := range expenses {
		m := mapping.ToModelExpense(expense)
		batch.Queue(insertExpenseQuery, expenseInsertArgs(m)...)
	}

	br := tx.SendBatch(ctx, batch)
	for range expenses {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to insert expense batch row: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close expense batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE expense_id = $1;
	`
	m, err := scanExpense(r.Pool.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", expenseID, err)
	}

	domainExpense := mapping.ToDomainExpense(*m)
	return &domainExpense, nil
}

func (r *PgxExpenseRepository) ListExpensesBySender(ctx context.Context, senderID string) ([]domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE sender_id = $1
		ORDER BY date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, senderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, mapping.ToDomainExpense(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", rows.Err())
	}

	return expenses, nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		UPDATE expenses
		SET title = $1, category = $2, description = $3, amount = $4, date = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE expense_id = $8;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Title,
		m.Category,
		m.Description,
		m.Amount,
		m.Date,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ExpenseID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update expense query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
