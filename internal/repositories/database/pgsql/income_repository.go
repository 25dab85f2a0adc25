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

const incomeColumns = `income_id, receiver_id, sender_id, title, category, description,
	amount, transfer_id, date, created_at, created_by, last_updated_at, last_updated_by`

const insertIncomeQuery = `
	INSERT INTO incomes (income_id, receiver_id, sender_id, title, category, description,
		amount, transfer_id, date, created_at, created_by, last_updated_at, last_updated_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
`

type PgxIncomeRepository struct {
	BaseRepository
}

func newPgxIncomeRepository(pool *pgxpool.Pool) portsrepo.IncomeRepositoryFacade {
	return &PgxIncomeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.IncomeRepositoryFacade = (*PgxIncomeRepository)(nil)

func scanIncome(row pgx.Row) (*models.Income, error) {
	var m models.Income
	err := row.Scan(
		&m.IncomeID,
		&m.ReceiverID,
		&m.SenderID,
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

func incomeInsertArgs(m models.Income) []any {
	return []any{
		m.IncomeID,
		m.ReceiverID,
		m.SenderID,
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

func (r *PgxIncomeRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	m := mapping.ToModelIncome(income)
	if _, err := r.Pool.Exec(ctx, insertIncomeQuery, incomeInsertArgs(m)...); err != nil {
		return fmt.Errorf("failed to save income: %w", err)
	}
	return nil
}

// SaveIncomesBatch inserts all rows inside one transaction using a pgx batch.
func (r *PgxIncomeRepository) SaveIncomesBatch(ctx context.Context, incomes []domain.Income) error {
	if len(incomes) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, income := range incomes {
		m := mapping.ToModelIncome(income)
		batch.Queue(insertIncomeQuery, incomeInsertArgs(m)...)
	}

	br := tx.SendBatch(ctx, batch)
	for range incomes {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to insert income batch row: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close income batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxIncomeRepository) FindIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error) {
	query := `
		SELECT ` + incomeColumns + `
		FROM incomes
		WHERE income_id = $1;
	`
	m, err := scanIncome(r.Pool.QueryRow(ctx, query, incomeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find income by ID %s: %w", incomeID, err)
	}

	domainIncome := mapping.ToDomainIncome(*m)
	return &domainIncome, nil
}

func (r *PgxIncomeRepository) ListIncomesByReceiver(ctx context.Context, receiverID string) ([]domain.Income, error) {
	query := `
		SELECT ` + incomeColumns + `
		FROM incomes
		WHERE receiver_id = $1
		ORDER BY date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, receiverID)
	if err != nil {
		return nil, fmt.Errorf("failed to query incomes: %w", err)
	}
	defer rows.Close()

	incomes := []domain.Income{}
	for rows.Next() {
		m, err := scanIncome(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan income row: %w", err)
		}
		incomes = append(incomes, mapping.ToDomainIncome(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating income rows: %w", rows.Err())
	}

	return incomes, nil
}

func (r *PgxIncomeRepository) UpdateIncome(ctx context.Context, income domain.Income) error {
	m := mapping.ToModelIncome(income)
	query := `
		UPDATE incomes
		SET title = $1, category = $2, description = $3, amount = $4, date = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE income_id = $8;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Title,
		m.Category,
		m.Description,
		m.Amount,
		m.Date,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.IncomeID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update income query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("income not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxIncomeRepository) DeleteIncome(ctx context.Context, incomeID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM incomes WHERE income_id = $1;`, incomeID)
	if err != nil {
		return fmt.Errorf("failed to delete income: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("income not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
