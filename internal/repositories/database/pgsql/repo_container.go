package pgsql

import (
	portsrepo "github.com/SscSPs/fin_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository against the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		ExpenseRepo:      newPgxExpenseRepository(dbPool),
		IncomeRepo:       newPgxIncomeRepository(dbPool),
		TransferRepo:     newPgxTransferRepository(dbPool),
		SubscriptionRepo: newPgxSubscriptionRepository(dbPool),
	}
}
