package services

import (
	"context"
	"io"

	"github.com/SscSPs/fin_tracker_app/internal/core/domain"
	"github.com/SscSPs/fin_tracker_app/internal/dto"
)

// LedgerSvcFacade is the balance-affecting transfer path. Transfer creates
// the paired expense/income rows and moves balance between the two users
// atomically; there is no other way to mutate a balance.
type LedgerSvcFacade interface {
	Transfer(ctx context.Context, payerID string, req dto.TransferRequest) (*domain.TransferResult, error)
	ListTransactions(ctx context.Context, userID string) (*dto.TransactionsResponse, error)
}

// ExpenseSvcFacade is the single-sided expense record path: ownership-gated
// CRUD with no balance side effects.
type ExpenseSvcFacade interface {
	RecordExpense(ctx context.Context, ownerID string, req dto.RecordExpenseRequest) (*domain.Expense, error)
	GetExpenseByID(ctx context.Context, expenseID string, callerID string) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, expenseID string, callerID string, req dto.UpdateEntryRequest) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string, callerID string) error
}

// IncomeSvcFacade mirrors ExpenseSvcFacade for income records.
type IncomeSvcFacade interface {
	RecordIncome(ctx context.Context, ownerID string, req dto.RecordIncomeRequest) (*domain.Income, error)
	GetIncomeByID(ctx context.Context, incomeID string, callerID string) (*domain.Income, error)
	UpdateIncome(ctx context.Context, incomeID string, callerID string, req dto.UpdateEntryRequest) (*domain.Income, error)
	DeleteIncome(ctx context.Context, incomeID string, callerID string) error
}

// CSVImportSvcFacade ingests a tabular file of ledger entries for one user.
// Imported rows are plain entries; they never trigger the transfer path.
type CSVImportSvcFacade interface {
	ImportBatch(ctx context.Context, ownerID string, file io.Reader, kind domain.ImportKind) (*domain.ImportReport, error)
}
