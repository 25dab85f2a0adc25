package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/fin_tracker_app/internal/apperrors"
	"github.com/SscSPs/fin_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fin_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/fin_tracker_app/internal/events"
	"github.com/SscSPs/fin_tracker_app/internal/middleware"
	"github.com/SscSPs/fin_tracker_app/internal/utils/csvutil"
)

// Column defaults applied to valid rows missing optional fields.
const (
	defaultImportTitle    = "Miscellaneous"
	defaultImportCategory = "Others"
)

// csvImportService ingests CSV batches of expense or income rows. Valid and
// invalid rows are split up front; valid rows are persisted in one batch
// insert, invalid rows come back verbatim in the report.
type csvImportService struct {
	expenseRepo portsrepo.ExpenseRepositoryFacade
	incomeRepo  portsrepo.IncomeRepositoryFacade
	publisher   *events.Publisher
}

// NewCSVImportService creates a new CSVImportService.
func NewCSVImportService(
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	incomeRepo portsrepo.IncomeRepositoryFacade,
	publisher *events.Publisher,
) portssvc.CSVImportSvcFacade {
	return &csvImportService{
		expenseRepo: expenseRepo,
		incomeRepo:  incomeRepo,
		publisher:   publisher,
	}
}

var _ portssvc.CSVImportSvcFacade = (*csvImportService)(nil)

// ImportBatch parses the file, validates every row, persists the valid rows
// and reports per-row outcomes. A file with zero valid rows is not an error;
// it yields a report with SuccessfulRows of 0. Only a stream that cannot be
// parsed as CSV at all is rejected outright.
func (s *csvImportService) ImportBatch(ctx context.Context, ownerID string, file io.Reader, kind domain.ImportKind) (*domain.ImportReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if ownerID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if kind != domain.ImportExpenses && kind != domain.ImportIncomes {
		return nil, fmt.Errorf("%w: unknown import kind %q", apperrors.ErrValidation, kind)
	}

	rows, err := csvutil.ParseRows(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	report := &domain.ImportReport{TotalRows: len(rows)}
	var valid []domain.ImportRow
	for _, row := range rows {
		if csvutil.ValidateRow(row) {
			valid = append(valid, row)
		} else {
			report.Failures = append(report.Failures, row)
		}
	}
	report.FailedRows = len(report.Failures)

	if len(valid) > 0 {
		switch kind {
		case domain.ImportExpenses:
			err = s.expenseRepo.SaveExpensesBatch(ctx, buildExpenses(ownerID, valid))
		case domain.ImportIncomes:
			err = s.incomeRepo.SaveIncomesBatch(ctx, buildIncomes(ownerID, valid))
		}
		if err != nil {
			logger.Error("Failed to persist import batch",
				slog.String("error", err.Error()),
				slog.String("kind", string(kind)))
			return nil, fmt.Errorf("failed to persist import batch: %w", err)
		}
		report.SuccessfulRows = len(valid)
	}

	logger.Info("CSV import completed",
		slog.String("kind", string(kind)),
		slog.Int("total", report.TotalRows),
		slog.Int("successful", report.SuccessfulRows),
		slog.Int("failed", report.FailedRows))

	s.publisher.PublishImportCompleted(context.WithoutCancel(ctx), &events.ImportCompletedMessage{
		OwnerID:        ownerID,
		Kind:           string(kind),
		SuccessfulRows: report.SuccessfulRows,
		FailedRows:     report.FailedRows,
		Timestamp:      time.Now().UTC(),
	})

	return report, nil
}

// rowFields resolves a validated row to its final values, applying the
// defaults for missing title, category and date. ValidateRow has already
// guaranteed amount and date parse.
func rowFields(row domain.ImportRow) (title, category string, amount decimal.Decimal, date time.Time) {
	title = row.Title
	if title == "" {
		title = defaultImportTitle
	}
	category = row.Category
	if category == "" {
		category = defaultImportCategory
	}
	amount, _ = decimal.NewFromString(row.Amount)
	date = time.Now().UTC()
	if row.Date != "" {
		date, _ = csvutil.ParseDate(row.Date)
	}
	return title, category, amount, date
}

func buildExpenses(ownerID string, rows []domain.ImportRow) []domain.Expense {
	now := time.Now().UTC()
	expenses := make([]domain.Expense, 0, len(rows))
	for _, row := range rows {
		title, category, amount, date := rowFields(row)
		expenses = append(expenses, domain.Expense{
			ExpenseID:   uuid.NewString(),
			SenderID:    ownerID,
			ReceiverID:  row.CounterpartyID,
			Title:       title,
			Category:    category,
			Description: row.Description,
			Amount:      amount,
			Date:        date,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     ownerID,
				LastUpdatedAt: now,
				LastUpdatedBy: ownerID,
			},
		})
	}
	return expenses
}

func buildIncomes(ownerID string, rows []domain.ImportRow) []domain.Income {
	now := time.Now().UTC()
	incomes := make([]domain.Income, 0, len(rows))
	for _, row := range rows {
		title, category, amount, date := rowFields(row)
		incomes = append(incomes, domain.Income{
			IncomeID:    uuid.NewString(),
			ReceiverID:  ownerID,
			SenderID:    row.CounterpartyID,
			Title:       title,
			Category:    category,
			Description: row.Description,
			Amount:      amount,
			Date:        date,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     ownerID,
				LastUpdatedAt: now,
				LastUpdatedBy: ownerID,
			},
		})
	}
	return incomes
}
