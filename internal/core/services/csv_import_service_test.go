package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/fin_tracker_app/internal/apperrors"
	"github.com/SscSPs/fin_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/fin_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/fin_tracker_app/internal/core/services"
)

type CSVImportServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo *MockExpenseRepository
	mockIncomeRepo  *MockIncomeRepository
	importService   portssvc.CSVImportSvcFacade
	ctx             context.Context
	ownerID         string
}

func (suite *CSVImportServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockIncomeRepo = new(MockIncomeRepository)
	suite.importService = services.NewCSVImportService(suite.mockExpenseRepo, suite.mockIncomeRepo, nil)
	suite.ctx = context.Background()
	suite.ownerID = uuid.NewString()
}

func (suite *CSVImportServiceTestSuite) TestImportBatch_PartialAcceptance() {
	// Rows 3 and 6 are invalid: non-numeric amount and unparseable date.
	csvData := strings.Join([]string{
		"title,category,amount,date",
		"Groceries,Food,12.50,2026-01-05",
		"Taxi,Travel,8,2026-01-06",
		"Broken,,abc,2026-01-07",
		"Coffee,Food,3.20,",
		"Rent,Housing,900,2026-01-01",
		"Late,,5,not-a-date",
		"Snacks,Food,2,2026-01-08",
	}, "\n")

	var saved []domain.Expense
	suite.mockExpenseRepo.SaveExpensesBatchFn = func(ctx context.Context, expenses []domain.Expense) error {
		saved = expenses
		return nil
	}

	report, err := suite.importService.ImportBatch(suite.ctx, suite.ownerID, strings.NewReader(csvData), domain.ImportExpenses)

	suite.NoError(err)
	suite.Equal(7, report.TotalRows)
	suite.Equal(5, report.SuccessfulRows)
	suite.Equal(2, report.FailedRows)
	suite.Len(report.Failures, 2)
	suite.Equal("abc", report.Failures[0].Amount)
	suite.Equal("not-a-date", report.Failures[1].Date)

	suite.Len(saved, 5)
	for _, expense := range saved {
		suite.Equal(suite.ownerID, expense.SenderID)
		suite.NotEmpty(expense.ExpenseID)
		suite.True(expense.Amount.IsPositive())
	}
}

func (suite *CSVImportServiceTestSuite) TestImportBatch_AppliesDefaults() {
	csvData := "title,category,amount\n,,42\n"

	var saved []domain.Expense
	suite.mockExpenseRepo.SaveExpensesBatchFn = func(ctx context.Context, expenses []domain.Expense) error {
		saved = expenses
		return nil
	}

	report, err := suite.importService.ImportBatch(suite.ctx, suite.ownerID, strings.NewReader(csvData), domain.ImportExpenses)

	suite.NoError(err)
	suite.Equal(1, report.SuccessfulRows)
	suite.Len(saved, 1)
	suite.Equal("Miscellaneous", saved[0].Title)
	suite.Equal("Others", saved[0].Category)
	suite.False(saved[0].Date.IsZero())
}

func (suite *CSVImportServiceTestSuite) TestImportBatch_IncomesRouteToIncomeRepo() {
	csvData := "title,amount,date\nSalary,1000,2026-02-01\n"

	var saved []domain.Income
	suite.mockIncomeRepo.SaveIncomesBatchFn = func(ctx context.Context, incomes []domain.Income) error {
		saved = incomes
		return nil
	}

	report, err := suite.importService.ImportBatch(suite.ctx, suite.ownerID, strings.NewReader(csvData), domain.ImportIncomes)

	suite.NoError(err)
	suite.Equal(1, report.SuccessfulRows)
	suite.Len(saved, 1)
	suite.Equal(suite.ownerID, saved[0].ReceiverID)
	suite.Equal("Salary", saved[0].Title)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpensesBatch", mock.Anything, mock.Anything)
}

func (suite *CSVImportServiceTestSuite) TestImportBatch_NonPositiveAmountsFailPerRow() {
	// Zero and negative amounts could never be inserted anyway; they are
	// rejected up front so the rest of the file still lands.
	csvData := strings.Join([]string{
		"title,amount",
		"Refund,-5",
		"Freebie,0",
		"Lunch,12",
	}, "\n")

	var saved []domain.Expense
	suite.mockExpenseRepo.SaveExpensesBatchFn = func(ctx context.Context, expenses []domain.Expense) error {
		saved = expenses
		return nil
	}

	report, err := suite.importService.ImportBatch(suite.ctx, suite.ownerID, strings.NewReader(csvData), domain.ImportExpenses)

	suite.NoError(err)
	suite.Equal(3, report.TotalRows)
	suite.Equal(1, report.SuccessfulRows)
	suite.Equal(2, report.FailedRows)
	suite.Equal("-5", report.Failures[0].Amount)
	suite.Equal("0", report.Failures[1].Amount)
	suite.Len(saved, 1)
	suite.Equal("Lunch", saved[0].Title)
}

func (suite *CSVImportServiceTestSuite) TestImportBatch_StorageFailureFailsWholeBatch() {
	csvData := "title,amount\nLunch,12\nCoffee,3\n"

	suite.mockExpenseRepo.SaveExpensesBatchFn = func(ctx context.Context, expenses []domain.Expense) error {
		return errors.New("connection reset")
	}

	report, err := suite.importService.ImportBatch(suite.ctx, suite.ownerID, strings.NewReader(csvData), domain.ImportExpenses)

	// The batch insert is all-or-nothing; a storage failure surfaces as an
	// error, never as a partial-success report.
	suite.Error(err)
	suite.Nil(report)
}

func (suite *CSVImportServiceTestSuite) TestImportBatch_ZeroValidRowsIsNotAnError() {
	csvData := "title,amount\nBroken,abc\n"

	report, err := suite.importService.ImportBatch(suite.ctx, suite.ownerID, strings.NewReader(csvData), domain.ImportExpenses)

	suite.NoError(err)
	suite.Equal(1, report.TotalRows)
	suite.Equal(0, report.SuccessfulRows)
	suite.Equal(1, report.FailedRows)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpensesBatch", mock.Anything, mock.Anything)
}

func (suite *CSVImportServiceTestSuite) TestImportBatch_EmptyStreamRejected() {
	report, err := suite.importService.ImportBatch(suite.ctx, suite.ownerID, strings.NewReader(""), domain.ImportExpenses)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(report)
}

func (suite *CSVImportServiceTestSuite) TestImportBatch_UnknownKindRejected() {
	report, err := suite.importService.ImportBatch(suite.ctx, suite.ownerID, strings.NewReader("title,amount\nA,1\n"), domain.ImportKind("TRANSFER"))

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(report)
}

func (suite *CSVImportServiceTestSuite) TestImportBatch_EmptyOwnerUnauthorized() {
	report, err := suite.importService.ImportBatch(suite.ctx, "", strings.NewReader("title,amount\nA,1\n"), domain.ImportExpenses)

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(report)
}

func TestCSVImportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CSVImportServiceTestSuite))
}
