package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/fin_tracker_app/internal/apperrors"
	"github.com/SscSPs/fin_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/fin_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/fin_tracker_app/internal/core/services"
	"github.com/SscSPs/fin_tracker_app/internal/dto"
)

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo *MockExpenseRepository
	expenseService  portssvc.ExpenseSvcFacade
	ctx             context.Context
	ownerID         string
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.expenseService = services.NewExpenseService(suite.mockExpenseRepo)
	suite.ctx = context.Background()
	suite.ownerID = uuid.NewString()
}

func (suite *ExpenseServiceTestSuite) storedExpense() *domain.Expense {
	return &domain.Expense{
		ExpenseID: uuid.NewString(),
		SenderID:  suite.ownerID,
		Title:     "Groceries",
		Category:  "Food",
		Amount:    decimal.NewFromInt(25),
		Date:      time.Now().UTC(),
	}
}

func (suite *ExpenseServiceTestSuite) TestRecordExpense_Success() {
	req := dto.RecordExpenseRequest{
		Title:  "Groceries",
		Amount: decimal.NewFromInt(25),
	}

	var saved domain.Expense
	suite.mockExpenseRepo.SaveExpenseFn = func(ctx context.Context, expense domain.Expense) error {
		saved = expense
		return nil
	}

	expense, err := suite.expenseService.RecordExpense(suite.ctx, suite.ownerID, req)

	suite.NoError(err)
	suite.NotEmpty(expense.ExpenseID)
	suite.Equal(suite.ownerID, expense.SenderID)
	suite.Empty(expense.TransferID)
	suite.False(expense.Date.IsZero())
	suite.Equal(expense.ExpenseID, saved.ExpenseID)
}

func (suite *ExpenseServiceTestSuite) TestRecordExpense_NonPositiveAmount() {
	req := dto.RecordExpenseRequest{Title: "Groceries", Amount: decimal.NewFromInt(-1)}

	expense, err := suite.expenseService.RecordExpense(suite.ctx, suite.ownerID, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(expense)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestGetExpenseByID_NonOwnerGetsNotFound() {
	stored := suite.storedExpense()
	suite.mockExpenseRepo.On("FindExpenseByID", suite.ctx, stored.ExpenseID).Return(stored, nil).Once()

	expense, err := suite.expenseService.GetExpenseByID(suite.ctx, stored.ExpenseID, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(expense)
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_PartialUpdate() {
	stored := suite.storedExpense()
	newTitle := "Weekly groceries"
	newAmount := decimal.NewFromInt(30)

	suite.mockExpenseRepo.On("FindExpenseByID", suite.ctx, stored.ExpenseID).Return(stored, nil).Once()
	var updated domain.Expense
	suite.mockExpenseRepo.UpdateExpenseFn = func(ctx context.Context, expense domain.Expense) error {
		updated = expense
		return nil
	}

	expense, err := suite.expenseService.UpdateExpense(suite.ctx, stored.ExpenseID, suite.ownerID, dto.UpdateEntryRequest{
		Title:  &newTitle,
		Amount: &newAmount,
	})

	suite.NoError(err)
	suite.Equal(newTitle, expense.Title)
	suite.True(expense.Amount.Equal(newAmount))
	// Untouched fields keep their stored values.
	suite.Equal("Food", expense.Category)
	suite.Equal(newTitle, updated.Title)
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_NonOwnerForbidden() {
	stored := suite.storedExpense()
	newTitle := "Hijacked"

	suite.mockExpenseRepo.On("FindExpenseByID", suite.ctx, stored.ExpenseID).Return(stored, nil).Once()

	expense, err := suite.expenseService.UpdateExpense(suite.ctx, stored.ExpenseID, uuid.NewString(), dto.UpdateEntryRequest{Title: &newTitle})

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(expense)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "UpdateExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_Success() {
	stored := suite.storedExpense()

	suite.mockExpenseRepo.On("FindExpenseByID", suite.ctx, stored.ExpenseID).Return(stored, nil).Once()
	suite.mockExpenseRepo.On("DeleteExpense", suite.ctx, stored.ExpenseID).Return(nil).Once()

	err := suite.expenseService.DeleteExpense(suite.ctx, stored.ExpenseID, suite.ownerID)

	suite.NoError(err)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_NonOwnerForbidden() {
	stored := suite.storedExpense()

	suite.mockExpenseRepo.On("FindExpenseByID", suite.ctx, stored.ExpenseID).Return(stored, nil).Once()

	err := suite.expenseService.DeleteExpense(suite.ctx, stored.ExpenseID, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "DeleteExpense", mock.Anything, mock.Anything)
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
