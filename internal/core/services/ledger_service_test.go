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

type LedgerServiceTestSuite struct {
	suite.Suite
	mockUserRepo     *MockUserRepository
	mockTransferRepo *MockTransferRepository
	mockExpenseRepo  *MockExpenseRepository
	mockIncomeRepo   *MockIncomeRepository
	ledgerService    portssvc.LedgerSvcFacade
	ctx              context.Context

	payer domain.User
	payee domain.User
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockTransferRepo = new(MockTransferRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockIncomeRepo = new(MockIncomeRepository)
	suite.ledgerService = services.NewLedgerService(
		suite.mockUserRepo,
		suite.mockTransferRepo,
		suite.mockExpenseRepo,
		suite.mockIncomeRepo,
		nil,
		5*time.Second,
	)
	suite.ctx = context.Background()

	suite.payer = domain.User{
		UserID:  uuid.NewString(),
		Email:   "payer@example.com",
		Name:    "Payer",
		Balance: decimal.NewFromInt(100),
		Role:    domain.RoleUser,
	}
	suite.payee = domain.User{
		UserID:  uuid.NewString(),
		Email:   "payee@example.com",
		Name:    "Payee",
		Balance: decimal.Zero,
		Role:    domain.RoleUser,
	}
}

func (suite *LedgerServiceTestSuite) transferRequest(amount int64) dto.TransferRequest {
	return dto.TransferRequest{
		Title:      "Rent",
		Category:   "Housing",
		Amount:     decimal.NewFromInt(amount),
		ReceiverID: suite.payee.UserID,
	}
}

func (suite *LedgerServiceTestSuite) TestTransfer_Success_PairsEntriesAndMovesBalance() {
	req := suite.transferRequest(40)

	suite.mockUserRepo.On("FindUserByID", suite.ctx, suite.payer.UserID).Return(&suite.payer, nil).Once()
	suite.mockUserRepo.On("FindUserByID", suite.ctx, suite.payee.UserID).Return(&suite.payee, nil).Once()

	var savedExpense domain.Expense
	var savedIncome domain.Income
	suite.mockTransferRepo.SaveTransferFn = func(ctx context.Context, expense domain.Expense, income domain.Income, balanceChanges map[string]decimal.Decimal) (map[string]decimal.Decimal, error) {
		savedExpense = expense
		savedIncome = income
		suite.True(balanceChanges[suite.payer.UserID].Equal(decimal.NewFromInt(-40)))
		suite.True(balanceChanges[suite.payee.UserID].Equal(decimal.NewFromInt(40)))
		return map[string]decimal.Decimal{
			suite.payer.UserID: suite.payer.Balance.Add(balanceChanges[suite.payer.UserID]),
			suite.payee.UserID: suite.payee.Balance.Add(balanceChanges[suite.payee.UserID]),
		}, nil
	}

	result, err := suite.ledgerService.Transfer(suite.ctx, suite.payer.UserID, req)

	suite.NoError(err)
	suite.NotNil(result)

	// Both sides of the pair carry the same transfer ID, amount, title,
	// category and date, with owner and counterparty swapped.
	suite.NotEmpty(result.TransferID)
	suite.Equal(result.TransferID, savedExpense.TransferID)
	suite.Equal(result.TransferID, savedIncome.TransferID)
	suite.Equal(suite.payer.UserID, savedExpense.SenderID)
	suite.Equal(suite.payee.UserID, savedExpense.ReceiverID)
	suite.Equal(suite.payee.UserID, savedIncome.ReceiverID)
	suite.Equal(suite.payer.UserID, savedIncome.SenderID)
	suite.Equal(savedExpense.Title, savedIncome.Title)
	suite.Equal(savedExpense.Category, savedIncome.Category)
	suite.True(savedExpense.Amount.Equal(savedIncome.Amount))
	suite.True(savedExpense.Date.Equal(savedIncome.Date))

	suite.True(result.PayerBalance.Equal(decimal.NewFromInt(60)))
	suite.True(result.PayeeBalance.Equal(decimal.NewFromInt(40)))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestTransfer_SequentialTransfersDrainBalance() {
	suite.mockUserRepo.FindUserByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		switch userID {
		case suite.payer.UserID:
			u := suite.payer
			return &u, nil
		case suite.payee.UserID:
			u := suite.payee
			return &u, nil
		}
		return nil, apperrors.ErrNotFound
	}
	suite.mockTransferRepo.SaveTransferFn = func(ctx context.Context, expense domain.Expense, income domain.Income, balanceChanges map[string]decimal.Decimal) (map[string]decimal.Decimal, error) {
		suite.payer.Balance = suite.payer.Balance.Add(balanceChanges[suite.payer.UserID])
		suite.payee.Balance = suite.payee.Balance.Add(balanceChanges[suite.payee.UserID])
		return map[string]decimal.Decimal{
			suite.payer.UserID: suite.payer.Balance,
			suite.payee.UserID: suite.payee.Balance,
		}, nil
	}

	first, err := suite.ledgerService.Transfer(suite.ctx, suite.payer.UserID, suite.transferRequest(40))
	suite.NoError(err)
	suite.True(first.PayerBalance.Equal(decimal.NewFromInt(60)))
	suite.True(first.PayeeBalance.Equal(decimal.NewFromInt(40)))

	second, err := suite.ledgerService.Transfer(suite.ctx, suite.payer.UserID, suite.transferRequest(10))
	suite.NoError(err)
	suite.True(second.PayerBalance.Equal(decimal.NewFromInt(50)))
	suite.True(second.PayeeBalance.Equal(decimal.NewFromInt(50)))
}

func (suite *LedgerServiceTestSuite) TestTransfer_InsufficientFunds() {
	suite.payer.Balance = decimal.NewFromInt(20)
	req := suite.transferRequest(40)

	suite.mockUserRepo.On("FindUserByID", suite.ctx, suite.payer.UserID).Return(&suite.payer, nil).Once()

	result, err := suite.ledgerService.Transfer(suite.ctx, suite.payer.UserID, req)

	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.Nil(result)
	// No write may happen when the funds check fails.
	suite.mockTransferRepo.AssertNotCalled(suite.T(), "SaveTransfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestTransfer_InsufficientFundsReportedBeforePayeeResolution() {
	suite.payer.Balance = decimal.NewFromInt(20)
	req := suite.transferRequest(40)
	req.ReceiverID = "ghost"

	suite.mockUserRepo.On("FindUserByID", suite.ctx, suite.payer.UserID).Return(&suite.payer, nil).Once()

	result, err := suite.ledgerService.Transfer(suite.ctx, suite.payer.UserID, req)

	// The funds check comes first, so an unaffordable transfer to an
	// unknown receiver still reports insufficient funds.
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.Nil(result)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID", suite.ctx, "ghost")
}

func (suite *LedgerServiceTestSuite) TestTransfer_ExactBalanceIsAllowed() {
	suite.payer.Balance = decimal.NewFromInt(40)
	req := suite.transferRequest(40)

	suite.mockUserRepo.On("FindUserByID", suite.ctx, suite.payer.UserID).Return(&suite.payer, nil).Once()
	suite.mockUserRepo.On("FindUserByID", suite.ctx, suite.payee.UserID).Return(&suite.payee, nil).Once()
	suite.mockTransferRepo.SaveTransferFn = func(ctx context.Context, expense domain.Expense, income domain.Income, balanceChanges map[string]decimal.Decimal) (map[string]decimal.Decimal, error) {
		return map[string]decimal.Decimal{
			suite.payer.UserID: decimal.Zero,
			suite.payee.UserID: decimal.NewFromInt(40),
		}, nil
	}

	result, err := suite.ledgerService.Transfer(suite.ctx, suite.payer.UserID, req)

	suite.NoError(err)
	suite.True(result.PayerBalance.Equal(decimal.Zero))
}

func (suite *LedgerServiceTestSuite) TestTransfer_SelfTransferRejected() {
	req := suite.transferRequest(10)
	req.ReceiverID = suite.payer.UserID

	suite.mockUserRepo.On("FindUserByID", suite.ctx, suite.payer.UserID).Return(&suite.payer, nil).Twice()

	result, err := suite.ledgerService.Transfer(suite.ctx, suite.payer.UserID, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(result)
}

func (suite *LedgerServiceTestSuite) TestTransfer_NonPositiveAmountRejected() {
	req := suite.transferRequest(0)

	result, err := suite.ledgerService.Transfer(suite.ctx, suite.payer.UserID, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(result)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestTransfer_MissingPayeeRejected() {
	req := suite.transferRequest(10)
	req.ReceiverID = ""
	req.ReceiverEmail = ""

	suite.mockUserRepo.On("FindUserByID", suite.ctx, suite.payer.UserID).Return(&suite.payer, nil).Once()

	result, err := suite.ledgerService.Transfer(suite.ctx, suite.payer.UserID, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(result)
}

func (suite *LedgerServiceTestSuite) TestTransfer_UnknownReceiver() {
	req := suite.transferRequest(10)

	suite.mockUserRepo.On("FindUserByID", suite.ctx, suite.payer.UserID).Return(&suite.payer, nil).Once()
	suite.mockUserRepo.On("FindUserByID", suite.ctx, suite.payee.UserID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.ledgerService.Transfer(suite.ctx, suite.payer.UserID, req)

	suite.ErrorIs(err, apperrors.ErrCounterpartyNotFound)
	suite.Nil(result)
}

func (suite *LedgerServiceTestSuite) TestTransfer_PayeeResolvedByEmailFallback() {
	req := suite.transferRequest(10)
	req.ReceiverID = "stale-id"
	req.ReceiverEmail = suite.payee.Email

	suite.mockUserRepo.On("FindUserByID", suite.ctx, suite.payer.UserID).Return(&suite.payer, nil).Once()
	suite.mockUserRepo.On("FindUserByID", suite.ctx, "stale-id").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", suite.ctx, suite.payee.Email).Return(&suite.payee, nil).Once()
	suite.mockTransferRepo.SaveTransferFn = func(ctx context.Context, expense domain.Expense, income domain.Income, balanceChanges map[string]decimal.Decimal) (map[string]decimal.Decimal, error) {
		suite.Equal(suite.payee.UserID, income.ReceiverID)
		return map[string]decimal.Decimal{
			suite.payer.UserID: decimal.NewFromInt(90),
			suite.payee.UserID: decimal.NewFromInt(10),
		}, nil
	}

	result, err := suite.ledgerService.Transfer(suite.ctx, suite.payer.UserID, req)

	suite.NoError(err)
	suite.NotNil(result)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestTransfer_StoreTimeout() {
	req := suite.transferRequest(10)

	suite.mockUserRepo.On("FindUserByID", suite.ctx, suite.payer.UserID).Return(&suite.payer, nil).Once()
	suite.mockUserRepo.On("FindUserByID", suite.ctx, suite.payee.UserID).Return(&suite.payee, nil).Once()
	suite.mockTransferRepo.SaveTransferFn = func(ctx context.Context, expense domain.Expense, income domain.Income, balanceChanges map[string]decimal.Decimal) (map[string]decimal.Decimal, error) {
		return nil, context.DeadlineExceeded
	}

	result, err := suite.ledgerService.Transfer(suite.ctx, suite.payer.UserID, req)

	suite.ErrorIs(err, apperrors.ErrStoreTimeout)
	suite.Nil(result)
}

func (suite *LedgerServiceTestSuite) TestTransfer_ConcurrentRaceLostSurfacesInsufficientFunds() {
	req := suite.transferRequest(10)

	suite.mockUserRepo.On("FindUserByID", suite.ctx, suite.payer.UserID).Return(&suite.payer, nil).Once()
	suite.mockUserRepo.On("FindUserByID", suite.ctx, suite.payee.UserID).Return(&suite.payee, nil).Once()
	// The repository re-checks the balance under the row lock and may reject
	// even though the service-level check passed.
	suite.mockTransferRepo.SaveTransferFn = func(ctx context.Context, expense domain.Expense, income domain.Income, balanceChanges map[string]decimal.Decimal) (map[string]decimal.Decimal, error) {
		return nil, apperrors.ErrInsufficientFunds
	}

	result, err := suite.ledgerService.Transfer(suite.ctx, suite.payer.UserID, req)

	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.Nil(result)
}

func (suite *LedgerServiceTestSuite) TestTransfer_EmptyPayerUnauthorized() {
	result, err := suite.ledgerService.Transfer(suite.ctx, "", suite.transferRequest(10))

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(result)
}

func (suite *LedgerServiceTestSuite) TestListTransactions() {
	expenses := []domain.Expense{{ExpenseID: uuid.NewString(), SenderID: suite.payer.UserID, Title: "Groceries", Amount: decimal.NewFromInt(5)}}
	incomes := []domain.Income{{IncomeID: uuid.NewString(), ReceiverID: suite.payer.UserID, Title: "Salary", Amount: decimal.NewFromInt(50)}}

	suite.mockExpenseRepo.On("ListExpensesBySender", suite.ctx, suite.payer.UserID).Return(expenses, nil).Once()
	suite.mockIncomeRepo.On("ListIncomesByReceiver", suite.ctx, suite.payer.UserID).Return(incomes, nil).Once()

	result, err := suite.ledgerService.ListTransactions(suite.ctx, suite.payer.UserID)

	suite.NoError(err)
	suite.Len(result.Expenses, 1)
	suite.Len(result.Incomes, 1)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
	suite.mockIncomeRepo.AssertExpectations(suite.T())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
