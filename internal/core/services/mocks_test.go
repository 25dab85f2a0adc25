package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/fin_tracker_app/internal/core/domain"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
	SaveUserFn                  func(ctx context.Context, user domain.User) error
	FindUserByIDFn              func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmailFn           func(ctx context.Context, email string) (*domain.User, error)
	FindUserByProviderDetailsFn func(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error)
	UpdateUserFn                func(ctx context.Context, user domain.User) error
	UpdateRefreshTokenFn        func(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error
	ClearRefreshTokenFn         func(ctx context.Context, userID string) error
	MarkUserDeletedFn           func(ctx context.Context, userID string, deletedAt time.Time, deleterUserID string) error
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindUserByEmailFn != nil {
		return m.FindUserByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error) {
	if m.FindUserByProviderDetailsFn != nil {
		return m.FindUserByProviderDetailsFn(ctx, authProvider, providerUserID)
	}
	args := m.Called(ctx, authProvider, providerUserID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	if m.UpdateRefreshTokenFn != nil {
		return m.UpdateRefreshTokenFn(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	}
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	if m.ClearRefreshTokenFn != nil {
		return m.ClearRefreshTokenFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deleterUserID string) error {
	if m.MarkUserDeletedFn != nil {
		return m.MarkUserDeletedFn(ctx, userID, deletedAt, deleterUserID)
	}
	args := m.Called(ctx, userID, deletedAt, deleterUserID)
	return args.Error(0)
}

// --- Mock TransferRepository ---

type MockTransferRepository struct {
	mock.Mock
	SaveTransferFn func(ctx context.Context, expense domain.Expense, income domain.Income, balanceChanges map[string]decimal.Decimal) (map[string]decimal.Decimal, error)
}

func (m *MockTransferRepository) SaveTransfer(ctx context.Context, expense domain.Expense, income domain.Income, balanceChanges map[string]decimal.Decimal) (map[string]decimal.Decimal, error) {
	if m.SaveTransferFn != nil {
		return m.SaveTransferFn(ctx, expense, income, balanceChanges)
	}
	args := m.Called(ctx, expense, income, balanceChanges)
	var balances map[string]decimal.Decimal
	if args.Get(0) != nil {
		balances = args.Get(0).(map[string]decimal.Decimal)
	}
	return balances, args.Error(1)
}

// --- Mock ExpenseRepository ---

type MockExpenseRepository struct {
	mock.Mock
	SaveExpenseFn          func(ctx context.Context, expense domain.Expense) error
	SaveExpensesBatchFn    func(ctx context.Context, expenses []domain.Expense) error
	FindExpenseByIDFn      func(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListExpensesBySenderFn func(ctx context.Context, senderID string) ([]domain.Expense, error)
	UpdateExpenseFn        func(ctx context.Context, expense domain.Expense) error
	DeleteExpenseFn        func(ctx context.Context, expenseID string) error
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	if m.SaveExpenseFn != nil {
		return m.SaveExpenseFn(ctx, expense)
	}
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) SaveExpensesBatch(ctx context.Context, expenses []domain.Expense) error {
	if m.SaveExpensesBatchFn != nil {
		return m.SaveExpensesBatchFn(ctx, expenses)
	}
	args := m.Called(ctx, expenses)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	if m.FindExpenseByIDFn != nil {
		return m.FindExpenseByIDFn(ctx, expenseID)
	}
	args := m.Called(ctx, expenseID)
	var expense *domain.Expense
	if args.Get(0) != nil {
		expense = args.Get(0).(*domain.Expense)
	}
	return expense, args.Error(1)
}

func (m *MockExpenseRepository) ListExpensesBySender(ctx context.Context, senderID string) ([]domain.Expense, error) {
	if m.ListExpensesBySenderFn != nil {
		return m.ListExpensesBySenderFn(ctx, senderID)
	}
	args := m.Called(ctx, senderID)
	var expenses []domain.Expense
	if args.Get(0) != nil {
		expenses = args.Get(0).([]domain.Expense)
	}
	return expenses, args.Error(1)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	if m.UpdateExpenseFn != nil {
		return m.UpdateExpenseFn(ctx, expense)
	}
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	if m.DeleteExpenseFn != nil {
		return m.DeleteExpenseFn(ctx, expenseID)
	}
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

// --- Mock IncomeRepository ---

type MockIncomeRepository struct {
	mock.Mock
	SaveIncomeFn            func(ctx context.Context, income domain.Income) error
	SaveIncomesBatchFn      func(ctx context.Context, incomes []domain.Income) error
	FindIncomeByIDFn        func(ctx context.Context, incomeID string) (*domain.Income, error)
	ListIncomesByReceiverFn func(ctx context.Context, receiverID string) ([]domain.Income, error)
	UpdateIncomeFn          func(ctx context.Context, income domain.Income) error
	DeleteIncomeFn          func(ctx context.Context, incomeID string) error
}

func (m *MockIncomeRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	if m.SaveIncomeFn != nil {
		return m.SaveIncomeFn(ctx, income)
	}
	args := m.Called(ctx, income)
	return args.Error(0)
}

func (m *MockIncomeRepository) SaveIncomesBatch(ctx context.Context, incomes []domain.Income) error {
	if m.SaveIncomesBatchFn != nil {
		return m.SaveIncomesBatchFn(ctx, incomes)
	}
	args := m.Called(ctx, incomes)
	return args.Error(0)
}

func (m *MockIncomeRepository) FindIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error) {
	if m.FindIncomeByIDFn != nil {
		return m.FindIncomeByIDFn(ctx, incomeID)
	}
	args := m.Called(ctx, incomeID)
	var income *domain.Income
	if args.Get(0) != nil {
		income = args.Get(0).(*domain.Income)
	}
	return income, args.Error(1)
}

func (m *MockIncomeRepository) ListIncomesByReceiver(ctx context.Context, receiverID string) ([]domain.Income, error) {
	if m.ListIncomesByReceiverFn != nil {
		return m.ListIncomesByReceiverFn(ctx, receiverID)
	}
	args := m.Called(ctx, receiverID)
	var incomes []domain.Income
	if args.Get(0) != nil {
		incomes = args.Get(0).([]domain.Income)
	}
	return incomes, args.Error(1)
}

func (m *MockIncomeRepository) UpdateIncome(ctx context.Context, income domain.Income) error {
	if m.UpdateIncomeFn != nil {
		return m.UpdateIncomeFn(ctx, income)
	}
	args := m.Called(ctx, income)
	return args.Error(0)
}

func (m *MockIncomeRepository) DeleteIncome(ctx context.Context, incomeID string) error {
	if m.DeleteIncomeFn != nil {
		return m.DeleteIncomeFn(ctx, incomeID)
	}
	args := m.Called(ctx, incomeID)
	return args.Error(0)
}

// --- Mock SubscriptionRepository ---

type MockSubscriptionRepository struct {
	mock.Mock
	SaveSubscriptionFn        func(ctx context.Context, subscription domain.Subscription) error
	FindSubscriptionByIDFn    func(ctx context.Context, subscriptionID string) (*domain.Subscription, error)
	ListSubscriptionsByUserFn func(ctx context.Context, userID string) ([]domain.Subscription, error)
	UpdateSubscriptionFn      func(ctx context.Context, subscription domain.Subscription) error
	DeleteSubscriptionFn      func(ctx context.Context, subscriptionID string) error
}

func (m *MockSubscriptionRepository) SaveSubscription(ctx context.Context, subscription domain.Subscription) error {
	if m.SaveSubscriptionFn != nil {
		return m.SaveSubscriptionFn(ctx, subscription)
	}
	args := m.Called(ctx, subscription)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) FindSubscriptionByID(ctx context.Context, subscriptionID string) (*domain.Subscription, error) {
	if m.FindSubscriptionByIDFn != nil {
		return m.FindSubscriptionByIDFn(ctx, subscriptionID)
	}
	args := m.Called(ctx, subscriptionID)
	var subscription *domain.Subscription
	if args.Get(0) != nil {
		subscription = args.Get(0).(*domain.Subscription)
	}
	return subscription, args.Error(1)
}

func (m *MockSubscriptionRepository) ListSubscriptionsByUser(ctx context.Context, userID string) ([]domain.Subscription, error) {
	if m.ListSubscriptionsByUserFn != nil {
		return m.ListSubscriptionsByUserFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var subscriptions []domain.Subscription
	if args.Get(0) != nil {
		subscriptions = args.Get(0).([]domain.Subscription)
	}
	return subscriptions, args.Error(1)
}

func (m *MockSubscriptionRepository) UpdateSubscription(ctx context.Context, subscription domain.Subscription) error {
	if m.UpdateSubscriptionFn != nil {
		return m.UpdateSubscriptionFn(ctx, subscription)
	}
	args := m.Called(ctx, subscription)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) DeleteSubscription(ctx context.Context, subscriptionID string) error {
	if m.DeleteSubscriptionFn != nil {
		return m.DeleteSubscriptionFn(ctx, subscriptionID)
	}
	args := m.Called(ctx, subscriptionID)
	return args.Error(0)
}
