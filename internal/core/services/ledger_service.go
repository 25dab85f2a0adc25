package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/fin_tracker_app/internal/apperrors"
	"github.com/SscSPs/fin_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fin_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/fin_tracker_app/internal/dto"
	"github.com/SscSPs/fin_tracker_app/internal/events"
	"github.com/SscSPs/fin_tracker_app/internal/middleware"
)

var (
	ErrAmountNotPositive = errors.New("transfer amount must be positive")
	ErrSelfTransfer      = errors.New("cannot transfer to yourself")
	ErrPayeeMissing      = errors.New("receiverId or receiverEmail is required")
)

// ledgerService implements the paired double-entry transfer path. A transfer
// produces exactly one expense row on the payer's ledger and one income row
// on the payee's ledger with the same amount, title, category and date, and
// moves the amount between the two balances. The four writes are applied by
// the repository in a single database transaction.
type ledgerService struct {
	userRepo        portsrepo.UserRepositoryFacade
	transferRepo    portsrepo.TransferRepositoryFacade
	expenseRepo     portsrepo.ExpenseRepositoryFacade
	incomeRepo      portsrepo.IncomeRepositoryFacade
	publisher       *events.Publisher
	transferTimeout time.Duration
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(
	userRepo portsrepo.UserRepositoryFacade,
	transferRepo portsrepo.TransferRepositoryFacade,
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	incomeRepo portsrepo.IncomeRepositoryFacade,
	publisher *events.Publisher,
	transferTimeout time.Duration,
) portssvc.LedgerSvcFacade {
	if transferTimeout <= 0 {
		transferTimeout = 5 * time.Second
	}
	return &ledgerService{
		userRepo:        userRepo,
		transferRepo:    transferRepo,
		expenseRepo:     expenseRepo,
		incomeRepo:      incomeRepo,
		publisher:       publisher,
		transferTimeout: transferTimeout,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// resolvePayee looks the payee up by ID first, then by email.
func (s *ledgerService) resolvePayee(ctx context.Context, req dto.TransferRequest) (*domain.User, error) {
	if req.ReceiverID == "" && req.ReceiverEmail == "" {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrPayeeMissing)
	}

	if req.ReceiverID != "" {
		payee, err := s.userRepo.FindUserByID(ctx, req.ReceiverID)
		if err == nil {
			return payee, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to resolve payee by ID: %w", err)
		}
	}

	if req.ReceiverEmail != "" {
		payee, err := s.userRepo.FindUserByEmail(ctx, req.ReceiverEmail)
		if err == nil {
			return payee, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to resolve payee by email: %w", err)
		}
	}

	return nil, apperrors.ErrCounterpartyNotFound
}

// Transfer validates and applies a money movement from payer to payee.
// Preconditions are checked in order: payer exists, amount is positive, the
// payer's balance covers the amount, and the payee resolves and is distinct
// from the payer. The balance check is repeated by the repository under a
// row lock, so a concurrent transfer from the same payer cannot double-spend.
func (s *ledgerService) Transfer(ctx context.Context, payerID string, req dto.TransferRequest) (*domain.TransferResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if payerID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", apperrors.ErrValidation)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAmountNotPositive)
	}

	payer, err := s.userRepo.FindUserByID(ctx, payerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// The ID came from a valid session but the row is gone; distinct
			// from unauthenticated.
			return nil, fmt.Errorf("%w: sender not found", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch payer: %w", err)
	}

	// Funds are checked before the payee resolves, so an unaffordable
	// transfer is rejected the same way whether or not the payee exists.
	if payer.Balance.LessThan(req.Amount) {
		logger.Warn("Transfer rejected: insufficient funds",
			slog.String("payer_id", payer.UserID),
			slog.String("amount", req.Amount.String()),
			slog.String("balance", payer.Balance.String()))
		return nil, apperrors.ErrInsufficientFunds
	}

	payee, err := s.resolvePayee(ctx, req)
	if err != nil {
		return nil, err
	}

	if payee.UserID == payer.UserID {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrSelfTransfer)
	}

	now := time.Now().UTC()
	date := now
	if req.Date != nil {
		date = req.Date.UTC()
	}

	transferID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     payer.UserID,
		LastUpdatedAt: now,
		LastUpdatedBy: payer.UserID,
	}

	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		SenderID:    payer.UserID,
		ReceiverID:  payee.UserID,
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		TransferID:  transferID,
		Date:        date,
		AuditFields: audit,
	}
	income := domain.Income{
		IncomeID:    uuid.NewString(),
		ReceiverID:  payee.UserID,
		SenderID:    payer.UserID,
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		TransferID:  transferID,
		Date:        date,
		AuditFields: audit,
	}

	balanceChanges := map[string]decimal.Decimal{
		payer.UserID: req.Amount.Neg(),
		payee.UserID: req.Amount,
	}

	txCtx, cancel := context.WithTimeout(ctx, s.transferTimeout)
	defer cancel()

	balances, err := s.transferRepo.SaveTransfer(txCtx, expense, income, balanceChanges)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Error("Transfer write timed out", slog.String("transfer_id", transferID))
			return nil, fmt.Errorf("%w: transfer write exceeded %s", apperrors.ErrStoreTimeout, s.transferTimeout)
		}
		if errors.Is(err, apperrors.ErrInsufficientFunds) {
			// Lost the race against a concurrent transfer from the same payer.
			return nil, apperrors.ErrInsufficientFunds
		}
		logger.Error("Failed to save transfer", slog.String("error", err.Error()), slog.String("transfer_id", transferID))
		return nil, fmt.Errorf("failed to save transfer: %w", err)
	}

	s.publisher.PublishTransferRecorded(context.WithoutCancel(ctx), &events.TransferRecordedMessage{
		TransferID: transferID,
		PayerID:    payer.UserID,
		PayeeID:    payee.UserID,
		Amount:     req.Amount,
		Timestamp:  now,
	})

	logger.Info("Transfer recorded",
		slog.String("transfer_id", transferID),
		slog.String("payer_id", payer.UserID),
		slog.String("payee_id", payee.UserID),
		slog.String("amount", req.Amount.String()))

	return &domain.TransferResult{
		TransferID:   transferID,
		Expense:      expense,
		Income:       income,
		PayerBalance: balances[payer.UserID],
		PayeeBalance: balances[payee.UserID],
	}, nil
}

// ListTransactions returns the caller's expenses and incomes, newest first.
func (s *ledgerService) ListTransactions(ctx context.Context, userID string) (*dto.TransactionsResponse, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	expenses, err := s.expenseRepo.ListExpensesBySender(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	incomes, err := s.incomeRepo.ListIncomesByReceiver(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}

	return &dto.TransactionsResponse{
		Expenses: expenses,
		Incomes:  incomes,
	}, nil
}
