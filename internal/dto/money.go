package dto

import (
	"time"

	"github.com/SscSPs/fin_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransferRequest defines the payload for a paired double-entry transfer.
// Exactly one of ReceiverID / ReceiverEmail must identify the payee.
type TransferRequest struct {
	Title         string          `json:"title" binding:"required"`
	Category      string          `json:"category,omitempty"`
	Description   string          `json:"description,omitempty"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	ReceiverID    string          `json:"receiverId,omitempty"`
	ReceiverEmail string          `json:"receiverEmail,omitempty"`
	Date          *time.Time      `json:"date,omitempty"`
}

// RecordExpenseRequest defines the payload for a plain expense entry.
// No balance is touched; this is the single-sided record path.
type RecordExpenseRequest struct {
	Title       string          `json:"title" binding:"required"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	ReceiverID  string          `json:"receiverId,omitempty"`
	Date        *time.Time      `json:"date,omitempty"`
}

// RecordIncomeRequest defines the payload for a plain income entry.
type RecordIncomeRequest struct {
	Title       string          `json:"title" binding:"required"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	SenderID    string          `json:"senderId,omitempty"`
	Date        *time.Time      `json:"date,omitempty"`
}

// UpdateEntryRequest defines the partially updatable fields of an expense or
// income record. Owner and counterparty references are immutable after
// creation; omitted fields keep their stored values.
type UpdateEntryRequest struct {
	Title       *string          `json:"title,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
}

// TransferResponse is returned on a successful transfer.
type TransferResponse struct {
	TransferID   string          `json:"transferID"`
	Expense      domain.Expense  `json:"expense"`
	Income       domain.Income   `json:"income"`
	PayerBalance decimal.Decimal `json:"payerBalance"`
	PayeeBalance decimal.Decimal `json:"payeeBalance"`
}

// ToTransferResponse converts a domain.TransferResult to its response DTO.
func ToTransferResponse(r *domain.TransferResult) TransferResponse {
	return TransferResponse{
		TransferID:   r.TransferID,
		Expense:      r.Expense,
		Income:       r.Income,
		PayerBalance: r.PayerBalance,
		PayeeBalance: r.PayeeBalance,
	}
}

// TransactionsResponse is the combined listing of a user's ledger entries,
// newest first on both sides.
type TransactionsResponse struct {
	Expenses []domain.Expense `json:"expenses"`
	Incomes  []domain.Income  `json:"incomes"`
}
