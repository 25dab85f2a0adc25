package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a ledger entry on the payer's side. SenderID is the owner; a
// non-empty ReceiverID names the counterparty that benefited. TransferID is
// set only on rows created by the transfer path, linking the expense to its
// paired income row.
type Expense struct {
	ExpenseID   string          `json:"expenseID"` // Primary Key (UUID)
	SenderID    string          `json:"senderID"`  // Owner (Not Null)
	ReceiverID  string          `json:"receiverID,omitempty"`
	Title       string          `json:"title"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"` // Positive value
	TransferID  string          `json:"transferID,omitempty"`
	Date        time.Time       `json:"date"`
	AuditFields
}
