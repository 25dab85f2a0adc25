package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income is the mirror of Expense on the receiving side. ReceiverID is the
// owner; a non-empty SenderID names the counterparty that paid.
type Income struct {
	IncomeID    string          `json:"incomeID"` // Primary Key (UUID)
	ReceiverID  string          `json:"receiverID"` // Owner (Not Null)
	SenderID    string          `json:"senderID,omitempty"`
	Title       string          `json:"title"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"` // Positive value
	TransferID  string          `json:"transferID,omitempty"`
	Date        time.Time       `json:"date"`
	AuditFields
}
