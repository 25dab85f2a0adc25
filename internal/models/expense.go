package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a row in the expenses table.
type Expense struct {
	ExpenseID   string          `json:"expenseID" db:"expense_id"`
	SenderID    string          `json:"senderID" db:"sender_id"`
	ReceiverID  sql.NullString  `json:"receiverID" db:"receiver_id"`
	Title       string          `json:"title" db:"title"`
	Category    string          `json:"category" db:"category"`
	Description sql.NullString  `json:"description" db:"description"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	TransferID  sql.NullString  `json:"transferID" db:"transfer_id"`
	Date        time.Time       `json:"date" db:"date"`
	AuditFields
}
