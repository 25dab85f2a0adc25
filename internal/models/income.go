package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Income represents a row in the incomes table.
type Income struct {
	IncomeID    string          `json:"incomeID" db:"income_id"`
	ReceiverID  string          `json:"receiverID" db:"receiver_id"`
	SenderID    sql.NullString  `json:"senderID" db:"sender_id"`
	Title       string          `json:"title" db:"title"`
	Category    string          `json:"category" db:"category"`
	Description sql.NullString  `json:"description" db:"description"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	TransferID  sql.NullString  `json:"transferID" db:"transfer_id"`
	Date        time.Time       `json:"date" db:"date"`
	AuditFields
}
