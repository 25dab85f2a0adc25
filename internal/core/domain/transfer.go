package domain

import "github.com/shopspring/decimal"

// TransferResult summarizes a completed transfer: the two paired ledger rows
// and both balances after the atomic write.
type TransferResult struct {
	TransferID      string          `json:"transferID"`
	Expense         Expense         `json:"expense"`
	Income          Income          `json:"income"`
	PayerBalance    decimal.Decimal `json:"payerBalance"`
	PayeeBalance    decimal.Decimal `json:"payeeBalance"`
}
