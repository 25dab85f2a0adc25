package events

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// TransferRecordedMessage is published after a transfer commits. Consumers
// fetch the full rows from the database; the message carries identifiers only.
type TransferRecordedMessage struct {
	TransferID string          `json:"transferId"`
	PayerID    string          `json:"payerId"`
	PayeeID    string          `json:"payeeId"`
	Amount     decimal.Decimal `json:"amount"`
	Timestamp  time.Time       `json:"timestamp"`
}

// ImportCompletedMessage is published after a CSV batch import commits.
type ImportCompletedMessage struct {
	OwnerID        string    `json:"ownerId"`
	Kind           string    `json:"kind"`
	SuccessfulRows int       `json:"successfulRows"`
	FailedRows     int       `json:"failedRows"`
	Timestamp      time.Time `json:"timestamp"`
}

// ToJSON converts the message to JSON bytes
func (m *TransferRecordedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ToJSON converts the message to JSON bytes
func (m *ImportCompletedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}
