package domain

// ImportKind selects which ledger table a CSV batch targets.
type ImportKind string

const (
	ImportExpenses ImportKind = "EXPENSE"
	ImportIncomes  ImportKind = "INCOME"
)

// ImportRow is one parsed CSV row before validation. All fields are raw
// strings; validation decides whether amount/date are usable.
type ImportRow struct {
	Title          string `json:"title,omitempty"`
	Category       string `json:"category,omitempty"`
	Description    string `json:"description,omitempty"`
	Amount         string `json:"amount,omitempty"`
	Date           string `json:"date,omitempty"`
	CounterpartyID string `json:"counterpartyID,omitempty"`
}

// ImportReport itemizes the outcome of a CSV batch import. Failures carries
// the raw rejected rows so the caller can correct and re-upload them.
type ImportReport struct {
	TotalRows      int         `json:"totalRows"`
	SuccessfulRows int         `json:"successfulRows"`
	FailedRows     int         `json:"failedRows"`
	Failures       []ImportRow `json:"failures,omitempty"`
}
