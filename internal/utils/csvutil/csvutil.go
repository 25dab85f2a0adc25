// Package csvutil parses and validates tabular ledger imports. Validation is
// a pure function of the row contents so the same row always classifies the
// same way.
package csvutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/SscSPs/fin_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// dateLayouts are the accepted date formats for the optional date column.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// ParseDate parses a date string against the accepted layouts.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", s)
}

// ParseRows reads a header-first CSV stream into import rows. Column names
// are matched case-insensitively; unknown columns are ignored. Rows with a
// different field count than the header are tolerated, missing cells read as
// empty. A stream that cannot be read as CSV at all returns an error.
func ParseRows(r io.Reader) ([]domain.ImportRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("csv file is empty")
		}
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[strings.ToLower(strings.TrimSpace(name))] = i
	}

	cell := func(record []string, names ...string) string {
		for _, name := range names {
			if idx, ok := colIndex[name]; ok && idx < len(record) {
				return strings.TrimSpace(record[idx])
			}
		}
		return ""
	}

	var rows []domain.ImportRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv record: %w", err)
		}
		// Skip fully empty lines, same as header-mode parsers do.
		empty := true
		for _, f := range record {
			if strings.TrimSpace(f) != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}
		rows = append(rows, domain.ImportRow{
			Title:          cell(record, "title"),
			Category:       cell(record, "category"),
			Description:    cell(record, "description"),
			Amount:         cell(record, "amount"),
			Date:           cell(record, "date"),
			CounterpartyID: cell(record, "counterpartyid", "receiverid", "senderid"),
		})
	}
	return rows, nil
}

// ValidateRow reports whether an import row is acceptable: amount must be
// present, numeric and positive, and date, when present, must parse to a
// calendar date. The positive-amount rule matches the ledger tables' amount
// constraint, so a row that passes here cannot fail the batch insert.
func ValidateRow(row domain.ImportRow) bool {
	if row.Amount == "" {
		return false
	}
	amount, err := decimal.NewFromString(row.Amount)
	if err != nil || !amount.IsPositive() {
		return false
	}
	if row.Date != "" {
		if _, err := ParseDate(row.Date); err != nil {
			return false
		}
	}
	return true
}
