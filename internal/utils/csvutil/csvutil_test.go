package csvutil_test

import (
	"strings"
	"testing"

	"github.com/SscSPs/fin_tracker_app/internal/core/domain"
	"github.com/SscSPs/fin_tracker_app/internal/utils/csvutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRows_HeaderMapping(t *testing.T) {
	input := "Title,Category,Amount,Date,Description\nGroceries,Food,52.10,2024-01-01,weekly shop\nRent,Housing,900,,\n"

	rows, err := csvutil.ParseRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Groceries", rows[0].Title)
	assert.Equal(t, "Food", rows[0].Category)
	assert.Equal(t, "52.10", rows[0].Amount)
	assert.Equal(t, "2024-01-01", rows[0].Date)
	assert.Equal(t, "weekly shop", rows[0].Description)

	assert.Equal(t, "Rent", rows[1].Title)
	assert.Empty(t, rows[1].Date)
}

func TestParseRows_RaggedAndEmptyLines(t *testing.T) {
	input := "title,amount,date\nlunch,12\n\ncoffee,3.50,2024-02-02\n"

	rows, err := csvutil.ParseRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "lunch", rows[0].Title)
	assert.Equal(t, "12", rows[0].Amount)
	assert.Equal(t, "coffee", rows[1].Title)
}

func TestParseRows_EmptyFile(t *testing.T) {
	_, err := csvutil.ParseRows(strings.NewReader(""))
	assert.Error(t, err)
}

func TestValidateRow(t *testing.T) {
	cases := []struct {
		name  string
		row   domain.ImportRow
		valid bool
	}{
		{"amount and date valid", domain.ImportRow{Amount: "50", Date: "2024-01-01"}, true},
		{"amount only", domain.ImportRow{Amount: "19.99"}, true},
		{"zero amount", domain.ImportRow{Amount: "0"}, false},
		{"negative amount", domain.ImportRow{Amount: "-5"}, false},
		{"missing amount", domain.ImportRow{Title: "no amount"}, false},
		{"non numeric amount", domain.ImportRow{Amount: "abc"}, false},
		{"bad date", domain.ImportRow{Amount: "30", Date: "not-a-date"}, false},
		{"rfc3339 date", domain.ImportRow{Amount: "1", Date: "2024-03-01T10:00:00Z"}, true},
		{"us date", domain.ImportRow{Amount: "1", Date: "03/01/2024"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, csvutil.ValidateRow(tc.row))
		})
	}
}

func TestValidateRow_Idempotent(t *testing.T) {
	row := domain.ImportRow{Amount: "42.42", Date: "2024-01-01"}
	first := csvutil.ValidateRow(row)
	second := csvutil.ValidateRow(row)
	assert.Equal(t, first, second)
}
