package statement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tmarchand/bankbook/internal/models"
	"tmarchand/bankbook/internal/parsererror"
)

const balanceCSV = `Posting Date,Description,Running Balance
2024-01-05,opening,100.00
2024-01-05,correction,150.00
2024-01-06,groceries,"$1,234.50"
bad date,noise,10.00
`

const transactionsCSV = `Date,Description,Amount
2024-01-05,deposit,50.00
2024-01-05,withdrawal,(20.00)
2024-01-06,salary,100.00
`

func TestRunBalanceMode(t *testing.T) {
	opts := DefaultOptions("acc-1")

	result, err := Run(balanceCSV, opts, nil)
	require.NoError(t, err)

	assert.True(t, result.HasHeader)
	assert.Equal(t, Selection{Date: 0, Value: 2}, result.Selection)
	assert.Equal(t, []string{"Posting Date", "Description", "Running Balance"}, result.Labels)

	require.Len(t, result.Entries, 2)
	assert.Equal(t, "2024-01-05", result.Entries[0].ISODate())
	assert.True(t, decimal.NewFromFloat(150).Equal(result.Entries[0].Amount), "last same-date row wins")
	assert.True(t, decimal.NewFromFloat(1234.50).Equal(result.Entries[1].Amount))

	assert.Equal(t, 1, result.DuplicateCount)
	// Source rows are 1-based and count the header, like a spreadsheet viewer.
	assert.Equal(t, []int{5}, result.SkippedRows)
	assert.True(t, result.Ready())
}

func TestRunTransactionsMode(t *testing.T) {
	opts := DefaultOptions("acc-1")
	opts.StatementType = models.StatementTransactions
	opts.StartingBalance = "1,000.00"

	result, err := Run(transactionsCSV, opts, nil)
	require.NoError(t, err)

	require.Len(t, result.Entries, 2)
	assert.True(t, decimal.NewFromInt(1030).Equal(result.Entries[0].Amount))
	assert.True(t, decimal.NewFromInt(1130).Equal(result.Entries[1].Amount))
	assert.Equal(t, 1, result.DuplicateCount)
}

func TestRunTransactionsWithoutStartingBalance(t *testing.T) {
	opts := DefaultOptions("acc-1")
	opts.StatementType = models.StatementTransactions

	result, err := Run(transactionsCSV, opts, nil)
	require.NoError(t, err)

	assert.False(t, result.Ready())
	assert.NotNil(t, result.NotReady)
	assert.Empty(t, result.Entries, "the engine refuses to guess an opening balance")
	// Normalized rows are still available for preview.
	assert.NotEmpty(t, result.Rows)
}

func TestRunEmptyInput(t *testing.T) {
	opts := DefaultOptions("acc-1")

	_, err := Run("", opts, nil)
	require.Error(t, err)

	var vErr *parsererror.ValidationError
	assert.ErrorAs(t, err, &vErr)

	_, err = Run("\n  , \n\n", opts, nil)
	assert.Error(t, err, "whitespace-only rows are dropped, leaving zero rows")
}

func TestRunConflictCount(t *testing.T) {
	opts := DefaultOptions("acc-1")
	existing := []models.Balance{
		{AccountID: "acc-1", Date: "2024-01-06", Amount: decimal.NewFromInt(999)},
	}

	result, err := Run(balanceCSV, opts, existing)
	require.NoError(t, err)
	assert.Equal(t, 1, result.ConflictCount)
}

func TestRunColumnOverride(t *testing.T) {
	opts := DefaultOptions("acc-1")
	opts.ValueColumn = 1 // description column: no amounts parse

	result, err := Run(balanceCSV, opts, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Selection.Value, "user override preserved")
	assert.Empty(t, result.Entries)
	assert.Len(t, result.SkippedRows, 4)
}

// Running the pipeline twice on identical inputs must yield identical results.
func TestRunIdempotence(t *testing.T) {
	opts := DefaultOptions("acc-1")

	first, err := Run(balanceCSV, opts, nil)
	require.NoError(t, err)
	second, err := Run(balanceCSV, opts, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// A headerless export whose descriptions contain role keywords must keep its
// first row as data; losing it would shift every reconstructed balance.
func TestRunNoHeaderKeywordDescriptions(t *testing.T) {
	opts := DefaultOptions("acc-1")
	opts.StatementType = models.StatementTransactions
	opts.StartingBalance = "1000.00"
	opts.ValueColumn = 2

	result, err := Run("2024-01-05,deposit,50.00\n2024-01-06,salary,100.00\n", opts, nil)
	require.NoError(t, err)

	assert.False(t, result.HasHeader, "first row is valid data, not a header")
	require.Len(t, result.Entries, 2)
	assert.True(t, decimal.NewFromInt(1050).Equal(result.Entries[0].Amount))
	assert.True(t, decimal.NewFromInt(1150).Equal(result.Entries[1].Amount))
}

func TestRunNoHeader(t *testing.T) {
	opts := DefaultOptions("acc-1")

	result, err := Run("2024-01-05,100.00\n2024-01-06,110.00\n", opts, nil)
	require.NoError(t, err)

	assert.False(t, result.HasHeader)
	assert.Equal(t, []string{"Column 1", "Column 2"}, result.Labels)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, []int(nil), result.SkippedRows)
	// Without a header the first data row is row 1.
	assert.Equal(t, 1, result.Rows[0].SourceRow)
}
