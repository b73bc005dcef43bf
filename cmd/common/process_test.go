package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tmarchand/bankbook/cmd/root"
	"tmarchand/bankbook/internal/dateutils"
	"tmarchand/bankbook/internal/models"
	"tmarchand/bankbook/internal/parsererror"
)

func TestBuildOptionsRequiresAccount(t *testing.T) {
	_, err := BuildOptions(root.ImportFlags{})
	assert.Error(t, err)
}

func TestBuildOptionsFlagsWin(t *testing.T) {
	flags := root.ImportFlags{
		Account:         "acc-1",
		StatementType:   "transactions",
		DateFormat:      "dmy",
		DateColumn:      2,
		ValueColumn:     3,
		StartingBalance: "1,000.00",
	}

	opts, err := BuildOptions(flags)
	require.NoError(t, err)

	assert.Equal(t, "acc-1", opts.AccountID)
	assert.Equal(t, models.StatementTransactions, opts.StatementType)
	assert.Equal(t, dateutils.PolicyDMY, opts.DatePolicy)
	assert.Equal(t, 2, opts.DateColumn)
	assert.Equal(t, 3, opts.ValueColumn)
	assert.Equal(t, "1,000.00", opts.StartingBalance)
}

func TestBuildOptionsRejectsBadFlags(t *testing.T) {
	tests := []struct {
		name  string
		flags root.ImportFlags
		field string
	}{
		{
			name:  "Bad statement type",
			flags: root.ImportFlags{Account: "acc-1", StatementType: "mixed", DateFormat: "auto"},
			field: "type",
		},
		{
			name:  "Bad date format",
			flags: root.ImportFlags{Account: "acc-1", StatementType: "balance", DateFormat: "dd/mm"},
			field: "date-format",
		},
		{
			name: "Unreadable starting balance",
			flags: root.ImportFlags{
				Account: "acc-1", StatementType: "transactions", DateFormat: "auto",
				StartingBalance: "about a thousand",
			},
			field: "starting-balance",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildOptions(tc.flags)
			require.Error(t, err)

			var pErr *parsererror.ParseError
			require.ErrorAs(t, err, &pErr)
			assert.Equal(t, tc.field, pErr.Field)
		})
	}
}
