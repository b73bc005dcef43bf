package statement

import (
	"time"

	"github.com/shopspring/decimal"

	"tmarchand/bankbook/internal/currencyutils"
	"tmarchand/bankbook/internal/dateutils"
	"tmarchand/bankbook/internal/tokenizer"
)

// NormalizedRow is one raw data row after date and amount normalization. It is
// created once per raw row and never mutated. Invalid rows are retained so the
// caller can report skip counts; they are excluded from aggregation.
type NormalizedRow struct {
	// SourceRow is the 1-based row number as a spreadsheet viewer would show
	// it, counting the header row when present.
	SourceRow int
	RawDate   string
	RawValue  string

	Date      time.Time
	HasDate   bool
	Amount    decimal.Decimal
	HasAmount bool
}

// Valid reports whether both the date and the amount parsed.
func (r NormalizedRow) Valid() bool {
	return r.HasDate && r.HasAmount
}

// ISODate returns the normalized date as YYYY-MM-DD, or "" when absent.
func (r NormalizedRow) ISODate() string {
	if !r.HasDate {
		return ""
	}
	return dateutils.ToISODate(r.Date)
}

// NormalizeRows converts raw data rows into NormalizedRows using the selected
// date and value columns. The header row, when present, is excluded from the
// output but counted in the source row numbers.
func NormalizeRows(rows []tokenizer.Row, hasHeader bool, sel Selection, policy dateutils.Policy) []NormalizedRow {
	dataRows := rows
	offset := 1
	if hasHeader {
		dataRows = rows[1:]
		offset = 2
	}

	normalized := make([]NormalizedRow, 0, len(dataRows))
	for i, row := range dataRows {
		nr := NormalizedRow{
			SourceRow: i + offset,
			RawDate:   cellAt(row, sel.Date),
			RawValue:  cellAt(row, sel.Value),
		}
		nr.Date, nr.HasDate = dateutils.NormalizeDate(nr.RawDate, policy)
		nr.Amount, nr.HasAmount = currencyutils.ParseSignedAmount(nr.RawValue)
		normalized = append(normalized, nr)
	}
	return normalized
}

func cellAt(row tokenizer.Row, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
