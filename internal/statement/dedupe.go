package statement

import (
	"sort"

	"github.com/shopspring/decimal"

	"tmarchand/bankbook/internal/models"
)

// DedupedEntry is one entry per unique calendar date after aggregation.
type DedupedEntry struct {
	ISODate string
	Amount  decimal.Decimal
}

// Dedupe collapses valid rows into one entry per calendar date and counts the
// additional same-date rows encountered.
//
// Balance mode: the last row in input order wins, because later snapshots
// supersede earlier ones. Transactions mode: same-date movements are summed,
// because movements accumulate. This split is deliberate and mode-dependent.
//
// Output is ordered ascending by ISO date, which is also chronological.
func Dedupe(rows []NormalizedRow, statementType models.StatementType) ([]DedupedEntry, int) {
	amounts := make(map[string]decimal.Decimal)
	duplicates := 0

	for _, row := range rows {
		if !row.Valid() {
			continue
		}
		iso := row.ISODate()
		prev, seen := amounts[iso]
		if seen {
			duplicates++
			if statementType == models.StatementTransactions {
				amounts[iso] = prev.Add(row.Amount)
			} else {
				amounts[iso] = row.Amount
			}
		} else {
			amounts[iso] = row.Amount
		}
	}

	dates := make([]string, 0, len(amounts))
	for iso := range amounts {
		dates = append(dates, iso)
	}
	sort.Strings(dates)

	entries := make([]DedupedEntry, 0, len(dates))
	for _, iso := range dates {
		entries = append(entries, DedupedEntry{ISODate: iso, Amount: amounts[iso]})
	}
	return entries, duplicates
}

// SkippedRows returns the source row numbers of rows excluded from
// aggregation because their date or amount did not parse.
func SkippedRows(rows []NormalizedRow) []int {
	var skipped []int
	for _, row := range rows {
		if !row.Valid() {
			skipped = append(skipped, row.SourceRow)
		}
	}
	return skipped
}
