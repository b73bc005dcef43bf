// Package statement implements the bank-statement ingestion and normalization
// engine: column role detection, row normalization, per-day deduplication or
// aggregation, running-balance reconstruction, and conflict detection against
// previously persisted balances.
package statement

import (
	"fmt"
	"strings"

	"tmarchand/bankbook/internal/dateutils"
	"tmarchand/bankbook/internal/models"
	"tmarchand/bankbook/internal/tokenizer"
)

// Unset marks a column index that has not been chosen yet, by detection or by
// the user.
const Unset = -1

// Keyword sets for column role detection, in priority order. Matching is
// case-insensitive substring matching on trimmed labels.
var (
	dateKeywords = []string{"date", "posting", "transaction date"}

	balanceKeywords = []string{"balance", "ending balance", "closing balance", "running balance"}

	amountKeywords = []string{"amount", "transaction", "debit", "credit", "withdrawal", "deposit"}
)

// Selection holds the 0-based indices of the date column and the value column
// (balance or amount, depending on statement type).
type Selection struct {
	Date  int
	Value int
}

// NewSelection returns a Selection with both columns unset.
func NewSelection() Selection {
	return Selection{Date: Unset, Value: Unset}
}

// Labels derives display names for each column index. When the first row is a
// header its cells are used verbatim; otherwise names are synthesized as
// "Column N" (1-based). Width is the widest row in the statement.
func Labels(rows []tokenizer.Row, hasHeader bool, width int) []string {
	labels := make([]string, width)
	if hasHeader && len(rows) > 0 {
		for i, cell := range rows[0] {
			if i >= width {
				break
			}
			labels[i] = cell
		}
	}
	for i, l := range labels {
		if strings.TrimSpace(l) == "" {
			labels[i] = fmt.Sprintf("Column %d", i+1)
		}
	}
	return labels
}

// DetectColumns fills in the unset or out-of-bounds indices of current by
// scanning labels for role keywords. A previously confirmed selection is
// preserved as long as its index is still within bounds.
func DetectColumns(labels []string, statementType models.StatementType, current Selection) Selection {
	result := current

	if result.Date < 0 || result.Date >= len(labels) {
		result.Date = matchLabel(labels, dateKeywords, 0)
	}

	valueKeywords := balanceKeywords
	if statementType == models.StatementTransactions {
		valueKeywords = amountKeywords
	}
	if result.Value < 0 || result.Value >= len(labels) {
		fallback := 1
		if fallback > len(labels)-1 {
			fallback = len(labels) - 1
		}
		if fallback < 0 {
			fallback = 0
		}
		result.Value = matchLabel(labels, valueKeywords, fallback)
	}

	return result
}

// matchLabel returns the index of the first label containing any keyword,
// trying keywords in priority order, or the fallback index when nothing
// matches.
func matchLabel(labels []string, keywords []string, fallback int) int {
	for _, kw := range keywords {
		for i, label := range labels {
			if strings.Contains(strings.ToLower(strings.TrimSpace(label)), kw) {
				return i
			}
		}
	}
	return fallback
}

// DetectHeader decides whether the first row is a header. A first row with a
// parseable date in any cell is always data, regardless of what its text
// cells say. A dateless first row is a header when one of its cells matches a
// role keyword, or when the following row does contain a date.
func DetectHeader(rows []tokenizer.Row, policy dateutils.Policy) bool {
	if len(rows) == 0 || rowHasDate(rows[0], policy) {
		return false
	}

	allKeywords := make([]string, 0, len(dateKeywords)+len(balanceKeywords)+len(amountKeywords))
	allKeywords = append(allKeywords, dateKeywords...)
	allKeywords = append(allKeywords, balanceKeywords...)
	allKeywords = append(allKeywords, amountKeywords...)

	for _, cell := range rows[0] {
		lower := strings.ToLower(strings.TrimSpace(cell))
		for _, kw := range allKeywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}

	if len(rows) > 1 && rowHasDate(rows[1], policy) {
		return true
	}

	return false
}

func rowHasDate(row tokenizer.Row, policy dateutils.Policy) bool {
	for _, cell := range row {
		if _, ok := dateutils.NormalizeDate(cell, policy); ok {
			return true
		}
	}
	return false
}

// Width returns the number of fields in the widest row.
func Width(rows []tokenizer.Row) int {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}
