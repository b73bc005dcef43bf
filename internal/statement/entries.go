package statement

import (
	"time"

	"github.com/shopspring/decimal"

	"tmarchand/bankbook/internal/dateutils"
	"tmarchand/bankbook/internal/models"
)

// BalanceEntries converts balance-mode deduped entries directly into import
// entries; each deduped value already is the balance for its date.
func BalanceEntries(accountID string, deduped []DedupedEntry) []models.ImportEntry {
	entries := make([]models.ImportEntry, 0, len(deduped))
	for _, d := range deduped {
		entries = append(entries, models.ImportEntry{
			AccountID: accountID,
			Date:      mustDate(d.ISODate),
			Amount:    d.Amount,
		})
	}
	return entries
}

// TransactionEntries reconstructs a balance history from a starting balance
// and daily net movements. The accumulator runs strictly left to right in
// ascending date order; each emitted amount is the closing balance for that
// day, dependent on all prior days' movements.
func TransactionEntries(accountID string, deduped []DedupedEntry, startingBalance decimal.Decimal) []models.ImportEntry {
	entries := make([]models.ImportEntry, 0, len(deduped))
	running := startingBalance
	for _, d := range deduped {
		running = running.Add(d.Amount)
		entries = append(entries, models.ImportEntry{
			AccountID: accountID,
			Date:      mustDate(d.ISODate),
			Amount:    running,
		})
	}
	return entries
}

// CountConflicts counts how many generated entries share a date with an
// existing persisted balance for the same account. The count is advisory;
// actual overwrite behavior is decided by the replace flag handed to the
// store.
func CountConflicts(entries []models.ImportEntry, existing []models.Balance) int {
	dates := make(map[string]struct{}, len(existing))
	for _, b := range existing {
		dates[b.AccountID+"\x00"+b.Date] = struct{}{}
	}

	conflicts := 0
	for _, e := range entries {
		if _, ok := dates[e.AccountID+"\x00"+e.ISODate()]; ok {
			conflicts++
		}
	}
	return conflicts
}

// mustDate converts an ISO date produced by this package back to a time.Time.
// Deduped entries only ever carry dates that came out of the normalizer, so
// parsing cannot fail.
func mustDate(iso string) time.Time {
	t, _ := time.Parse(dateutils.DateLayoutISO, iso)
	return t
}
