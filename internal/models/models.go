// Package models defines the shared data structures for the personal-finance
// tracker: accounts, persisted balances, and the entries produced by the
// statement ingestion engine.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StatementType says what each CSV row of a statement represents: an account
// balance snapshot, or a signed money movement that must be accumulated.
type StatementType string

const (
	// StatementBalance means rows carry balance snapshots.
	StatementBalance StatementType = "balance"
	// StatementTransactions means rows carry signed movements
	// (deposits positive, withdrawals negative).
	StatementTransactions StatementType = "transactions"
)

// ParseStatementType converts user input into a StatementType.
func ParseStatementType(s string) (StatementType, error) {
	switch StatementType(strings.ToLower(strings.TrimSpace(s))) {
	case StatementBalance:
		return StatementBalance, nil
	case StatementTransactions:
		return StatementTransactions, nil
	}
	return "", fmt.Errorf("unknown statement type %q (want 'balance' or 'transactions')", s)
}

// AccountType classifies an account in the directory.
type AccountType string

const (
	AccountChecking   AccountType = "checking"
	AccountSavings    AccountType = "savings"
	AccountCredit     AccountType = "credit"
	AccountInvestment AccountType = "investment"
	AccountCash       AccountType = "cash"
)

// Account is one entry of the account directory. The ingestion engine only
// reads it to label output; it never mutates accounts.
type Account struct {
	ID       string      `yaml:"id"`
	Name     string      `yaml:"name"`
	Type     AccountType `yaml:"type"`
	Currency string      `yaml:"currency,omitempty"`
}

// Balance is one persisted balance record in the store. Dates are ISO
// (YYYY-MM-DD) strings so lexicographic order matches chronological order.
type Balance struct {
	AccountID string          `csv:"account_id"`
	Date      string          `csv:"date"`
	Amount    decimal.Decimal `csv:"amount"`
}

// ImportEntry is the final unit handed to the balance store: one balance per
// calendar date for a target account.
type ImportEntry struct {
	AccountID string
	Date      time.Time
	Amount    decimal.Decimal
}

// ISODate returns the entry date formatted as YYYY-MM-DD.
func (e ImportEntry) ISODate() string {
	return e.Date.Format("2006-01-02")
}

// ToBalance converts the entry into the store's record form.
func (e ImportEntry) ToBalance() Balance {
	return Balance{
		AccountID: e.AccountID,
		Date:      e.ISODate(),
		Amount:    e.Amount,
	}
}
