package statement

import (
	"tmarchand/bankbook/internal/currencyutils"
	"tmarchand/bankbook/internal/dateutils"
	"tmarchand/bankbook/internal/logging"
	"tmarchand/bankbook/internal/models"
	"tmarchand/bankbook/internal/parsererror"
	"tmarchand/bankbook/internal/tokenizer"
)

// Options is the explicit configuration object threaded through every
// pipeline stage. Any field change means a full deterministic recomputation;
// there is no shared mutable state and no partial recomputation.
type Options struct {
	AccountID     string
	StatementType models.StatementType
	DatePolicy    dateutils.Policy

	// DateColumn and ValueColumn override detection when set (>= 0 and in
	// bounds). Use Unset to let detection choose.
	DateColumn  int
	ValueColumn int

	// StartingBalance is the raw starting-balance text, required in
	// transactions mode. It accepts the same syntaxes as any statement value.
	StartingBalance string
}

// DefaultOptions returns Options with auto-detected columns, auto date policy,
// and balance mode.
func DefaultOptions(accountID string) Options {
	return Options{
		AccountID:     accountID,
		StatementType: models.StatementBalance,
		DatePolicy:    dateutils.PolicyAuto,
		DateColumn:    Unset,
		ValueColumn:   Unset,
	}
}

// Result is everything one pipeline run produces. Identical text, options and
// existing balances always yield an identical Result.
type Result struct {
	Labels    []string
	Selection Selection
	HasHeader bool

	// Rows holds every normalized data row, including invalid ones.
	Rows []NormalizedRow

	// Entries is the final ordered import sequence. Empty when NotReady is
	// set: the engine refuses to guess missing configuration.
	Entries []models.ImportEntry

	SkippedRows    []int
	DuplicateCount int
	ConflictCount  int

	// NotReady is non-nil when required configuration is missing
	// (no starting balance in transactions mode).
	NotReady *parsererror.NotReadyError
}

// Ready reports whether the result can be imported.
func (r *Result) Ready() bool {
	return r.NotReady == nil
}

// Run executes the full pipeline on raw statement text. It is a pure function
// of its inputs: no I/O, no ambient state. Structural failures (no rows at
// all) return an error; per-row failures only mark rows invalid.
func Run(text string, opts Options, existing []models.Balance) (*Result, error) {
	log := logging.GetLogger().WithField(logging.FieldAccount, opts.AccountID)

	rows := tokenizer.Tokenize(text)
	if len(rows) == 0 {
		return nil, &parsererror.ValidationError{
			FilePath: opts.AccountID,
			Reason:   "no rows after tokenization",
		}
	}

	hasHeader := DetectHeader(rows, opts.DatePolicy)
	labels := Labels(rows, hasHeader, Width(rows))

	sel := Selection{Date: opts.DateColumn, Value: opts.ValueColumn}
	sel = DetectColumns(labels, opts.StatementType, sel)
	log.Debug("Column selection",
		logging.Field{Key: logging.FieldDateColumn, Value: sel.Date},
		logging.Field{Key: logging.FieldValueColumn, Value: sel.Value},
	)

	normalized := NormalizeRows(rows, hasHeader, sel, opts.DatePolicy)
	deduped, duplicates := Dedupe(normalized, opts.StatementType)

	result := &Result{
		Labels:         labels,
		Selection:      sel,
		HasHeader:      hasHeader,
		Rows:           normalized,
		SkippedRows:    SkippedRows(normalized),
		DuplicateCount: duplicates,
	}

	switch opts.StatementType {
	case models.StatementTransactions:
		starting, ok := currencyutils.ParseSignedAmount(opts.StartingBalance)
		if !ok {
			result.NotReady = &parsererror.NotReadyError{Missing: "starting balance"}
			log.Warn("Starting balance missing, withholding import entries")
			break
		}
		result.Entries = TransactionEntries(opts.AccountID, deduped, starting)
	default:
		result.Entries = BalanceEntries(opts.AccountID, deduped)
	}

	result.ConflictCount = CountConflicts(result.Entries, existing)

	log.Debug("Pipeline run complete",
		logging.Field{Key: logging.FieldMode, Value: string(opts.StatementType)},
		logging.Field{Key: logging.FieldCount, Value: len(result.Entries)},
		logging.Field{Key: logging.FieldSkipped, Value: len(result.SkippedRows)},
		logging.Field{Key: logging.FieldDuplicate, Value: result.DuplicateCount},
		logging.Field{Key: logging.FieldConflict, Value: result.ConflictCount},
	)

	return result, nil
}
