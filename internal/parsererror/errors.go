// Package parsererror defines the typed errors used by the statement
// ingestion engine. Per-row parse failures are not errors at all (they signal
// by absence); these types cover structural, configuration, and import faults.
package parsererror

import "fmt"

// ParseError represents a failure to parse a specific field value.
type ParseError struct {
	Stage string
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Stage, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents a structural failure: the file cannot yield any
// rows at all (unreadable, empty after tokenization).
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// NotReadyError signals that the engine is withholding import entries because
// required configuration is missing. The caller must supply it; the engine
// never guesses.
type NotReadyError struct {
	Missing string
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("not ready to import: missing %s", e.Missing)
}

// ImportError represents a failure while handing entries to the balance store.
type ImportError struct {
	AccountID string
	Err       error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import failed for account %s: %v", e.AccountID, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}
