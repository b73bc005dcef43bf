// Package logging provides a logging abstraction layer that decouples the
// application from a specific logging framework. The engine packages log
// through this interface; commands configure the backing logrus instance once
// at startup.
package logging

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger defines the interface for structured logging throughout the application.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger

	// WithFields returns a new logger with multiple fields attached
	WithFields(fields ...Field) Logger

	// Fatal logs a fatal-level message and exits the program
	Fatal(msg string, fields ...Field)

	// Fatalf logs a fatal-level message with formatting and exits the program
	Fatalf(msg string, args ...interface{})
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value interface{}
}

// Standardized field names for structured logging.
const (
	FieldFile        = "file_path"
	FieldAccount     = "account_id"
	FieldRow         = "row"
	FieldDateColumn  = "date_column"
	FieldValueColumn = "value_column"
	FieldDate        = "date"
	FieldCount       = "count"
	FieldSkipped     = "skipped"
	FieldDuplicate   = "duplicates"
	FieldConflict    = "conflicts"
	FieldMode        = "statement_type"
)

var (
	sharedMu sync.Mutex
	shared   Logger = NewLogrusAdapterFromLogger(logrus.StandardLogger())
)

// GetLogger returns the shared application logger.
func GetLogger() Logger {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	return shared
}

// SetLogger replaces the shared application logger. Passing nil is a no-op.
func SetLogger(l Logger) {
	if l == nil {
		return
	}
	sharedMu.Lock()
	defer sharedMu.Unlock()
	shared = l
}

// SetAllLogLevels sets the level on the global logrus instance so every
// adapter created from it, existing or future, honors the same level.
func SetAllLogLevels(level logrus.Level) {
	logrus.SetLevel(level)
}
