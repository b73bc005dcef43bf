package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLogrusAdapterLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.DebugLevel)

	adapter := NewLogrusAdapterFromLogger(logger)

	adapter.Debug("debug message")
	adapter.Info("info message", Field{Key: FieldCount, Value: 3})
	adapter.Warn("warn message")
	adapter.Error("error message")

	out := buf.String()
	assert.Contains(t, out, "debug message")
	assert.Contains(t, out, "info message")
	assert.Contains(t, out, "count=3")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
}

func TestLogrusAdapterWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)

	adapter := NewLogrusAdapterFromLogger(logger)
	adapter.WithError(errors.New("boom")).Error("failed")

	assert.Contains(t, buf.String(), "boom")
}

func TestLogrusAdapterInvalidLevel(t *testing.T) {
	adapter := NewLogrusAdapter("not-a-level", "text")
	assert.NotNil(t, adapter)
}

func TestMockLoggerCapturesEntries(t *testing.T) {
	mock := &MockLogger{}

	mock.Info("hello", Field{Key: FieldAccount, Value: "acc-1"})
	mock.WithField(FieldRow, 4).Warn("skipping row")

	assert.True(t, mock.HasEntry("INFO", "hello"))
	assert.False(t, mock.HasEntry("ERROR", "hello"))
}

func TestSetLogger(t *testing.T) {
	original := GetLogger()
	defer SetLogger(original)

	mock := &MockLogger{}
	SetLogger(mock)
	assert.Equal(t, Logger(mock), GetLogger())

	SetLogger(nil)
	assert.Equal(t, Logger(mock), GetLogger(), "nil must not replace the logger")
}
