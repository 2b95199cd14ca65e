package log

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"tuimoney/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogger_WritesComponentToOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelInfo, Component: ComponentStorage, Output: &buf})

	l.Info("hello", FieldCount, 3)
	l.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "msg=hello")
	assert.Contains(t, out, "component=storage")
	assert.Contains(t, out, "count=3")
	assert.NotContains(t, out, "hidden")
}

func TestLogger_WithKeepsComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelDebug, Component: ComponentApp, Output: &buf}).
		With(FieldRunID, "abc").
		WithComponent(ComponentUI)

	assert.Equal(t, ComponentUI, l.Component())
	l.Debug("tick")
	assert.Contains(t, buf.String(), "run_id=abc")
	assert.Contains(t, buf.String(), "component=ui")
}

func TestErrorType(t *testing.T) {
	assert.Equal(t, ErrorTypeValidation, ErrorType(core.ErrInvalidAmount))
	assert.Equal(t, ErrorTypeConstraint,
		ErrorType(core.NewStorageError("list entries", core.ErrConstraintViolation, errors.New("bad row"))))
	assert.Equal(t, ErrorTypeDatabase,
		ErrorType(core.NewStorageError("create entry", core.ErrConnectionFailed, errors.New("closed"))))
	assert.Equal(t, ErrorTypeInternal, ErrorType(errors.New("boom")))
}

func TestStructuredLogger(t *testing.T) {
	var buf bytes.Buffer
	s := NewStructuredLogger(New(Config{Level: slog.LevelDebug, Output: &buf}))
	ctx := context.Background()

	s.LogEntryRecorded(ctx, core.Entry{
		ID:          7,
		Kind:        core.Expense,
		AmountCents: 500,
		Category:    "Food",
		OccurredOn:  core.NewDate(2024, 1, 1),
	}, 2*time.Millisecond)
	out := buf.String()
	assert.Contains(t, out, "entry_id=7")
	assert.Contains(t, out, "kind=expense")
	assert.Contains(t, out, "occurred_on=2024-01-01")

	buf.Reset()
	s.LogError(ctx, OpCreate, core.ErrEmptyCategory)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "error_type=validation_error")

	buf.Reset()
	s.LogError(ctx, OpList, core.NewStorageError("list entries", core.ErrConnectionFailed, errors.New("closed")))
	assert.Contains(t, buf.String(), "level=ERROR")
}

func TestNewStructuredLogger_NilLogger(t *testing.T) {
	s := NewStructuredLogger(nil)
	require.NotNil(t, s.Logger())
	s.LogError(context.Background(), OpList, errors.New("ignored"))
}
