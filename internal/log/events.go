package log

import (
	"context"
	"errors"
	"time"

	"tuimoney/internal/core"
)

// StructuredLogger records application events with consistent field sets.
type StructuredLogger struct {
	logger *Logger
}

// NewStructuredLogger creates a structured logger around l.
func NewStructuredLogger(l *Logger) *StructuredLogger {
	if l == nil {
		l = Discard()
	}
	return &StructuredLogger{logger: l}
}

// Logger returns the wrapped logger.
func (s *StructuredLogger) Logger() *Logger {
	return s.logger
}

// LogEntryRecorded logs a successfully stored entry.
func (s *StructuredLogger) LogEntryRecorded(ctx context.Context, e core.Entry, duration time.Duration) {
	fields := NewFields().
		WithOperation(OpCreate).
		WithEntryID(e.ID).
		WithEntry(e.Kind.String(), e.AmountCents, e.Category, e.OccurredOn.String())
	fields[FieldDuration] = duration.Milliseconds()
	fields[FieldSuccess] = true

	s.logger.WithComponent(ComponentEntry).InfoContext(ctx, "Entry recorded", fields.ToSlice()...)
}

// LogEntriesListed logs the outcome of a list query.
func (s *StructuredLogger) LogEntriesListed(ctx context.Context, f core.EntryFilter, count int) {
	fields := NewFields().WithOperation(OpList)
	fields[FieldFilter] = f.String()
	fields[FieldCount] = count

	s.logger.WithComponent(ComponentEntry).DebugContext(ctx, "Entries listed", fields.ToSlice()...)
}

// LogError logs err at the level its category deserves. Validation
// failures are user input mistakes and stay at warn.
func (s *StructuredLogger) LogError(ctx context.Context, op string, err error) {
	errType := ErrorType(err)
	fields := NewFields().WithOperation(op).WithError(err).WithErrorType(errType)

	l := s.logger.WithComponent(ComponentEntry)
	if errType == ErrorTypeValidation {
		l.WarnContext(ctx, "Operation rejected", fields.ToSlice()...)
		return
	}
	l.ErrorContext(ctx, "Operation failed", fields.ToSlice()...)
}

// ErrorType maps an error to one of the ErrorType categories.
func ErrorType(err error) string {
	switch {
	case errors.Is(err, core.ErrValidation):
		return ErrorTypeValidation
	case errors.Is(err, core.ErrConstraintViolation):
		return ErrorTypeConstraint
	case errors.Is(err, core.ErrConnectionFailed):
		return ErrorTypeDatabase
	default:
		return ErrorTypeInternal
	}
}
