package core

import (
	"context"
	"errors"
	"fmt"
)

// Repository is the persistence contract for entries.
type Repository interface {
	// Add persists a validated entry and returns it with its assigned ID.
	Add(ctx context.Context, e ValidEntry) (Entry, error)

	// List returns entries matching f, most recent first; ties are broken by
	// ID descending.
	List(ctx context.Context, f EntryFilter) ([]Entry, error)
}

// Storage error kinds.
var (
	ErrConnectionFailed    = errors.New("connection failed")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrNotFound            = errors.New("not found")
)

// StorageError reports a failed repository operation. Kind is one of the
// storage error kinds above; Err is the underlying cause.
type StorageError struct {
	Op   string
	Kind error
	Err  error
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *StorageError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewStorageError builds a StorageError for op.
func NewStorageError(op string, kind, err error) *StorageError {
	return &StorageError{Op: op, Kind: kind, Err: err}
}
