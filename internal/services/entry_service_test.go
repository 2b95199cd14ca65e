package services

import (
	"context"
	"errors"
	"testing"

	"tuimoney/internal/core"
	"tuimoney/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRepo records how many times Add reaches storage.
type countingRepo struct {
	core.Repository
	adds int
}

func (r *countingRepo) Add(ctx context.Context, e core.ValidEntry) (core.Entry, error) {
	r.adds++
	return r.Repository.Add(ctx, e)
}

func TestEntryService_Record(t *testing.T) {
	ctx := context.Background()
	repo := &countingRepo{Repository: memory.New()}
	svc := NewEntryService(repo, nil)

	e, err := svc.Record(ctx, core.NewEntry{
		Kind:        core.Expense,
		AmountCents: 500,
		Category:    "  Food ",
		Note:        "lunch",
		OccurredOn:  "2024-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), e.ID)
	assert.Equal(t, "Food", e.Category)
	assert.Equal(t, 1, repo.adds)

	entries, err := svc.List(ctx, core.EntryFilter{})
	require.NoError(t, err)
	assert.Equal(t, []core.Entry{e}, entries)
}

func TestEntryService_RecordValidationSkipsStorage(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		entry   core.NewEntry
		wantErr error
	}{
		{"zero amount", core.NewEntry{Kind: core.Expense, AmountCents: 0, Category: "Food", OccurredOn: "2024-01-01"}, core.ErrInvalidAmount},
		{"blank category", core.NewEntry{Kind: core.Income, AmountCents: 1, Category: "   ", OccurredOn: "2024-01-01"}, core.ErrEmptyCategory},
		{"bad date", core.NewEntry{Kind: core.Income, AmountCents: 1, Category: "Gift", OccurredOn: "2024-13-01"}, core.ErrInvalidDate},
		{"bad kind", core.NewEntry{Kind: "transfer", AmountCents: 1, Category: "Bank", OccurredOn: "2024-01-01"}, core.ErrInvalidKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &countingRepo{Repository: memory.New()}
			svc := NewEntryService(repo, nil)

			_, err := svc.Record(ctx, tt.entry)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, core.ErrValidation)
			assert.Equal(t, 0, repo.adds)
		})
	}
}

func TestEntryService_ListStorageError(t *testing.T) {
	store := memory.New()
	store.FailList(errors.New("disk gone"))
	svc := NewEntryService(store, nil)

	_, err := svc.List(context.Background(), core.EntryFilter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrConnectionFailed)

	var se *core.StorageError
	assert.ErrorAs(t, err, &se)
}
