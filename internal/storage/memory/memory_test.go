package memory

import (
	"context"
	"errors"
	"testing"

	"tuimoney/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAddAndList(t *testing.T) {
	s, err := NewWithEntries(
		core.NewEntry{Kind: core.Expense, AmountCents: 100, Category: "Food", OccurredOn: "2024-02-01"},
		core.NewEntry{Kind: core.Expense, AmountCents: 200, Category: "Rent", OccurredOn: "2024-01-01"},
		core.NewEntry{Kind: core.Income, AmountCents: 300, Category: "Food", OccurredOn: "2024-03-01"},
		core.NewEntry{Kind: core.Expense, AmountCents: 400, Category: "Food", OccurredOn: "2024-03-01"},
	)
	require.NoError(t, err)

	entries, err := s.List(context.Background(), core.EntryFilter{})
	require.NoError(t, err)

	var ids []int64
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []int64{4, 3, 1, 2}, ids)

	entries, err = s.List(context.Background(), core.EntryFilter{Category: "Food", To: core.NewDate(2024, 2, 29)})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].ID)
}

func TestNewWithEntriesRejectsInvalid(t *testing.T) {
	_, err := NewWithEntries(core.NewEntry{Kind: core.Expense, AmountCents: 0, Category: "Food", OccurredOn: "2024-01-01"})
	assert.ErrorIs(t, err, core.ErrInvalidAmount)
}

func TestStoreFailList(t *testing.T) {
	s := New()
	s.FailList(errors.New("boom"))

	_, err := s.List(context.Background(), core.EntryFilter{})
	assert.ErrorIs(t, err, core.ErrConnectionFailed)

	s.FailList(nil)
	_, err = s.List(context.Background(), core.EntryFilter{})
	assert.NoError(t, err)
}

func TestStoreFailAdd(t *testing.T) {
	s := New()
	s.FailAdd(errors.New("read-only"))

	v, err := core.Validate(core.NewEntry{Kind: core.Expense, AmountCents: 1, Category: "Food", OccurredOn: "2024-01-01"})
	require.NoError(t, err)

	_, err = s.Add(context.Background(), v)
	assert.ErrorIs(t, err, core.ErrConnectionFailed)

	s.FailAdd(nil)
	e, err := s.Add(context.Background(), v)
	require.NoError(t, err)
	assert.Equal(t, int64(1), e.ID)
}
