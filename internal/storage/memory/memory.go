package memory

import (
	"context"
	"slices"
	"sync"

	"tuimoney/internal/core"
)

// Store is an in-memory core.Repository. IDs start at 1 and are never reused.
type Store struct {
	mu     sync.Mutex
	lastID int64
	items  []core.Entry

	// listErr and addErr, when set, fail List and Add; used to exercise
	// error paths.
	listErr error
	addErr  error
}

var _ core.Repository = (*Store)(nil)

func New() *Store {
	return &Store{}
}

// NewWithEntries seeds the store by validating and adding each candidate.
func NewWithEntries(candidates ...core.NewEntry) (*Store, error) {
	s := New()
	for _, c := range candidates {
		v, err := core.Validate(c)
		if err != nil {
			return nil, err
		}
		if _, err := s.Add(context.Background(), v); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add stores the entry and assigns the next ID.
func (s *Store) Add(_ context.Context, e core.ValidEntry) (core.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.addErr != nil {
		return core.Entry{}, core.NewStorageError("create entry", core.ErrConnectionFailed, s.addErr)
	}
	s.lastID++
	entry := core.Entry{
		ID:          s.lastID,
		Kind:        e.Kind(),
		AmountCents: e.AmountCents(),
		Category:    e.Category(),
		Note:        e.Note(),
		OccurredOn:  e.OccurredOn(),
	}
	s.items = append(s.items, entry)
	return entry, nil
}

// List returns matching entries, newest date first, then highest ID first.
func (s *Store) List(_ context.Context, f core.EntryFilter) ([]core.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, core.NewStorageError("list entries", core.ErrConnectionFailed, s.listErr)
	}
	out := make([]core.Entry, 0, len(s.items))
	for _, e := range s.items {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(a, b core.Entry) int {
		if c := b.OccurredOn.Compare(a.OccurredOn.Time); c != 0 {
			return c
		}
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		}
		return 0
	})
	return out, nil
}

// FailList makes subsequent List calls fail with err until cleared with nil.
func (s *Store) FailList(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listErr = err
}

// FailAdd makes subsequent Add calls fail with err until cleared with nil.
func (s *Store) FailAdd(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addErr = err
}
