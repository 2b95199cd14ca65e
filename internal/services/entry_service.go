package services

import (
	"context"
	"fmt"
	"time"

	"tuimoney/internal/core"
	"tuimoney/internal/log"
)

// EntryService validates candidates and hands them to the repository. It is
// the only path from the UI to storage.
type EntryService struct {
	repo   core.Repository
	events *log.StructuredLogger
	now    func() time.Time
}

func NewEntryService(repo core.Repository, logger *log.Logger) *EntryService {
	return &EntryService{
		repo:   repo,
		events: log.NewStructuredLogger(logger),
		now:    time.Now,
	}
}

// Record validates c and stores it. Validation failures never reach the
// repository and are returned as-is so callers can match core.ErrValidation.
func (s *EntryService) Record(ctx context.Context, c core.NewEntry) (core.Entry, error) {
	valid, err := core.Validate(c)
	if err != nil {
		s.events.LogError(ctx, log.OpValidate, err)
		return core.Entry{}, err
	}

	start := s.now()
	entry, err := s.repo.Add(ctx, valid)
	if err != nil {
		s.events.LogError(ctx, log.OpCreate, err)
		return core.Entry{}, fmt.Errorf("save entry: %w", err)
	}

	s.events.LogEntryRecorded(ctx, entry, s.now().Sub(start))
	return entry, nil
}

// List returns the entries matching f, newest first.
func (s *EntryService) List(ctx context.Context, f core.EntryFilter) ([]core.Entry, error) {
	entries, err := s.repo.List(ctx, f)
	if err != nil {
		s.events.LogError(ctx, log.OpList, err)
		return nil, fmt.Errorf("list entries: %w", err)
	}

	s.events.LogEntriesListed(ctx, f, len(entries))
	return entries, nil
}
