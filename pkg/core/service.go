package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

// SkipSave can be returned by an Update function to end the unit of work
// without writing anything back. Update then returns nil.
var SkipSave = errors.New("skip save")

// Service handles the business logic for thoughts.
// Every operation is one load, at most one mutation and, for mutations, one save.
type Service struct {
	repo   Repository
	clock  Clock
	logger *slog.Logger

	mu         sync.RWMutex
	lastLoaded int
	highWater  uint64
	loadedAt   *time.Time
}

// NewService creates a new Service. A nil clock defaults to time.Now and a nil
// logger discards everything.
func NewService(repo Repository, clock Clock, logger *slog.Logger) *Service {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{repo: repo, clock: clock, logger: logger}
}

// Repository returns the underlying storage adapter.
func (s *Service) Repository() Repository {
	return s.repo
}

// Update loads the stored thoughts, applies fn and saves the result.
// If fn fails, nothing is written and its error is returned unchanged.
func (s *Service) Update(ctx context.Context, fn func([]Thought) ([]Thought, error)) error {
	thoughts, err := s.load(ctx)
	if err != nil {
		return err
	}

	next, err := fn(thoughts)
	if errors.Is(err, SkipSave) {
		s.logger.Debug("nothing changed, skipping save")
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to save thoughts: %w", err)
	}
	s.record(next)
	s.logger.Debug("thoughts saved", "count", len(next))
	return nil
}

// Add stores a new thought and returns it. Its id is above every id this
// service has seen, including ids removed since.
func (s *Service) Add(ctx context.Context, message, tags string) (Thought, error) {
	var created Thought
	err := s.Update(ctx, func(thoughts []Thought) ([]Thought, error) {
		var next []Thought
		var err error
		next, created, err = Append(thoughts, s.HighWater(), message, tags, s.clock())
		if err != nil {
			return nil, fmt.Errorf("failed to add thought: %w", err)
		}
		return next, nil
	})
	if err != nil {
		return Thought{}, err
	}
	s.logger.Debug("thought added", "id", created.ID, "tags", created.Tags)
	return created, nil
}

// List returns the stored thoughts whose tags contain tag ("" for all).
func (s *Service) List(ctx context.Context, tag string) (Listing, error) {
	thoughts, err := s.load(ctx)
	if err != nil {
		return Listing{}, err
	}
	return Filter(thoughts, tag), nil
}

// Remove deletes the thought with the given id. Removing an unknown id is not
// an error: removed is false and the store is left untouched.
func (s *Service) Remove(ctx context.Context, id string) (removed bool, err error) {
	err = s.Update(ctx, func(thoughts []Thought) ([]Thought, error) {
		var next []Thought
		next, removed = Remove(thoughts, id)
		if !removed {
			return nil, SkipSave
		}
		return next, nil
	})
	if err != nil {
		return false, err
	}
	s.logger.Debug("remove", "id", id, "removed", removed)
	return removed, nil
}

// Clear deletes every thought and reports how many were dropped.
// Callers are expected to confirm with the user before calling it.
func (s *Service) Clear(ctx context.Context) (int, error) {
	var count int
	err := s.Update(ctx, func(thoughts []Thought) ([]Thought, error) {
		count = len(thoughts)
		return Clear(thoughts), nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Watch observes changes in the repository if supported.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	return w.Watch(ctx)
}

func (s *Service) load(ctx context.Context) ([]Thought, error) {
	thoughts, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load thoughts: %w", err)
	}
	s.record(thoughts)
	return thoughts, nil
}

// HighWater returns the highest id loaded or saved during this service's
// lifetime. The file keeps no record of removed ids, so a new service starts
// from the ids present in it.
func (s *Service) HighWater() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.highWater
}

func (s *Service) record(thoughts []Thought) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock()
	s.lastLoaded = len(thoughts)
	s.highWater = max(s.highWater, MaxID(thoughts))
	s.loadedAt = &now
}
