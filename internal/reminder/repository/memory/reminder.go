// Package memory is an in-process reminder store. Data does not survive
// restarts; durability is out of scope for this service.
package memory

import (
	"context"
	"sort"
	"sync"

	"elder-advice-agent/internal/model"
	"elder-advice-agent/internal/reminder/repository"
)

type store struct {
	mu        sync.RWMutex
	reminders map[string]model.Reminder
}

// New creates an empty in-memory reminder repository.
func New() repository.Repository {
	return &store{reminders: make(map[string]model.Reminder)}
}

func (s *store) Create(ctx context.Context, rem model.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reminders[rem.ID] = rem
	return nil
}

func (s *store) Get(ctx context.Context, id string) (model.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rem, ok := s.reminders[id]
	if !ok {
		return model.Reminder{}, repository.ErrNotFound
	}
	return rem, nil
}

func (s *store) Update(ctx context.Context, rem model.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reminders[rem.ID]; !ok {
		return repository.ErrNotFound
	}
	s.reminders[rem.ID] = rem
	return nil
}

func (s *store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reminders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.reminders, id)
	return nil
}

func (s *store) ListByUser(ctx context.Context, userID string) ([]model.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Reminder, 0)
	for _, rem := range s.reminders {
		if rem.UserID == userID {
			out = append(out, rem)
		}
	}
	sortByWhen(out)
	return out, nil
}

func (s *store) All(ctx context.Context) ([]model.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Reminder, 0, len(s.reminders))
	for _, rem := range s.reminders {
		out = append(out, rem)
	}
	sortByWhen(out)
	return out, nil
}

func sortByWhen(rems []model.Reminder) {
	sort.Slice(rems, func(i, j int) bool {
		if rems[i].When.Equal(rems[j].When) {
			return rems[i].ID < rems[j].ID
		}
		return rems[i].When.Before(rems[j].When)
	})
}
