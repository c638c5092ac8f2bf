// Package calendar keeps elder appointments in memory and mirrors them
// to Google Calendar when a client is configured. The local store is the
// source of truth; the Google sync is best effort.
package calendar

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"elder-advice-agent/internal/audit"
	"elder-advice-agent/pkg/gcalendar"
	pkgLog "elder-advice-agent/pkg/log"
)

// Domain errors.
var (
	ErrMissingUserID = errors.New("user id is required")
	ErrMissingTitle  = errors.New("event title is required")
	ErrMissingStart  = errors.New("event start time is required")
)

// Syncer is the slice of the Google Calendar client the service uses.
type Syncer interface {
	CreateEvent(ctx context.Context, appt gcalendar.Appointment) (*gcalendar.CreatedEvent, error)
}

// Service stores appointments per user.
type Service struct {
	mu     sync.RWMutex
	events map[string]Event

	l      pkgLog.Logger
	syncer Syncer // nil when Google sync is not configured
	audit  *audit.Log
}

// NewService creates the calendar service. syncer may be nil.
func NewService(l pkgLog.Logger, syncer Syncer, auditLog *audit.Log) *Service {
	return &Service{
		events: make(map[string]Event),
		l:      l,
		syncer: syncer,
		audit:  auditLog,
	}
}

// Create stores an appointment and mirrors it to Google Calendar when a
// syncer is available. Sync failures are logged, never fatal.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Event, error) {
	if req.UserID == "" {
		return Event{}, ErrMissingUserID
	}
	if req.Title == "" {
		return Event{}, ErrMissingTitle
	}
	if req.Start.IsZero() {
		return Event{}, ErrMissingStart
	}

	ev := Event{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Title:     req.Title,
		Start:     req.Start.UTC(),
		CreatedAt: time.Now().UTC(),
	}

	if s.syncer != nil {
		created, err := s.syncer.CreateEvent(ctx, gcalendar.Appointment{
			Title: ev.Title,
			Start: ev.Start,
		})
		if err != nil {
			s.l.Warnf(ctx, "calendar: google sync failed for %s: %v", ev.ID, err)
		} else {
			ev.GoogleEventID = created.EventID
			ev.GoogleLink = created.HTMLLink
		}
	}

	s.mu.Lock()
	s.events[ev.ID] = ev
	s.mu.Unlock()

	s.audit.Record(req.UserID, "calendar_create", "id="+ev.ID)
	return ev, nil
}

// ListForUser returns the user's appointments ordered by start time.
func (s *Service) ListForUser(userID string) ([]Event, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Event, 0)
	for _, ev := range s.events {
		if ev.UserID == userID {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start.Equal(out[j].Start) {
			return out[i].ID < out[j].ID
		}
		return out[i].Start.Before(out[j].Start)
	})
	return out, nil
}
