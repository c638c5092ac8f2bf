// Package checkin implements daily check-in prompts and caregiver
// escalation when an elder stays silent past their configured window.
package checkin

import (
	"errors"
	"sync"
	"time"

	"elder-advice-agent/internal/audit"
)

// Domain errors.
var (
	ErrMissingUserID  = errors.New("user id is required")
	ErrMissingContact = errors.New("caregiver contact is required")
	ErrInvalidWindow  = errors.New("escalate-after window must be positive")
)

// Service holds per-elder check-in preferences and state in memory.
type Service struct {
	mu          sync.Mutex
	prefs       map[string]Prefs
	state       map[string]*State
	escalations []Escalation
	audit       *audit.Log
}

// NewService creates an empty check-in service.
func NewService(auditLog *audit.Log) *Service {
	return &Service{
		prefs: make(map[string]Prefs),
		state: make(map[string]*State),
		audit: auditLog,
	}
}

// SetPrefs stores or replaces an elder's caregiver preferences.
func (s *Service) SetPrefs(p Prefs) error {
	if p.UserID == "" {
		return ErrMissingUserID
	}
	if p.CaregiverContact == "" {
		return ErrMissingContact
	}
	if p.EscalateAfterMinutes <= 0 {
		return ErrInvalidWindow
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs[p.UserID] = p
	if _, ok := s.state[p.UserID]; !ok {
		s.state[p.UserID] = &State{UserID: p.UserID}
	}

	s.audit.Record(p.UserID, "checkin_set_prefs", "")
	return nil
}

// RecordPrompt marks that a check-in prompt went out to the elder.
func (s *Service) RecordPrompt(userID string, now time.Time) error {
	if userID == "" {
		return ErrMissingUserID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.ensureStateLocked(userID)
	t := now.UTC()
	st.LastPrompt = &t

	s.audit.Record(userID, "checkin_prompt_sent", "")
	return nil
}

// RecordResponse marks that the elder answered.
func (s *Service) RecordResponse(userID string, now time.Time) error {
	if userID == "" {
		return ErrMissingUserID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.ensureStateLocked(userID)
	t := now.UTC()
	st.LastResponse = &t

	s.audit.Record(userID, "checkin_response_received", "")
	return nil
}

// Evaluate checks whether the elder's silence has crossed the escalation
// window. A crossing records an escalation and audits it; repeated
// evaluations keep escalating until a response arrives.
func (s *Service) Evaluate(userID string, now time.Time) (Status, error) {
	if userID == "" {
		return Status{}, ErrMissingUserID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.ensureStateLocked(userID)

	status := Status{
		UserID:       userID,
		LastPrompt:   st.LastPrompt,
		LastResponse: st.LastResponse,
	}

	prefs, ok := s.prefs[userID]
	if !ok || st.LastPrompt == nil {
		return status, nil
	}
	if st.LastResponse != nil && !st.LastResponse.Before(*st.LastPrompt) {
		return status, nil
	}

	window := time.Duration(prefs.EscalateAfterMinutes) * time.Minute
	if now.Sub(*st.LastPrompt) >= window {
		status.EscalationNeeded = true
		esc := Escalation{
			UserID:           userID,
			CaregiverContact: prefs.CaregiverContact,
			At:               now.UTC(),
		}
		s.escalations = append(s.escalations, esc)
		s.audit.Record(userID, "checkin_escalation", "contact="+prefs.CaregiverContact)
	}

	return status, nil
}

// Escalations returns a copy of all recorded caregiver alerts.
func (s *Service) Escalations() []Escalation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Escalation, len(s.escalations))
	copy(out, s.escalations)
	return out
}

// StateFor returns the elder's current check-in state.
func (s *Service) StateFor(userID string) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.state[userID]
	if !ok {
		return State{}, false
	}
	return *st, true
}

func (s *Service) ensureStateLocked(userID string) *State {
	st, ok := s.state[userID]
	if !ok {
		st = &State{UserID: userID}
		s.state[userID] = st
	}
	return st
}
