package checkin

import "time"

// Prefs binds an elder to a caregiver contact and the silence window
// after which an unanswered check-in escalates.
type Prefs struct {
	UserID               string `json:"userId"`
	CaregiverContact     string `json:"caregiverContact"`
	EscalateAfterMinutes int    `json:"escalateAfterMinutes"`
}

// State tracks the latest check-in prompt and response per elder.
type State struct {
	UserID       string     `json:"userId"`
	LastPrompt   *time.Time `json:"lastPrompt,omitempty"`
	LastResponse *time.Time `json:"lastResponse,omitempty"`
}

// Status is the escalation evaluation result.
type Status struct {
	UserID           string     `json:"userId"`
	LastPrompt       *time.Time `json:"lastPrompt,omitempty"`
	LastResponse     *time.Time `json:"lastResponse,omitempty"`
	EscalationNeeded bool       `json:"escalationNeeded"`
}

// Escalation is one recorded caregiver alert.
type Escalation struct {
	UserID           string    `json:"userId"`
	CaregiverContact string    `json:"caregiverContact"`
	At               time.Time `json:"at"`
}
