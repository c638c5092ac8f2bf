package model

import "time"

// Reminder is a user-owned medication or activity reminder. Reminders
// never alter medication advice; they only schedule nudges.
type Reminder struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	Text         string     `json:"text"`
	When         time.Time  `json:"when"`
	SnoozedUntil *time.Time `json:"snoozedUntil,omitempty"`
	Confirmed    bool       `json:"confirmed"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// DueAt reports whether the reminder should fire at the given instant.
// A snooze moves the target time; confirmation silences it.
func (r Reminder) DueAt(now time.Time) bool {
	if r.Confirmed {
		return false
	}
	target := r.When
	if r.SnoozedUntil != nil {
		target = *r.SnoozedUntil
	}
	return !target.After(now)
}
