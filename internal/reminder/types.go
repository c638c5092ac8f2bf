package reminder

import "time"

// CreateInput carries the fields for a new reminder.
type CreateInput struct {
	Text string
	When time.Time
}

// SnoozeInput carries the snooze duration. Minutes <= 0 falls back to
// DefaultSnoozeMinutes.
type SnoozeInput struct {
	Minutes int
}

// DefaultSnoozeMinutes is applied when no snooze duration is given.
const DefaultSnoozeMinutes = 10
