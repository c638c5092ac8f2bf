package gcalendar

import "time"

// Appointment is the data needed to create a calendar event for an
// elder-care appointment (doctor visit, caregiver check-in, etc.).
type Appointment struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Timezone    string
}

// CreatedEvent is the result of creating a calendar event.
type CreatedEvent struct {
	EventID  string
	HTMLLink string
}
