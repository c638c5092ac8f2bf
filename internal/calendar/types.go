package calendar

import "time"

// Event is an elder-care appointment (doctor visit, caregiver check-in).
type Event struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Title         string    `json:"title"`
	Start         time.Time `json:"start"`
	GoogleEventID string    `json:"googleEventId,omitempty"`
	GoogleLink    string    `json:"googleLink,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CreateRequest is the payload for creating an appointment.
type CreateRequest struct {
	UserID string    `json:"userId" binding:"required"`
	Title  string    `json:"title" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
}
