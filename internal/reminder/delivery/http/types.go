package http

import "time"

// CreateRequest is the payload for creating a reminder.
type CreateRequest struct {
	UserID string    `json:"userId" binding:"required"`
	Text   string    `json:"text" binding:"required"`
	When   time.Time `json:"when" binding:"required"`
}

// ActionRequest identifies the acting user for confirm, snooze, and
// delete. Minutes only applies to snooze.
type ActionRequest struct {
	Actor   string `json:"actor" binding:"required"`
	Minutes int    `json:"minutes,omitempty"`
}
