package reminder

import (
	"context"
	"time"

	"elder-advice-agent/internal/model"
)

// UseCase defines the business logic interface for the reminder domain.
type UseCase interface {
	// Create registers a new reminder for a user.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Reminder, error)

	// List returns all reminders owned by the scoped user.
	List(ctx context.Context, sc model.Scope) ([]model.Reminder, error)

	// Confirm marks a reminder as acknowledged so it stops firing.
	Confirm(ctx context.Context, sc model.Scope, id string) (model.Reminder, error)

	// Snooze pushes the reminder's next firing time forward.
	Snooze(ctx context.Context, sc model.Scope, id string, input SnoozeInput) (model.Reminder, error)

	// Delete removes a reminder.
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Due returns all unconfirmed reminders whose target time has passed.
	Due(ctx context.Context, now time.Time) ([]model.Reminder, error)
}
