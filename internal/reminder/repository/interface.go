package repository

import (
	"context"
	"errors"

	"elder-advice-agent/internal/model"
)

// ErrNotFound is returned for unknown reminder ids.
var ErrNotFound = errors.New("reminder not found")

// Repository is the interface for reminder data access.
type Repository interface {
	Create(ctx context.Context, rem model.Reminder) error
	Get(ctx context.Context, id string) (model.Reminder, error)
	Update(ctx context.Context, rem model.Reminder) error
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]model.Reminder, error)
	All(ctx context.Context) ([]model.Reminder, error)
}
