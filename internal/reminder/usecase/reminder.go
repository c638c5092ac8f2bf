package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"elder-advice-agent/internal/model"
	"elder-advice-agent/internal/reminder"
	"elder-advice-agent/internal/reminder/repository"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input reminder.CreateInput) (model.Reminder, error) {
	if sc.UserID == "" {
		return model.Reminder{}, reminder.ErrMissingUserID
	}
	if strings.TrimSpace(input.Text) == "" {
		return model.Reminder{}, reminder.ErrEmptyText
	}
	if input.When.IsZero() {
		return model.Reminder{}, reminder.ErrMissingWhen
	}

	rem := model.Reminder{
		ID:        uuid.NewString(),
		UserID:    sc.UserID,
		Text:      strings.TrimSpace(input.Text),
		When:      input.When.UTC(),
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, rem); err != nil {
		return model.Reminder{}, fmt.Errorf("create reminder: %w", err)
	}

	uc.audit.Record(sc.UserID, "reminder_create", "id="+rem.ID)
	return rem, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.Reminder, error) {
	if sc.UserID == "" {
		return nil, reminder.ErrMissingUserID
	}
	return uc.repo.ListByUser(ctx, sc.UserID)
}

func (uc *implUseCase) Confirm(ctx context.Context, sc model.Scope, id string) (model.Reminder, error) {
	rem, err := uc.owned(ctx, sc, id)
	if err != nil {
		return model.Reminder{}, err
	}

	rem.Confirmed = true
	if err := uc.repo.Update(ctx, rem); err != nil {
		return model.Reminder{}, fmt.Errorf("confirm reminder: %w", err)
	}

	uc.audit.Record(sc.UserID, "reminder_confirm", "id="+id)
	return rem, nil
}

func (uc *implUseCase) Snooze(ctx context.Context, sc model.Scope, id string, input reminder.SnoozeInput) (model.Reminder, error) {
	rem, err := uc.owned(ctx, sc, id)
	if err != nil {
		return model.Reminder{}, err
	}

	minutes := input.Minutes
	if minutes <= 0 {
		minutes = reminder.DefaultSnoozeMinutes
	}
	until := time.Now().UTC().Add(time.Duration(minutes) * time.Minute)
	rem.SnoozedUntil = &until

	if err := uc.repo.Update(ctx, rem); err != nil {
		return model.Reminder{}, fmt.Errorf("snooze reminder: %w", err)
	}

	uc.audit.Record(sc.UserID, "reminder_snooze", fmt.Sprintf("id=%s minutes=%d", id, minutes))
	return rem, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if _, err := uc.owned(ctx, sc, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}

	uc.audit.Record(sc.UserID, "reminder_delete", "id="+id)
	return nil
}

func (uc *implUseCase) Due(ctx context.Context, now time.Time) ([]model.Reminder, error) {
	all, err := uc.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}

	due := make([]model.Reminder, 0)
	for _, rem := range all {
		if rem.DueAt(now) {
			due = append(due, rem)
		}
	}
	return due, nil
}

// owned fetches a reminder and enforces ownership. Cross-user access is
// reported as not-found to avoid leaking ids.
func (uc *implUseCase) owned(ctx context.Context, sc model.Scope, id string) (model.Reminder, error) {
	if sc.UserID == "" {
		return model.Reminder{}, reminder.ErrMissingUserID
	}

	rem, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Reminder{}, reminder.ErrNotFound
		}
		return model.Reminder{}, fmt.Errorf("get reminder: %w", err)
	}
	if rem.UserID != sc.UserID {
		return model.Reminder{}, reminder.ErrNotFound
	}
	return rem, nil
}
