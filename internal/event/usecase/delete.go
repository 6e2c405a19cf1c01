package usecase

import (
	"context"
	"errors"

	"calendar-pro/internal/event"
	"calendar-pro/internal/model"
	"calendar-pro/internal/notify"
)

// Delete removes an event by ID.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteEvent(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return event.ErrEventNotFound
		}
		uc.l.Errorf(ctx, "uc.Delete DeleteEvent: %v", err)
		return err
	}
	uc.notifier.Push(ctx, notify.KindSuccess, notify.MsgEventDeleted)
	return nil
}
