package usecase

import (
	"context"
	"errors"

	"calendar-pro/internal/model"
	"calendar-pro/internal/notify"
	"calendar-pro/internal/task"
)

// Toggle flips a task between completed and pending.
func (uc *implUseCase) Toggle(ctx context.Context, id string) (task.ToggleOutput, error) {
	t, err := uc.repo.ToggleTask(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return task.ToggleOutput{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Toggle ToggleTask: %v", err)
		return task.ToggleOutput{}, err
	}
	return task.ToggleOutput{Task: t}, nil
}

// Delete removes a task by ID.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	uc.notifier.Push(ctx, notify.KindSuccess, notify.MsgTaskDeleted)
	return nil
}
