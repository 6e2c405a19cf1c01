package usecase

import (
	"context"
	"strings"

	"calendar-pro/internal/model"
	"calendar-pro/internal/notify"
	"calendar-pro/internal/task"
)

// Create validates the input and stores a new incomplete task.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.CreateOutput{}, task.ErrEmptyTitle
	}

	priority := model.Priority(strings.ToLower(strings.TrimSpace(input.Priority)))
	if priority == "" {
		priority = model.DefaultPriority
	}
	if !priority.Valid() {
		return task.CreateOutput{}, task.ErrInvalidPriority
	}

	due, err := uc.dateMath.ResolveKey(input.DueDate, uc.repo.Now())
	if err != nil {
		uc.l.Debugf(ctx, "uc.Create ResolveKey(%q): %v", input.DueDate, err)
		return task.CreateOutput{}, task.ErrInvalidDueDate
	}

	t := uc.repo.AddTask(ctx, model.Task{
		Title:    title,
		Priority: priority,
		DueDate:  due,
	})
	uc.l.Infof(ctx, "uc.Create: task %s (%s)", t.ID, t.Priority)
	uc.notifier.Push(ctx, notify.KindSuccess, notify.MsgTaskAdded)

	return task.CreateOutput{Task: t}, nil
}
