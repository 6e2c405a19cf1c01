package usecase

import (
	"context"

	"calendar-pro/internal/task"
)

func (uc *implUseCase) List(ctx context.Context) (task.ListOutput, error) {
	return task.ListOutput{Tasks: uc.repo.Tasks()}, nil
}

// Pending returns up to the configured number of incomplete tasks.
func (uc *implUseCase) Pending(ctx context.Context) (task.PendingOutput, error) {
	all := uc.repo.Tasks()
	pending := task.PendingTasks(all, uc.pendingLimit)
	incomplete := len(all) - task.CountCompleted(all)
	return task.PendingOutput{
		Tasks:     pending,
		Remaining: incomplete - len(pending),
	}, nil
}
