package usecase

import (
	"context"

	"calendar-pro/internal/calendar"
	"calendar-pro/internal/task"
)

// Stats returns the sidebar counters.
func (uc *implUseCase) Stats(ctx context.Context) (calendar.StatsOutput, error) {
	tasks := uc.repo.Tasks()
	return calendar.StatsOutput{
		Events:         len(uc.repo.Events()),
		Tasks:          len(tasks),
		Completed:      task.CountCompleted(tasks),
		CompletionRate: task.CompletionRate(tasks),
	}, nil
}
