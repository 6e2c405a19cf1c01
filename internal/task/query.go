package task

import (
	"math"

	"calendar-pro/internal/model"
)

// PendingTasks returns incomplete tasks in insertion order, at most limit.
// A non-positive limit returns every incomplete task.
func PendingTasks(tasks []model.Task, limit int) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		out = append(out, t)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// CompletionRate returns the completed share as a whole percentage,
// rounded half away from zero. No tasks means 0.
func CompletionRate(tasks []model.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	return int(math.Round(float64(CountCompleted(tasks)) / float64(len(tasks)) * 100))
}

// CountCompleted returns how many tasks are completed.
func CountCompleted(tasks []model.Task) int {
	n := 0
	for _, t := range tasks {
		if t.Completed {
			n++
		}
	}
	return n
}
