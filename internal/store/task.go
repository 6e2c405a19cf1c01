package store

import (
	"context"
	"slices"

	"calendar-pro/internal/model"
)

// Tasks returns a copy of all tasks in insertion order.
func (s *Store) Tasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tasks)
}

// AddTask assigns ID and CreatedAt, appends t and persists the collection.
func (s *Store) AddTask(ctx context.Context, t model.Task) model.Task {
	s.mu.Lock()
	t.ID = s.nextID()
	t.CreatedAt = s.now().UTC().Format(model.TimestampLayout)
	t.Completed = false
	s.tasks = append(s.tasks, t)
	s.save(ctx, keyTasks, s.tasks)
	s.mu.Unlock()

	s.publish(model.Change{Kind: model.ChangeTaskAdded, ID: t.ID})
	return t
}

// ToggleTask flips the completed flag and returns the updated task.
func (s *Store) ToggleTask(ctx context.Context, id string) (model.Task, error) {
	s.mu.Lock()
	i := slices.IndexFunc(s.tasks, func(t model.Task) bool { return t.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return model.Task{}, model.ErrNotFound
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	t := s.tasks[i]
	s.save(ctx, keyTasks, s.tasks)
	s.mu.Unlock()

	s.publish(model.Change{Kind: model.ChangeTaskToggled, ID: id})
	return t, nil
}

// DeleteTask removes the task with the given id.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	i := slices.IndexFunc(s.tasks, func(t model.Task) bool { return t.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return model.ErrNotFound
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	s.save(ctx, keyTasks, s.tasks)
	s.mu.Unlock()

	s.publish(model.Change{Kind: model.ChangeTaskDeleted, ID: id})
	return nil
}
