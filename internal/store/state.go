package store

import (
	"context"
	"slices"

	"calendar-pro/internal/model"
)

// Replace swaps the given collections under one lock. A nil pointer leaves
// that collection untouched; a non-nil pointer replaces it, even when empty.
func (s *Store) Replace(ctx context.Context, events *[]model.Event, tasks *[]model.Task) {
	if events == nil && tasks == nil {
		return
	}

	s.mu.Lock()
	if events != nil {
		s.events = nonNil(slices.Clone(*events))
		s.save(ctx, keyEvents, s.events)
	}
	if tasks != nil {
		s.tasks = nonNil(slices.Clone(*tasks))
		s.save(ctx, keyTasks, s.tasks)
	}
	s.bumpLastID()
	s.mu.Unlock()

	if events != nil {
		s.publish(model.Change{Kind: model.ChangeEventsReplaced})
	}
	if tasks != nil {
		s.publish(model.Change{Kind: model.ChangeTasksReplaced})
	}
}

func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}

func (s *Store) Theme() model.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetTheme stores and persists t.
func (s *Store) SetTheme(ctx context.Context, t model.Theme) {
	s.mu.Lock()
	s.theme = t
	s.save(ctx, keyTheme, s.theme)
	s.mu.Unlock()

	s.publish(model.Change{Kind: model.ChangeThemeChanged})
}

// ToggleTheme flips the theme and returns the new value.
func (s *Store) ToggleTheme(ctx context.Context) model.Theme {
	s.mu.Lock()
	s.theme = s.theme.Toggle()
	t := s.theme
	s.save(ctx, keyTheme, s.theme)
	s.mu.Unlock()

	s.publish(model.Change{Kind: model.ChangeThemeChanged})
	return t
}

func (s *Store) Visited() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visited
}

// MarkVisited sets the visited flag. It reports whether this was the first visit.
func (s *Store) MarkVisited(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.visited {
		return false
	}
	s.visited = true
	s.save(ctx, keyVisited, true)
	return true
}

func (s *Store) View() model.View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// SetView replaces the in-memory view. It is never persisted.
func (s *Store) SetView(v model.View) {
	s.mu.Lock()
	s.view = v
	s.mu.Unlock()

	s.publish(model.Change{Kind: model.ChangeViewChanged})
}
