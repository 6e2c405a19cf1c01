package store

import (
	"context"
	"slices"

	"calendar-pro/internal/model"
)

// Events returns a copy of all events in insertion order.
func (s *Store) Events() []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.events)
}

// AddEvent assigns ID and CreatedAt, appends e and persists the collection.
func (s *Store) AddEvent(ctx context.Context, e model.Event) model.Event {
	s.mu.Lock()
	e.ID = s.nextID()
	e.CreatedAt = s.now().UTC().Format(model.TimestampLayout)
	s.events = append(s.events, e)
	s.save(ctx, keyEvents, s.events)
	s.mu.Unlock()

	s.publish(model.Change{Kind: model.ChangeEventAdded, ID: e.ID})
	return e
}

// AppendEvents adds already-built events, keeping their fields but
// issuing fresh IDs. Used by calendar imports.
func (s *Store) AppendEvents(ctx context.Context, events []model.Event) []model.Event {
	if len(events) == 0 {
		return nil
	}

	s.mu.Lock()
	added := make([]model.Event, len(events))
	for i, e := range events {
		e.ID = s.nextID()
		if e.CreatedAt == "" {
			e.CreatedAt = s.now().UTC().Format(model.TimestampLayout)
		}
		added[i] = e
	}
	s.events = append(s.events, added...)
	s.save(ctx, keyEvents, s.events)
	s.mu.Unlock()

	s.publish(model.Change{Kind: model.ChangeEventsReplaced})
	return added
}

// DeleteEvent removes the event with the given id.
func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	s.mu.Lock()
	i := slices.IndexFunc(s.events, func(e model.Event) bool { return e.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return model.ErrNotFound
	}
	s.events = slices.Delete(s.events, i, i+1)
	s.save(ctx, keyEvents, s.events)
	s.mu.Unlock()

	s.publish(model.Change{Kind: model.ChangeEventDeleted, ID: id})
	return nil
}
