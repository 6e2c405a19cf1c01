package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"calendar-pro/internal/model"
	"calendar-pro/pkg/kvstore"
)

const (
	keyEvents  = "events"
	keyTasks   = "tasks"
	keyTheme   = "theme"
	keyVisited = "hasVisited"
)

// Key returns the namespaced storage key for name.
func (s *Store) Key(name string) string {
	return s.namespace + "_" + name
}

// Load restores state from storage. A missing key, a read failure or a
// decode failure leaves the default for that key in place.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var events []model.Event
	if s.loadJSON(ctx, keyEvents, &events) && events != nil {
		s.events = events
	}

	var tasks []model.Task
	if s.loadJSON(ctx, keyTasks, &tasks) && tasks != nil {
		s.tasks = tasks
	}

	var theme string
	if s.loadJSON(ctx, keyTheme, &theme) {
		s.theme = model.ParseTheme(theme)
	}

	var visited bool
	if s.loadJSON(ctx, keyVisited, &visited) {
		s.visited = visited
	}

	s.bumpLastID()
	s.l.Infof(ctx, "store.Load: %d events, %d tasks, theme=%s", len(s.events), len(s.tasks), s.theme)
}

func (s *Store) loadJSON(ctx context.Context, name string, dst any) bool {
	key := s.Key(name)
	data, err := s.storage.Load(key)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			s.l.Warnf(ctx, "store.Load %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.l.Warnf(ctx, "store.Load %s: decode: %v", key, err)
		return false
	}
	return true
}

// save must be called with s.mu held. Failures are logged and swallowed.
func (s *Store) save(ctx context.Context, name string, v any) {
	key := s.Key(name)
	data, err := json.Marshal(v)
	if err != nil {
		s.l.Errorf(ctx, "store.save %s: encode: %v", key, err)
		return
	}
	if err := s.storage.Save(key, data); err != nil {
		s.l.Errorf(ctx, "store.save %s: %v", key, err)
	}
}

// nextID must be called with s.mu held.
func (s *Store) nextID() string {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

// bumpLastID keeps new IDs above every numeric ID already held.
func (s *Store) bumpLastID() {
	for _, e := range s.events {
		s.observeID(e.ID)
	}
	for _, t := range s.tasks {
		s.observeID(t.ID)
	}
}

func (s *Store) observeID(id string) {
	if n, err := strconv.ParseInt(id, 10, 64); err == nil && n > s.lastID {
		s.lastID = n
	}
}
