package store

import "calendar-pro/internal/model"

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Observer) func() {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()

	s.nextObsID++
	id := s.nextObsID
	s.observers = append(s.observers, observerEntry{id: id, fn: fn})

	return func() {
		s.obsMu.Lock()
		defer s.obsMu.Unlock()
		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// publish runs observers in subscription order. Never call it with s.mu held.
func (s *Store) publish(c model.Change) {
	s.obsMu.Lock()
	obs := make([]Observer, len(s.observers))
	for i, o := range s.observers {
		obs[i] = o.fn
	}
	s.obsMu.Unlock()

	for _, fn := range obs {
		fn(c)
	}
}
