package store

import (
	"sync"
	"time"

	"calendar-pro/internal/model"
	"calendar-pro/pkg/kvstore"
	"calendar-pro/pkg/log"
)

const defaultNamespace = "calendar"

// Observer receives every change after the store lock is released.
type Observer func(model.Change)

// Options tunes a Store. Zero values pick defaults.
type Options struct {
	Namespace string
	Now       func() time.Time
}

// Store owns the application state and mirrors it to storage.
// It is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	storage   kvstore.Storage
	l         log.Logger
	now       func() time.Time
	namespace string

	events  []model.Event
	tasks   []model.Task
	theme   model.Theme
	visited bool
	view    model.View
	lastID  int64

	obsMu     sync.Mutex
	observers []observerEntry
	nextObsID int
}

type observerEntry struct {
	id int
	fn Observer
}

// New creates an empty Store. Call Load to restore persisted state.
func New(storage kvstore.Storage, l log.Logger, opt Options) *Store {
	if opt.Namespace == "" {
		opt.Namespace = defaultNamespace
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}
	return &Store{
		storage:   storage,
		l:         l,
		now:       opt.Now,
		namespace: opt.Namespace,
		events:    []model.Event{},
		tasks:     []model.Task{},
		theme:     model.ThemeLight,
		view:      model.ViewOf(opt.Now()),
	}
}

// Now returns the store clock reading.
func (s *Store) Now() time.Time {
	return s.now()
}
