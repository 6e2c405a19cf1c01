package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"calendar-pro/pkg/log"
)

const (
	DefaultTTL      = 3 * time.Second
	DefaultCapacity = 64
)

type Options struct {
	TTL      time.Duration
	Capacity int
}

type implNotifier struct {
	l     log.Logger
	cache *expirable.LRU[string, Notification]
}

// New creates a Notifier whose entries expire after opt.TTL.
// When more than opt.Capacity messages are live the oldest is dropped.
func New(l log.Logger, opt Options) Notifier {
	if opt.TTL <= 0 {
		opt.TTL = DefaultTTL
	}
	if opt.Capacity <= 0 {
		opt.Capacity = DefaultCapacity
	}
	return &implNotifier{
		l:     l,
		cache: expirable.NewLRU[string, Notification](opt.Capacity, nil, opt.TTL),
	}
}

func (n *implNotifier) Push(ctx context.Context, kind Kind, message string) Notification {
	nt := Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		CreatedAt: time.Now(),
	}
	n.cache.Add(nt.ID, nt)
	n.l.Debugf(ctx, "notify.Push %s: %s", kind, message)
	return nt
}

// Recent returns live notifications, oldest first.
func (n *implNotifier) Recent(ctx context.Context) []Notification {
	values := n.cache.Values()
	// Values keeps zero slots for entries that expired but were not reaped yet.
	live := make([]Notification, 0, len(values))
	for _, v := range values {
		if v.ID != "" {
			live = append(live, v)
		}
	}
	return live
}
