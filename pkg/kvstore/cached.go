package kvstore

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cached puts a bounded LRU in front of another Storage.
// Writes go to the backend first and only reach the cache on success.
type Cached struct {
	next  Storage
	cache *lru.Cache[string, []byte]
}

// NewCached wraps next with an LRU holding up to size values.
func NewCached(next Storage, size int) (*Cached, error) {
	if next == nil {
		return nil, fmt.Errorf("kvstore: backend is required")
	}
	cache, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, fmt.Errorf("kvstore: lru: %w", err)
	}
	return &Cached{next: next, cache: cache}, nil
}

func (c *Cached) Load(key string) ([]byte, error) {
	if v, ok := c.cache.Get(key); ok {
		return append([]byte(nil), v...), nil
	}
	v, err := c.next.Load(key)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, append([]byte(nil), v...))
	return v, nil
}

func (c *Cached) Save(key string, value []byte) error {
	if err := c.next.Save(key, value); err != nil {
		c.cache.Remove(key)
		return err
	}
	c.cache.Add(key, append([]byte(nil), value...))
	return nil
}

// Len reports how many values are cached.
func (c *Cached) Len() int {
	return c.cache.Len()
}
