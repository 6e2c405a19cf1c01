package kvstore

import "errors"

// ErrNotFound is returned by Load when the key has never been saved.
var ErrNotFound = errors.New("kvstore: key not found")

// Storage is a synchronous key/value store for serialized values.
type Storage interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
}
