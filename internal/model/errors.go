package model

import "errors"

// ErrNotFound is returned by the store when an ID matches nothing.
var ErrNotFound = errors.New("item not found")
