package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: key not found")

// UpdateFunc receives the current value (nil when the key is absent) and
// returns the value to store. It may run more than once when a driver
// retries after a conflicting write.
type UpdateFunc func(current []byte) ([]byte, error)

// Store is the durable key-value store behind a visitor's cart and profile.
// Get returns ErrNotFound when the key has never been written. Update is an
// atomic read-modify-write: concurrent Updates of one key never lose a write.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Update(ctx context.Context, key string, fn UpdateFunc) error
}

// Pinger is implemented by drivers that talk to an external service.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Closer is implemented by drivers holding a connection.
type Closer interface {
	Close() error
}
