// Package kv describes the durable key/value store the account list is
// persisted into. Implementations live in the sub-packages.
package kv

import "context"

// Repository is a flat byte-valued key/value store.
type Repository interface {
	// Get returns the value stored under key, or (nil, nil) if there is none.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set inserts or overwrites the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns every stored pair.
	List(ctx context.Context) (map[string][]byte, error)

	// Clear removes every stored pair.
	Clear(ctx context.Context) error

	// Close releases the underlying connection or client.
	Close() error
}
