// Package memory is a map-backed kv repository. Values are copied on the way
// in and out so callers cannot alias stored bytes.
package memory

import (
	"context"
	"sync"
)

type Repository struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func New() *Repository {
	return &Repository{data: make(map[string][]byte)}
}

func (r *Repository) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.data[key]
	if !ok {
		return nil, nil
	}
	return clone(v), nil
}

func (r *Repository) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[key] = clone(value)
	return nil
}

func (r *Repository) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.data, key)
	return nil
}

func (r *Repository) List(ctx context.Context) (map[string][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]byte, len(r.data))
	for k, v := range r.data {
		out[k] = clone(v)
	}
	return out, nil
}

func (r *Repository) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = make(map[string][]byte)
	return nil
}

func (r *Repository) Close() error {
	return nil
}

func clone(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return append([]byte(nil), b...)
}
