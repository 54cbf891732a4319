// Package kv provides the string-keyed persistent store the state container
// mirrors its slices into. Implementations are expected to be fast and
// synchronous; callers treat writes as best-effort and never depend on a
// write succeeding within the same interaction.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key is absent.
var ErrNotFound = errors.New("kv: key not found")

// Store is a synchronous string-keyed storage facility.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// IsNotFound reports whether the error indicates an absent key.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
