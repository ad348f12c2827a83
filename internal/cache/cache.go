package cache

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("key not found in cache")
	ErrInvalidValue = errors.New("invalid value for cache")
	ErrClosed       = errors.New("cache is closed")
	ErrInvalidKey   = errors.New("invalid cache key")
)

// Cache is the key/value store the client keeps its local session in. Values are
// JSON encoded; Get decodes into the pointer it is given.
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	Get(ctx context.Context, key string, value interface{}) error

	Delete(ctx context.Context, key string) error

	Close() error
}

type Options struct {
	// DefaultTTL applies when Set is called with a zero ttl. Zero keeps entries forever.
	DefaultTTL time.Duration

	RedisURL string

	RedisPassword string

	RedisDB int
}
