// Package cache is the client's single source of truth for server data
// between fetches. Entries are keyed by resource name plus every parameter
// that affects the fetched value, so a changed filter or locale is a
// different key rather than a race on the same one.
package cache

import (
	"context"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// DeletePrefix removes every entry under a key prefix, e.g. all
	// locale variants of the cart after checkout.
	DeletePrefix(ctx context.Context, prefix string) error
	Close() error
}
