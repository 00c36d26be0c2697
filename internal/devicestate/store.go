// Package devicestate keeps the terminal's local key/value state: the
// session identifiers of each logged-in cashier and the last order summary
// shown to them.
package devicestate

import "context"

// Store is a namespaced string key/value store. Get returns an error
// matching errx.ErrNotFound when the key is absent.
type Store interface {
	Get(ctx context.Context, namespace, key string) (string, error)
	Set(ctx context.Context, namespace, key, value string) error
	Delete(ctx context.Context, namespace string, keys ...string) error
	Clear(ctx context.Context, namespace string) error
}
