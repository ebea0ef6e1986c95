package store

import "context"

// KV is the durable key-value storage the application state lives in. The
// state layer reads its slots once at start and writes them wholesale on
// every mutation; the backend only needs get, set, and clear.
type KV interface {
	Close(ctx context.Context) error
	EnsureSchema(ctx context.Context) error

	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Clear(ctx context.Context) error
}
