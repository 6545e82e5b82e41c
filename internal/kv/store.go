package kv

import "context"

// Store is the flat key-value namespace everything in this service persists
// into. GetByPrefix returns the stored values (not the keys) for every key
// under the prefix; callers that need the key encode it into the record.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
	GetByPrefix(ctx context.Context, prefix string) ([]string, error)
}
