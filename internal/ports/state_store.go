package ports

import "context"

// StateStore is the persisted key-value storage behind the session selection:
// two string keys, durable across CLI invocations. Get returns
// domain.ErrStateKeyNotFound when the key is absent.
type StateStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
