package cache

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidResultType reports that a cached value could not be converted to
// the type requested through GetOrFetch.
var ErrInvalidResultType = errors.New("cache: result does not match requested type")

// KeySerializer builds a canonical query key from an operation name and its
// filter arguments. Logically identical tuples must produce identical keys.
type KeySerializer interface {
	SerializeKey(op string, args ...any) string
}

// FetchFn is the signature CacheService expects when fetching from the
// directory on a miss.
type FetchFn[T any] func(ctx context.Context) (T, error)

// CacheService is the session-scoped read-through cache the list screens and
// option loaders share. A successful fetch for a key is performed at most
// once per session; failures and cancellations leave no entry behind.
type CacheService interface {
	GetOrFetch(ctx context.Context, key string, fetchFn any) (any, error)
	Delete(ctx context.Context, key string) error
	Reset(ctx context.Context) error
}

// GetOrFetch is the type-safe wrapper over CacheService.GetOrFetch.
func GetOrFetch[T any](ctx context.Context, service CacheService, key string, fetchFn FetchFn[T]) (T, error) {
	var zero T

	result, err := service.GetOrFetch(ctx, key, fetchFn)
	if err != nil {
		return zero, err
	}
	if result == nil {
		return zero, nil
	}

	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("%w: have %T", ErrInvalidResultType, result)
	}
	return typed, nil
}
