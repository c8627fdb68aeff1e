// Package cacheinfra adapts sturdyc into the session-scoped store behind
// cache.CacheService. sturdyc's in-flight deduplication is what gives the
// screens their at-most-one-fetch-per-key guarantee even when two callers
// race on a cold key.
package cacheinfra

import (
	"context"
	"reflect"
	"time"

	"github.com/viccon/sturdyc"
)

// Config holds the tuning for the session store.
type Config struct {
	// Capacity bounds how many query results the store can hold.
	// Must be greater than 0.
	Capacity int

	// NumShards determines sharding for concurrent access.
	// Must be greater than 0.
	NumShards int

	// SessionTTL is the entry lifetime. Entries are never refreshed; the
	// value just has to outlast a page session. Must be greater than 0.
	SessionTTL time.Duration

	// EvictionPercentage is the share of entries shed when Capacity is
	// reached. Must be between 1 and 100.
	EvictionPercentage int
}

// DefaultConfig returns session-store defaults: room for every query an
// operator realistically issues in one sitting, with a TTL long enough that
// expiry never observably happens.
func DefaultConfig() Config {
	return Config{
		Capacity:           4096,
		NumShards:          64,
		SessionTTL:         12 * time.Hour,
		EvictionPercentage: 10,
	}
}

// Validate checks if the configuration values are usable.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return &ConfigError{Field: "Capacity", Message: "must be greater than 0"}
	}
	if c.NumShards <= 0 {
		return &ConfigError{Field: "NumShards", Message: "must be greater than 0"}
	}
	if c.SessionTTL <= 0 {
		return &ConfigError{Field: "SessionTTL", Message: "must be greater than 0"}
	}
	if c.EvictionPercentage < 1 || c.EvictionPercentage > 100 {
		return &ConfigError{Field: "EvictionPercentage", Message: "must be between 1 and 100"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "config error in field " + e.Field + ": " + e.Message
}

// sessionStore wraps a sturdyc client providing session-bounded memoization.
type sessionStore struct {
	client *sturdyc.Client[any]
}

// NewSessionStore creates the store after validating the configuration.
// Early refreshes and missing-record storage stay disabled on purpose: the
// contract is pure memoization, so a cached entry must never be refetched
// behind the caller's back.
func NewSessionStore(cfg Config) (*sessionStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := sturdyc.New[any](
		cfg.Capacity,
		cfg.NumShards,
		cfg.SessionTTL,
		cfg.EvictionPercentage,
	)

	return &sessionStore{client: client}, nil
}

// GetOrFetch implements cache.CacheService.GetOrFetch. On a miss the fetchFn
// runs once and its result is stored; concurrent callers of the same key are
// coalesced onto that single flight. Errors and cancellations are returned
// to the caller and never stored.
//
// fetchFn must have the shape func(context.Context) (T, error).
func (s *sessionStore) GetOrFetch(ctx context.Context, key string, fetchFn any) (any, error) {
	if err := validateFetchFn(fetchFn); err != nil {
		return nil, err
	}

	return s.client.GetOrFetch(ctx, key, func(ctx context.Context) (any, error) {
		return callFetchFn(ctx, fetchFn)
	})
}

// Delete implements cache.CacheService.Delete.
func (s *sessionStore) Delete(ctx context.Context, key string) error {
	s.client.Delete(key)
	return nil
}

// Reset implements cache.CacheService.Reset. It drops every entry; used when
// the owning session is torn down.
func (s *sessionStore) Reset(ctx context.Context) error {
	for _, key := range s.client.ScanKeys() {
		s.client.Delete(key)
	}
	return nil
}

// validateFetchFn checks that fetchFn matches func(context.Context) (T, error)
// before any reflective call is attempted.
func validateFetchFn(fetchFn any) error {
	if fetchFn == nil {
		return &ConfigError{Field: "fetchFn", Message: "cannot be nil"}
	}

	ft := reflect.TypeOf(fetchFn)
	if ft.Kind() != reflect.Func {
		return &ConfigError{Field: "fetchFn", Message: "must be a function"}
	}
	if ft.NumIn() != 1 || ft.NumOut() != 2 {
		return &ConfigError{Field: "fetchFn", Message: "must have signature func(context.Context) (T, error)"}
	}

	ctxType := reflect.TypeOf((*context.Context)(nil)).Elem()
	if !ft.In(0).Implements(ctxType) {
		return &ConfigError{Field: "fetchFn", Message: "first parameter must be context.Context"}
	}
	errType := reflect.TypeOf((*error)(nil)).Elem()
	if !ft.Out(1).Implements(errType) {
		return &ConfigError{Field: "fetchFn", Message: "second return value must be error"}
	}
	return nil
}

// callFetchFn invokes a pre-validated fetchFn, erasing its result type so the
// shared sturdyc client can store it.
func callFetchFn(ctx context.Context, fetchFn any) (any, error) {
	if fn, ok := fetchFn.(func(context.Context) (any, error)); ok {
		return fn(ctx)
	}

	results := reflect.ValueOf(fetchFn).Call([]reflect.Value{reflect.ValueOf(ctx)})

	var result any
	if rv := results[0]; rv.IsValid() && rv.CanInterface() {
		result = rv.Interface()
	}

	var err error
	if ev := results[1]; ev.IsValid() && !ev.IsNil() {
		err = ev.Interface().(error)
	}

	return result, err
}
