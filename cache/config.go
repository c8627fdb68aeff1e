package cache

import (
	"time"

	"github.com/goliatone/go-order-entry-cache/internal/cacheinfra"
)

// Config exposes the session store tuning options to consumers of the cache
// package.
type Config struct {
	// Capacity bounds how many query results one session can hold.
	Capacity int

	// NumShards controls sharding of the underlying store.
	NumShards int

	// SessionTTL is the nominal lifetime of an entry. The cache contract is
	// session-bounded memoization, so this only needs to comfortably outlast
	// any realistic page session.
	SessionTTL time.Duration

	// EvictionPercentage is how much to shed if Capacity is ever reached.
	EvictionPercentage int
}

// DefaultConfig returns the tuning used for a typical order-entry session.
func DefaultConfig() Config {
	return fromInternal(cacheinfra.DefaultConfig())
}

// Validate checks whether the configuration values are usable.
func (c Config) Validate() error {
	return c.toInternal().Validate()
}

// NewCacheService constructs the default session store from the configuration.
func NewCacheService(cfg Config) (CacheService, error) {
	return cacheinfra.NewSessionStore(cfg.toInternal())
}

func (c Config) toInternal() cacheinfra.Config {
	return cacheinfra.Config{
		Capacity:           c.Capacity,
		NumShards:          c.NumShards,
		SessionTTL:         c.SessionTTL,
		EvictionPercentage: c.EvictionPercentage,
	}
}

func fromInternal(cfg cacheinfra.Config) Config {
	return Config{
		Capacity:           cfg.Capacity,
		NumShards:          cfg.NumShards,
		SessionTTL:         cfg.SessionTTL,
		EvictionPercentage: cfg.EvictionPercentage,
	}
}
