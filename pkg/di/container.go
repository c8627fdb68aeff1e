// Package di wires one order-entry session: the shared query cache, key
// serializer, request arbiter and debouncer, plus factories for the screens
// and forms that use them. Keeping these on an explicit container, not in
// package globals, is what makes session lifecycles testable in isolation.
package di

import (
	"context"

	"github.com/goliatone/go-order-entry-cache/cache"
	"github.com/goliatone/go-order-entry-cache/config"
	"github.com/goliatone/go-order-entry-cache/directory"
	"github.com/goliatone/go-order-entry-cache/orderentry"
	"github.com/goliatone/go-order-entry-cache/screen"
	"github.com/goliatone/go-order-entry-cache/stream"
)

// Container holds the session-scoped collaborators of one operator session.
type Container struct {
	settings      config.Settings
	svc           directory.Service
	cacheService  cache.CacheService
	keySerializer cache.KeySerializer
	arbiter       *stream.Arbiter
	debouncer     *stream.Debouncer
}

// New builds a session container over the given directory service.
func New(svc directory.Service, settings config.Settings) (*Container, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	cacheCfg := cache.DefaultConfig()
	cacheCfg.Capacity = settings.CacheCapacity
	cacheCfg.NumShards = settings.CacheShards

	cacheService, err := cache.NewCacheService(cacheCfg)
	if err != nil {
		return nil, err
	}

	return &Container{
		settings:      settings,
		svc:           svc,
		cacheService:  cacheService,
		keySerializer: cache.NewDefaultKeySerializer(),
		arbiter:       stream.NewArbiter(),
		debouncer:     stream.NewDebouncer(),
	}, nil
}

// NewWithDefaults builds a session container with default settings.
func NewWithDefaults(svc directory.Service) (*Container, error) {
	return New(svc, config.Defaults())
}

// CacheService exposes the session query cache.
func (c *Container) CacheService() cache.CacheService {
	return c.cacheService
}

// KeySerializer exposes the shared key serializer.
func (c *Container) KeySerializer() cache.KeySerializer {
	return c.keySerializer
}

// Arbiter exposes the session request arbiter.
func (c *Container) Arbiter() *stream.Arbiter {
	return c.arbiter
}

// Debouncer exposes the session debouncer.
func (c *Container) Debouncer() *stream.Debouncer {
	return c.debouncer
}

// SalesList builds the sales list screen.
func (c *Container) SalesList() *screen.ListScreen {
	return screen.NewListScreen(directory.OrderSale, c.svc, c.cacheService, c.keySerializer, c.arbiter, c.settings.WindowSize)
}

// RepairsList builds the repairs list screen.
func (c *Container) RepairsList() *screen.ListScreen {
	return screen.NewListScreen(directory.OrderRepair, c.svc, c.cacheService, c.keySerializer, c.arbiter, c.settings.WindowSize)
}

// SaleDetail builds the sale detail screen.
func (c *Container) SaleDetail() *screen.DetailScreen {
	return screen.NewDetailScreen(directory.OrderSale, c.svc, c.arbiter)
}

// RepairDetail builds the repair detail screen.
func (c *Container) RepairDetail() *screen.DetailScreen {
	return screen.NewDetailScreen(directory.OrderRepair, c.svc, c.arbiter)
}

// OptionsLoader builds the option loader shared by order forms.
func (c *Container) OptionsLoader() *screen.OptionsLoader {
	return screen.NewOptionsLoader(c.svc, c.cacheService, c.keySerializer, c.arbiter, c.settings.OptionsPerPage)
}

// NewOrderForm builds an order form over already loaded options.
func (c *Container) NewOrderForm(opts screen.Options) *orderentry.OrderForm {
	return orderentry.NewOrderForm(opts.Clients, opts.Products, c.debouncer, c.settings.Debounce())
}

// Close tears the session down: pending debounced actions are dropped,
// in-flight requests cancelled, and every cached query entry destroyed.
func (c *Container) Close(ctx context.Context) error {
	c.debouncer.Stop()
	c.arbiter.CancelAll()
	return c.cacheService.Reset(ctx)
}
