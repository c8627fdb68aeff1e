package screen

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-order-entry-cache/cache"
	"github.com/goliatone/go-order-entry-cache/directory"
	"github.com/goliatone/go-order-entry-cache/stream"
)

const optionsStream = "options"

// Options carries the two option lists an order form binds against.
type Options struct {
	Clients  []directory.Entity
	Products []directory.Entity
}

// OptionsLoader fetches both option lists for the order forms, concurrently,
// through the query cache. Opening a second form in the same session is free:
// both lists come back from cache without a network call.
type OptionsLoader struct {
	svc     directory.Service
	cache   cache.CacheService
	keys    cache.KeySerializer
	arbiter *stream.Arbiter
	perPage int
}

// NewOptionsLoader wires the loader. Pass perPage <= 0 for the default cap.
func NewOptionsLoader(svc directory.Service, cacheService cache.CacheService, keys cache.KeySerializer, arbiter *stream.Arbiter, perPage int) *OptionsLoader {
	if perPage <= 0 {
		perPage = directory.DefaultOptionsPerPage
	}
	return &OptionsLoader{
		svc:     svc,
		cache:   cacheService,
		keys:    keys,
		arbiter: arbiter,
		perPage: perPage,
	}
}

// Load fetches clients and products on the options stream. If a newer load
// supersedes this one, it returns ErrSuperseded and the caller keeps whatever
// options it already had. A genuine fetch failure is wrapped in FetchError.
func (l *OptionsLoader) Load(ctx context.Context) (Options, error) {
	filter := directory.EntityFilter{PerPage: l.perPage}
	reqCtx, tok := l.arbiter.Begin(ctx, optionsStream)

	var opts Options
	g, gctx := errgroup.WithContext(reqCtx)

	g.Go(func() error {
		clients, err := l.fetchEntities(gctx, tok, directory.EntityClient, filter)
		if err != nil {
			return err
		}
		opts.Clients = clients
		return nil
	})

	g.Go(func() error {
		products, err := l.fetchEntities(gctx, tok, directory.EntityProduct, filter)
		if err != nil {
			return err
		}
		opts.Products = products
		return nil
	})

	err := g.Wait()

	if !l.arbiter.IsCurrent(tok) {
		return Options{}, stream.ErrSuperseded
	}
	if err != nil {
		if stream.IsCancelled(err) {
			return Options{}, stream.ErrSuperseded
		}
		return Options{}, &stream.FetchError{Stream: optionsStream, Err: err}
	}
	return opts, nil
}

// fetchEntities runs one option-list query through the cache. A cancellation
// inherited from a coalesced same-key flight that a prior request began, and
// abandoned, is retried while this request is still the current one; nothing
// was cached for the key, so the retry runs fresh under a live context.
func (l *OptionsLoader) fetchEntities(ctx context.Context, tok stream.Token, kind directory.EntityKind, filter directory.EntityFilter) ([]directory.Entity, error) {
	key := l.keys.SerializeKey("ListEntities", string(kind), filter)
	fetch := func(ctx context.Context) ([]directory.Entity, error) {
		return l.svc.ListEntities(ctx, kind, filter)
	}

	entities, err := cache.GetOrFetch(ctx, l.cache, key, fetch)
	for err != nil && stream.IsCancelled(err) && ctx.Err() == nil && l.arbiter.IsCurrent(tok) {
		entities, err = cache.GetOrFetch(ctx, l.cache, key, fetch)
	}
	return entities, err
}
