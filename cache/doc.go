// Package cache provides the query-caching surface used by the order-entry
// screens: a session-scoped read-through cache and a deterministic key
// serializer that turns a filter tuple into a canonical query key.
//
// # Overview
//
// Two interfaces make up the public surface:
//
//   - CacheService: read-through cache with at-most-one successful fetch per
//     distinct key within a session
//   - KeySerializer: builds a stable key from an operation name and its
//     filter arguments
//
// The contract the screens rely on is memoization, not freshness: entries
// have no meaningful TTL and are only destroyed when the session that owns
// the cache is torn down. Two logically identical filter tuples must always
// produce the same key, so the serializer walks values structurally rather
// than relying on formatting accidents.
//
// # Basic usage
//
//	keys := cache.NewDefaultKeySerializer()
//	key := keys.SerializeKey("ListOrders", "sale", filter)
//
//	rows, err := cache.GetOrFetch(ctx, service, key, func(ctx context.Context) ([]directory.OrderRow, error) {
//		return svc.ListOrders(ctx, directory.OrderSale, filter)
//	})
//
// Failed fetches are not stored; repeating the operation after a failure
// fetches again. Cancelled fetches likewise leave no entry behind.
//
// # Key strategy
//
// Keys are composed of segments joined by "::". Scalars are rendered
// directly; slices, maps and structs are serialized recursively with map
// keys sorted so iteration order never leaks into the key. See key.go.
package cache
