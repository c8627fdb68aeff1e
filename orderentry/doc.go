// Package orderentry implements the reference-resolution core of the sale and
// repair forms: O(1) lookup indexes over option lists, the dual-field
// id/name resolver, and the order-line collection with derived totals.
//
// An operator identifies a client or product through either of two parallel
// input channels, a numeric id or free text. The resolver binds both channels
// to one canonical entity and keeps them synchronized without feedback loops:
// each entrypoint writes the *other* channel's display text directly instead
// of re-invoking the other entrypoint, so resolution converges in one step.
//
// Matching policy, preserved exactly from the back office it replaces: an
// exact normalized (trimmed, lower-cased) name or SKU match wins; otherwise
// the first indexed entry whose normalized key contains the query substring
// wins, in insertion order. The substring fallback is deliberately loose and
// can bind an ambiguous query to whichever matching entity was indexed first.
//
// OrderForm ties it together for one open form: debounced resolution
// triggers, a client resolution state, and a LineSet whose per-line subtotals
// and aggregate total are always derived, never stored.
package orderentry
