// Package stream arbitrates the recurring query channels of a screen: at most
// one authoritative in-flight request per stream, with superseded requests
// cancelled and their responses discarded.
//
// The Arbiter implements last-request-wins ordering. Beginning a request for
// a stream cancels the previous one and hands back a Token; whoever completes
// a request checks the token before touching state:
//
//	ctx, tok := arbiter.Begin(ctx, "sales:list")
//	rows, err := fetch(ctx)
//	if !arbiter.IsCurrent(tok) {
//		return // superseded while in flight, result is stale
//	}
//
// Note the property is decided by the token check at completion time, not by
// response arrival order: a slow earlier response that lands after a newer
// one fails the check and is dropped.
//
// The Debouncer coalesces bursts of triggers on a stream into the single
// action scheduled last within the quiescence window. It is what keeps the
// identity resolvers from firing on every keystroke.
//
// Errors from cancelled requests are not user-visible; IsCancelled
// distinguishes them from genuine fetch failures, which are wrapped in
// FetchError at the stream boundary.
package stream
