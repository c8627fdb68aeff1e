// Package screen hosts the session-scoped state of the list screens: the
// Idle → Loading → (Ready | Errored) query cycle, the windowed view over a
// cached result set, and the option loader the order forms draw from.
//
// Each screen owns its query stream. Load runs the fetch through the shared
// query cache and the stream arbiter, so repeating a filter within a session
// costs no network call, and a response that was superseded while in flight
// is discarded without touching visible state. There is no automatic retry:
// a screen leaves Errored only when the operator repeats the action.
//
// Rendering is capped by a Window: the visible rows are always a prefix of
// the full cached list, and ShowMore only ever extends that prefix. Showing
// more never re-fetches.
package screen
