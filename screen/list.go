package screen

import (
	"context"
	"sync"

	"github.com/goliatone/go-order-entry-cache/cache"
	"github.com/goliatone/go-order-entry-cache/directory"
	"github.com/goliatone/go-order-entry-cache/stream"
)

// Phase is the query-cycle state of a list screen.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseErrored
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseErrored:
		return "errored"
	}
	return "unknown"
}

// ListScreen drives one order list (sales or repairs) through its query
// cycle. All fetches go through the shared query cache and the screen's
// arbiter stream, so only the most recently issued request may mutate state.
type ListScreen struct {
	mu sync.Mutex

	kind       directory.OrderKind
	svc        directory.Service
	cache      cache.CacheService
	keys       cache.KeySerializer
	arbiter    *stream.Arbiter
	windowSize int

	phase  Phase
	window *Window[directory.OrderRow]
	err    error
}

// NewListScreen wires a screen for the given order kind. Pass windowSize <= 0
// to use the default page window.
func NewListScreen(kind directory.OrderKind, svc directory.Service, cacheService cache.CacheService, keys cache.KeySerializer, arbiter *stream.Arbiter, windowSize int) *ListScreen {
	return &ListScreen{
		kind:       kind,
		svc:        svc,
		cache:      cacheService,
		keys:       keys,
		arbiter:    arbiter,
		windowSize: windowSize,
		phase:      PhaseIdle,
		window:     NewWindow[directory.OrderRow](nil, windowSize),
	}
}

func (s *ListScreen) streamID() string {
	return string(s.kind) + ":list"
}

// Load enters Loading and fetches rows for the filter, memoized by query key.
// A response that is no longer current when it completes is discarded
// silently, cancelled fetches included. A genuine failure moves the screen to
// Errored with empty rows and is also returned. On success (or cache hit)
// the screen is Ready and the window is reset to the first page.
func (s *ListScreen) Load(ctx context.Context, filter directory.OrderFilter) error {
	if err := filter.Validate(); err != nil {
		return err
	}

	key := s.keys.SerializeKey("ListOrders", string(s.kind), filter)
	reqCtx, tok := s.arbiter.Begin(ctx, s.streamID())

	s.mu.Lock()
	s.phase = PhaseLoading
	s.err = nil
	s.mu.Unlock()

	fetch := func(ctx context.Context) ([]directory.OrderRow, error) {
		return s.svc.ListOrders(ctx, s.kind, filter)
	}

	rows, err := cache.GetOrFetch(reqCtx, s.cache, key, fetch)
	for err != nil && stream.IsCancelled(err) && reqCtx.Err() == nil && s.arbiter.IsCurrent(tok) {
		// The cache coalesced this request onto an in-flight fetch for the
		// same key that was begun, and cancelled, by the request this one
		// superseded. The failure was not stored, so re-running under this
		// request's live context converges; if this request is itself
		// superseded meanwhile, its context closes and the loop exits.
		rows, err = cache.GetOrFetch(reqCtx, s.cache, key, fetch)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.arbiter.IsCurrent(tok) {
		return nil
	}
	if err != nil {
		if stream.IsCancelled(err) {
			// Still current, so the cancellation came from the caller's
			// parent context, not from supersession.
			return nil
		}
		s.phase = PhaseErrored
		s.window = NewWindow[directory.OrderRow](nil, s.windowSize)
		s.err = &stream.FetchError{Stream: s.streamID(), Err: err}
		return s.err
	}

	s.phase = PhaseReady
	s.window = NewWindow(rows, s.windowSize)
	return nil
}

// Phase returns the current query-cycle state.
func (s *ListScreen) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Err returns the surfaced failure of the last cycle, nil unless Errored.
func (s *ListScreen) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Rows returns the visible window of the cached result set.
func (s *ListScreen) Rows() []directory.OrderRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.window.Visible()
}

// HasMore reports whether rows beyond the window remain.
func (s *ListScreen) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.window.HasMore()
}

// ShowMore extends the window by one page. Pure rendering; never re-fetches.
func (s *ListScreen) ShowMore() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.window.ShowMore()
}

// PaidTotal sums the totals of paid rows across the full cached result set,
// not just the visible window.
func (s *ListScreen) PaidTotal() directory.Amount {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total directory.Amount
	for _, row := range s.window.All() {
		if row.Status == directory.StatusPaid && row.Total != nil {
			total += *row.Total
		}
	}
	return total
}
