package screen

import (
	"context"
	"sync"

	"github.com/goliatone/go-order-entry-cache/directory"
	"github.com/goliatone/go-order-entry-cache/stream"
)

// DetailScreen drives the order-detail view. Opening a detail while a
// previous detail fetch is still in flight supersedes it; detail fetches are
// not memoized because the operator expects the freshest line items.
type DetailScreen struct {
	mu sync.Mutex

	kind    directory.OrderKind
	svc     directory.Service
	arbiter *stream.Arbiter

	detail *directory.OrderDetail
	err    error
}

// NewDetailScreen wires a detail view for the given order kind.
func NewDetailScreen(kind directory.OrderKind, svc directory.Service, arbiter *stream.Arbiter) *DetailScreen {
	return &DetailScreen{kind: kind, svc: svc, arbiter: arbiter}
}

func (s *DetailScreen) streamID() string {
	return string(s.kind) + ":detail"
}

// Open fetches the detail for id on the detail stream. The view is cleared up
// front so a stale order is never shown while the fetch runs. Superseded and
// cancelled fetches are discarded silently.
func (s *DetailScreen) Open(ctx context.Context, id int64) error {
	reqCtx, tok := s.arbiter.Begin(ctx, s.streamID())

	s.mu.Lock()
	s.detail = nil
	s.err = nil
	s.mu.Unlock()

	detail, err := s.svc.GetOrderDetail(reqCtx, s.kind, id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.arbiter.IsCurrent(tok) {
		return nil
	}
	if err != nil {
		if stream.IsCancelled(err) {
			return nil
		}
		s.err = &stream.FetchError{Stream: s.streamID(), Err: err}
		return s.err
	}

	s.detail = &detail
	return nil
}

// Detail returns the loaded order, or nil while empty, loading or errored.
func (s *DetailScreen) Detail() *directory.OrderDetail {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detail == nil {
		return nil
	}
	d := *s.detail
	return &d
}

// Err returns the surfaced failure of the last open, if any.
func (s *DetailScreen) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
