package stream

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
)

// Token identifies one in-flight request on a stream. It stays valid until
// the stream issues a newer request or is cancelled outright.
type Token struct {
	Stream     string
	ID         uuid.UUID
	generation uint64
}

// Arbiter tracks the single authoritative request per stream. Supersession is
// decided by a per-stream generation counter, not by whichever response
// happens to arrive first.
type Arbiter struct {
	streams *xsync.MapOf[string, *streamState]
}

type streamState struct {
	mu         sync.Mutex
	generation uint64
	tokenID    uuid.UUID
	cancel     context.CancelFunc
}

// NewArbiter creates an empty arbiter.
func NewArbiter() *Arbiter {
	return &Arbiter{streams: xsync.NewMapOf[string, *streamState]()}
}

// Begin registers a new request for the stream, cancelling the previous one.
// The returned context is cancelled as soon as the request is superseded; the
// token must be re-checked with IsCurrent before applying the response.
func (a *Arbiter) Begin(ctx context.Context, stream string) (context.Context, Token) {
	st, _ := a.streams.LoadOrStore(stream, &streamState{})

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.cancel != nil {
		st.cancel()
	}

	reqCtx, cancel := context.WithCancel(ctx)
	st.generation++
	st.tokenID = uuid.New()
	st.cancel = cancel

	return reqCtx, Token{Stream: stream, ID: st.tokenID, generation: st.generation}
}

// IsCurrent reports whether the token still names the authoritative request
// for its stream.
func (a *Arbiter) IsCurrent(tok Token) bool {
	st, ok := a.streams.Load(tok.Stream)
	if !ok {
		return false
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	return st.generation == tok.generation && st.tokenID == tok.ID
}

// Cancel aborts the stream's current request, if any, without starting a new
// one. The aborted request's token stops being current.
func (a *Arbiter) Cancel(stream string) {
	st, ok := a.streams.Load(stream)
	if !ok {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.cancel != nil {
		st.cancel()
		st.cancel = nil
	}
	st.generation++
	st.tokenID = uuid.Nil
}

// CancelAll aborts every stream. Used on session teardown.
func (a *Arbiter) CancelAll() {
	a.streams.Range(func(stream string, _ *streamState) bool {
		a.Cancel(stream)
		return true
	})
}
