package stream

import (
	"context"
	"errors"
	"fmt"
)

// ErrSuperseded reports that a newer request took over the stream while this
// one was in flight. Callers drop the result and keep their previous state;
// the operator never sees it.
var ErrSuperseded = errors.New("stream: request superseded")

// FetchError marks a non-cancelled fetch failure surfaced at the stream
// boundary. It is the only failure a screen turns into a visible message.
type FetchError struct {
	Stream string
	Err    error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch failed on stream %q: %v", e.Stream, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsCancelled reports whether err is the abort signal of a superseded
// request. Such errors are swallowed, never shown to the operator.
func IsCancelled(err error) bool {
	return errors.Is(err, context.Canceled)
}
