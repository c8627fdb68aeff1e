package screen

// DefaultWindowSize is the page window applied to list screens. Large result
// distributions stay renderable because only this many rows are visible until
// the operator asks for more.
const DefaultWindowSize = 400

// Window presents a capped, monotonically expandable prefix of an already
// cached list. It never re-fetches; it only decides how much of the list is
// rendered.
type Window[T any] struct {
	items   []T
	size    int
	visible int
}

// NewWindow caps the list at the first size items. Pass size <= 0 to use the
// default page window.
func NewWindow[T any](items []T, size int) *Window[T] {
	if size <= 0 {
		size = DefaultWindowSize
	}
	w := &Window[T]{items: items, size: size}
	w.visible = min(size, len(items))
	return w
}

// Visible returns the rendered prefix.
func (w *Window[T]) Visible() []T {
	return w.items[:w.visible]
}

// All returns the full backing list.
func (w *Window[T]) All() []T {
	return w.items
}

// ShowMore extends the visible prefix by one page, capped at the list length.
// Calling it when fully expanded changes nothing.
func (w *Window[T]) ShowMore() {
	w.visible = min(w.visible+w.size, len(w.items))
}

// HasMore reports whether rows beyond the visible prefix remain.
func (w *Window[T]) HasMore() bool {
	return w.visible < len(w.items)
}

// Len returns the full list length.
func (w *Window[T]) Len() int {
	return len(w.items)
}
