package orderentry

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-order-entry-cache/directory"
)

// ResolutionState is one identity field pair bound to at most one canonical
// entity. When Entity is non-nil, IDInput and NameInput both agree with it.
type ResolutionState struct {
	IDInput   string
	NameInput string
	Entity    *directory.Entity
}

// Resolved reports whether the pair is bound to an entity.
func (s ResolutionState) Resolved() bool {
	return s.Entity != nil
}

// Resolver maps partial identifiers to canonical entities through an Index.
// Both entrypoints return a new state and are idempotent for a given index
// and input. Each one updates the other channel's display text directly;
// neither ever re-invokes the other, which is what rules out oscillation.
type Resolver struct {
	index *Index
}

// NewResolver wraps the given index.
func NewResolver(ix *Index) *Resolver {
	return &Resolver{index: ix}
}

// Rebind swaps in a freshly built index after the backing list changed.
func (r *Resolver) Rebind(ix *Index) {
	r.index = ix
}

// ResolveFromID applies a change to the id channel. Empty input clears the
// binding and the name channel. A lookup miss leaves the previous binding
// untouched: the operator may still be typing, and a partial id must not
// discard valid state.
func (r *Resolver) ResolveFromID(state ResolutionState, idText string) ResolutionState {
	id := strings.TrimSpace(idText)
	state.IDInput = id

	if id == "" {
		state.Entity = nil
		state.NameInput = ""
		return state
	}

	if e, ok := r.index.ByID(id); ok {
		state.Entity = &e
		state.NameInput = e.Name
	}
	return state
}

// ResolveFromName applies a change to the name channel, resolving via exact
// normalized name, exact SKU, then the substring fallback. Empty input clears
// the binding and the id channel; a miss leaves prior state untouched.
func (r *Resolver) ResolveFromName(state ResolutionState, nameText string) ResolutionState {
	raw := strings.TrimSpace(nameText)
	state.NameInput = raw

	if raw == "" {
		state.Entity = nil
		state.IDInput = ""
		return state
	}

	if e, ok := r.index.ByText(raw); ok {
		state.Entity = &e
		state.IDInput = strconv.FormatInt(e.ID, 10)
	}
	return state
}
