package orderentry

import (
	"testing"

	"github.com/goliatone/go-order-entry-cache/directory"
	"github.com/goliatone/go-order-entry-cache/pkg/testsupport"
)

func newTestResolver() *Resolver {
	return NewResolver(BuildIndex(testEntities()))
}

func TestResolveFromID_Hit(t *testing.T) {
	r := newTestResolver()

	st := r.ResolveFromID(ResolutionState{}, " 1 ")

	if st.IDInput != "1" {
		t.Errorf("id input should be trimmed, got %q", st.IDInput)
	}
	if !st.Resolved() || st.Entity.ID != 1 {
		t.Fatalf("expected binding to id 1, got %+v", st.Entity)
	}
	if st.NameInput != "Notebook Acer" {
		t.Errorf("name channel must be overwritten with the canonical name, got %q", st.NameInput)
	}
}

func TestResolveFromID_MissKeepsPriorBinding(t *testing.T) {
	r := newTestResolver()

	st := r.ResolveFromID(ResolutionState{}, "1")
	// Operator keeps typing: "12" matches nothing.
	st = r.ResolveFromID(st, "12")

	if st.IDInput != "12" {
		t.Errorf("id input must track the operator, got %q", st.IDInput)
	}
	if !st.Resolved() || st.Entity.ID != 1 {
		t.Error("a miss while typing must not discard the previous binding")
	}
}

func TestResolveFromID_EmptyClears(t *testing.T) {
	r := newTestResolver()

	st := r.ResolveFromID(ResolutionState{}, "1")
	st = r.ResolveFromID(st, "")

	if st.Resolved() || st.NameInput != "" || st.IDInput != "" {
		t.Errorf("empty id input must clear both channels, got %+v", st)
	}
}

func TestResolveFromName_ExactAndFallback(t *testing.T) {
	r := newTestResolver()

	// Example scenario: "acer" resolves by substring, case-insensitive.
	st := r.ResolveFromName(ResolutionState{}, "acer")
	if !st.Resolved() || st.Entity.ID != 1 {
		t.Fatalf("expected substring resolution to id 1, got %+v", st.Entity)
	}
	if st.IDInput != "1" {
		t.Errorf("id channel must be overwritten with the canonical id, got %q", st.IDInput)
	}
	if st.NameInput != "acer" {
		t.Errorf("the operator's text stays as typed, got %q", st.NameInput)
	}
}

func TestResolveFromName_MissKeepsPriorBinding(t *testing.T) {
	r := newTestResolver()

	st := r.ResolveFromName(ResolutionState{}, "acer")
	st = r.ResolveFromName(st, "acerx")

	if !st.Resolved() || st.Entity.ID != 1 {
		t.Error("a resolution miss leaves the previous binding untouched")
	}
	if st.NameInput != "acerx" {
		t.Errorf("name input must track the operator, got %q", st.NameInput)
	}
}

func TestResolveFromName_EmptyClears(t *testing.T) {
	r := newTestResolver()

	st := r.ResolveFromName(ResolutionState{}, "acer")
	st = r.ResolveFromName(st, "   ")

	if st.Resolved() || st.IDInput != "" || st.NameInput != "" {
		t.Errorf("empty name input must clear both channels, got %+v", st)
	}
}

func TestResolve_NoOscillation(t *testing.T) {
	r := newTestResolver()

	// Resolving by id then feeding the synchronized name back through the
	// name entrypoint must converge in one step to the same binding.
	byID := r.ResolveFromID(ResolutionState{}, "1")
	roundTrip := r.ResolveFromName(byID, byID.NameInput)

	if roundTrip.Entity.ID != byID.Entity.ID || roundTrip.IDInput != byID.IDInput {
		t.Errorf("fixed point not reached: %+v vs %+v", roundTrip, byID)
	}

	// And the other direction.
	byName := r.ResolveFromName(ResolutionState{}, "mouse dell")
	roundTrip = r.ResolveFromID(byName, byName.IDInput)

	if roundTrip.Entity.ID != byName.Entity.ID || roundTrip.NameInput != "Mouse Dell" {
		t.Errorf("fixed point not reached: %+v", roundTrip)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	r := newTestResolver()

	once := r.ResolveFromName(ResolutionState{}, "acer")
	twice := r.ResolveFromName(once, "acer")

	if once.IDInput != twice.IDInput || once.Entity.ID != twice.Entity.ID || once.NameInput != twice.NameInput {
		t.Errorf("repeated resolution must be a no-op: %+v vs %+v", once, twice)
	}
}

func TestResolver_Rebind(t *testing.T) {
	r := newTestResolver()

	r.Rebind(BuildIndex([]directory.Entity{testsupport.Product(7, "Cabo HDMI", "CB-HD-01", 2500)}))

	if st := r.ResolveFromID(ResolutionState{}, "1"); st.Resolved() {
		t.Error("rebound resolver must not see the old list")
	}
	if st := r.ResolveFromID(ResolutionState{}, "7"); !st.Resolved() {
		t.Error("rebound resolver must see the new list")
	}
}
