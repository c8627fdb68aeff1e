package screen

import "testing"

func TestWindow_CapsInitialPage(t *testing.T) {
	w := NewWindow([]int{1, 2, 3, 4, 5}, 2)

	if got := w.Visible(); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("expected first page of 2, got %v", got)
	}
	if !w.HasMore() {
		t.Error("rows remain beyond the window")
	}
	if w.Len() != 5 {
		t.Errorf("Len must report the full list, got %d", w.Len())
	}
}

func TestWindow_ShowMoreExpandsByPage(t *testing.T) {
	w := NewWindow([]int{1, 2, 3, 4, 5}, 2)

	w.ShowMore()
	if got := len(w.Visible()); got != 4 {
		t.Errorf("expected 4 visible after one expansion, got %d", got)
	}

	w.ShowMore()
	if got := len(w.Visible()); got != 5 {
		t.Errorf("expansion is capped at the list length, got %d", got)
	}
	if w.HasMore() {
		t.Error("fully expanded window must not report more")
	}

	// Idempotent at the cap.
	w.ShowMore()
	if got := len(w.Visible()); got != 5 {
		t.Errorf("ShowMore at the cap must change nothing, got %d", got)
	}
}

func TestWindow_ShortListFullyVisible(t *testing.T) {
	w := NewWindow([]string{"a", "b"}, 400)

	if got := len(w.Visible()); got != 2 {
		t.Errorf("lists under the cap are fully visible, got %d", got)
	}
	if w.HasMore() {
		t.Error("nothing beyond the window")
	}
}

func TestWindow_EmptyList(t *testing.T) {
	w := NewWindow[int](nil, 3)

	if got := len(w.Visible()); got != 0 {
		t.Errorf("empty list renders nothing, got %d", got)
	}
	if w.HasMore() {
		t.Error("empty list has no more rows")
	}
	w.ShowMore()
	if got := len(w.Visible()); got != 0 {
		t.Errorf("ShowMore on empty list is a no-op, got %d", got)
	}
}

func TestWindow_DefaultSize(t *testing.T) {
	items := make([]int, DefaultWindowSize+10)
	w := NewWindow(items, 0)

	if got := len(w.Visible()); got != DefaultWindowSize {
		t.Errorf("size <= 0 falls back to the default window, got %d", got)
	}
}
