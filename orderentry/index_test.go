package orderentry

import (
	"testing"

	"github.com/goliatone/go-order-entry-cache/directory"
	"github.com/goliatone/go-order-entry-cache/pkg/testsupport"
)

func testEntities() []directory.Entity {
	return []directory.Entity{
		testsupport.Product(1, "Notebook Acer", "NB-ACER-01", 150000),
		testsupport.Product(2, "Mouse Dell", "MS-DELL-02", 4500),
		testsupport.Product(3, "Teclado RGB", "TEC-RGB-87", 19900),
	}
}

func TestBuildIndex_ByID(t *testing.T) {
	ix := BuildIndex(testEntities())

	e, ok := ix.ByID("1")
	if !ok || e.Name != "Notebook Acer" {
		t.Fatalf("expected id 1 to resolve to Notebook Acer, got %+v (ok=%v)", e, ok)
	}
	if _, ok := ix.ByID("99"); ok {
		t.Error("unknown id must miss")
	}
	if ix.Len() != 3 {
		t.Errorf("expected 3 indexed entities, got %d", ix.Len())
	}
}

func TestBuildIndex_ExactNormalizedMatchWins(t *testing.T) {
	ix := BuildIndex(testEntities())

	tests := []struct {
		query string
		want  int64
	}{
		{"notebook acer", 1},
		{"  Notebook Acer  ", 1}, // trim + case-fold
		{"NB-ACER-01", 1},        // exact SKU
		{"mouse dell", 2},
	}

	for _, tt := range tests {
		e, ok := ix.ByText(tt.query)
		if !ok || e.ID != tt.want {
			t.Errorf("ByText(%q) = %+v (ok=%v), want id %d", tt.query, e, ok, tt.want)
		}
	}
}

func TestBuildIndex_SubstringFallback(t *testing.T) {
	ix := BuildIndex(testEntities())

	// "acer" appears in the first product's name and SKU; the first indexed
	// key wins.
	e, ok := ix.ByText("acer")
	if !ok || e.ID != 1 {
		t.Fatalf("expected substring match on first entity, got %+v (ok=%v)", e, ok)
	}

	// SKU substrings resolve too.
	e, ok = ix.ByText("dell-02")
	if !ok || e.ID != 2 {
		t.Errorf("expected SKU substring match, got %+v (ok=%v)", e, ok)
	}

	if _, ok := ix.ByText("zzz"); ok {
		t.Error("non-matching substring must miss")
	}
}

func TestBuildIndex_AmbiguousSubstringBindsFirstInserted(t *testing.T) {
	// Both names contain "note". The policy deliberately binds whichever
	// entity was indexed first instead of reporting ambiguity; this pins the
	// behavior, not a judgement that id 10 is the "right" answer.
	ix := BuildIndex([]directory.Entity{
		testsupport.Product(10, "Notebook Acer", "NB-A", 100),
		testsupport.Product(11, "Notebook Dell", "NB-D", 200),
	})

	e, ok := ix.ByText("note")
	if !ok || e.ID != 10 {
		t.Errorf("ambiguous substring must bind the first inserted entity, got %+v", e)
	}
}

func TestBuildIndex_DuplicateKeyLastWinsExact(t *testing.T) {
	ix := BuildIndex([]directory.Entity{
		testsupport.Client(1, "Consumidor"),
		testsupport.Client(2, "Consumidor"),
	})

	e, ok := ix.ByText("consumidor")
	if !ok || e.ID != 2 {
		t.Errorf("exact lookup keeps the later entity for a duplicated key, got %+v", e)
	}
}

func TestBuildIndex_EmptyKeysSkipped(t *testing.T) {
	ix := BuildIndex([]directory.Entity{
		testsupport.Client(1, "   "),
		testsupport.Client(2, "Consumidor"),
	})

	if _, ok := ix.ByText("consumidor"); !ok {
		t.Error("named client must resolve")
	}
	if _, ok := ix.ByText(""); ok {
		t.Error("empty query must miss")
	}
	if _, ok := ix.ByText("   "); ok {
		t.Error("whitespace query must miss")
	}
}

func TestBuildIndex_RebuildNotPatched(t *testing.T) {
	first := BuildIndex([]directory.Entity{testsupport.Client(1, "Ana")})
	second := BuildIndex([]directory.Entity{testsupport.Client(2, "Bruno")})

	if _, ok := first.ByID("2"); ok {
		t.Error("old index must not see entities from a newer list")
	}
	if _, ok := second.ByID("1"); ok {
		t.Error("new index must not carry stale entries")
	}
}
