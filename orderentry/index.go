package orderentry

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-order-entry-cache/directory"
)

// Lookup key prefixes. Names and SKUs share one keyspace so the substring
// fallback scans a product's name and SKU before moving to the next product.
const (
	namePrefix = "n:"
	skuPrefix  = "s:"
)

// Index holds the O(1) lookup structures derived from one entity list. It is
// ephemeral: rebuild it with BuildIndex whenever the backing list changes,
// never patch it in place.
type Index struct {
	byID   map[string]directory.Entity
	lookup map[string]directory.Entity
	order  []string
}

// BuildIndex derives lookup maps from the entity list in one O(n) pass.
// Normalization is trim plus lower-case. When two entities normalize to the
// same key the later one wins the exact map, but the key keeps its original
// position in the fallback scan order.
func BuildIndex(entities []directory.Entity) *Index {
	ix := &Index{
		byID:   make(map[string]directory.Entity, len(entities)),
		lookup: make(map[string]directory.Entity, len(entities)*2),
		order:  make([]string, 0, len(entities)*2),
	}

	for _, e := range entities {
		ix.byID[strconv.FormatInt(e.ID, 10)] = e

		if n := normalize(e.Name); n != "" {
			ix.put(namePrefix+n, e)
		}
		if s := normalize(e.SKU); s != "" {
			ix.put(skuPrefix+s, e)
		}
	}

	return ix
}

func (ix *Index) put(key string, e directory.Entity) {
	if _, seen := ix.lookup[key]; !seen {
		ix.order = append(ix.order, key)
	}
	ix.lookup[key] = e
}

// ByID returns the entity with the given decimal id text.
func (ix *Index) ByID(id string) (directory.Entity, bool) {
	e, ok := ix.byID[id]
	return e, ok
}

// ByText resolves free text against names and SKUs: exact normalized name,
// then exact normalized SKU, then the first indexed key containing the query
// substring. The fallback scans keys in insertion order and is intentionally
// ambiguous when several keys share the substring.
func (ix *Index) ByText(query string) (directory.Entity, bool) {
	q := normalize(query)
	if q == "" {
		return directory.Entity{}, false
	}

	if e, ok := ix.lookup[namePrefix+q]; ok {
		return e, true
	}
	if e, ok := ix.lookup[skuPrefix+q]; ok {
		return e, true
	}

	for _, key := range ix.order {
		if strings.Contains(key, q) {
			return ix.lookup[key], true
		}
	}
	return directory.Entity{}, false
}

// Len returns how many entities were indexed by id.
func (ix *Index) Len() int {
	return len(ix.byID)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
