// Package testsupport holds shared helpers for loading fixtures and building
// directory entities in tests.
package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-order-entry-cache/directory"
)

// LoadFixture loads raw test data from a fixture file relative to the test
// package directory.
func LoadFixture(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to load fixture from %s: %v", path, err)
	}
	return data
}

// LoadFixtureJSON loads and unmarshals a JSON fixture file.
func LoadFixtureJSON(t *testing.T, path string, dest any) {
	t.Helper()

	data := LoadFixture(t, path)
	if err := json.Unmarshal(data, dest); err != nil {
		t.Fatalf("failed to unmarshal JSON fixture from %s: %v", path, err)
	}
}

// LoadEntities loads a directory entity list from a JSON fixture.
func LoadEntities(t *testing.T, path string) []directory.Entity {
	t.Helper()

	var entities []directory.Entity
	LoadFixtureJSON(t, path, &entities)
	return entities
}

// FixturePath constructs a path under the package's testdata directory.
func FixturePath(filename string) string {
	return filepath.Join("testdata", filename)
}

// Product builds a product entity with an optional price in cents.
func Product(id int64, name, sku string, priceCents int64) directory.Entity {
	e := directory.Entity{
		ID:   id,
		Kind: directory.EntityProduct,
		Name: name,
		SKU:  sku,
	}
	if priceCents >= 0 {
		e.SalePrice = directory.AmountPtr(directory.Amount(priceCents))
	}
	return e
}

// Client builds a client entity.
func Client(id int64, name string) directory.Entity {
	return directory.Entity{
		ID:   id,
		Kind: directory.EntityClient,
		Name: name,
	}
}
