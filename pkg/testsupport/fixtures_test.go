package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/goliatone/go-order-entry-cache/directory"
)

func TestLoadEntities(t *testing.T) {
	entities := LoadEntities(t, FixturePath("entities.json"))

	if len(entities) != 5 {
		t.Fatalf("expected 5 entities, got %d", len(entities))
	}
	if entities[0].Kind != directory.EntityClient || entities[0].Name != "Consumidor Final" {
		t.Errorf("unexpected first entity: %+v", entities[0])
	}

	notebook := entities[2]
	if notebook.SKU != "NB-ACER-01" || notebook.SalePrice == nil || *notebook.SalePrice != 150000 {
		t.Errorf("unexpected product mapping: %+v", notebook)
	}
	if entities[4].SalePrice != nil {
		t.Error("an absent sale_price must decode to nil")
	}
}

func TestFixturePath(t *testing.T) {
	if got := FixturePath("entities.json"); got != filepath.Join("testdata", "entities.json") {
		t.Errorf("FixturePath = %q", got)
	}
}

func TestBuilders(t *testing.T) {
	p := Product(7, "Cabo HDMI", "CB-HD-01", 2500)
	if p.Kind != directory.EntityProduct || p.SalePrice == nil || *p.SalePrice != 2500 {
		t.Errorf("unexpected product: %+v", p)
	}

	free := Product(8, "Brinde", "BR-01", -1)
	if free.SalePrice != nil {
		t.Error("a negative price means no list price")
	}

	c := Client(1, "Consumidor Final")
	if c.Kind != directory.EntityClient || c.SKU != "" {
		t.Errorf("unexpected client: %+v", c)
	}
}
