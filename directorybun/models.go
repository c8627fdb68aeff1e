package directorybun

import (
	"time"

	"github.com/uptrace/bun"
)

// ClientRecord maps the clients table.
type ClientRecord struct {
	bun.BaseModel `bun:"table:clients,alias:c"`

	ID       int64  `bun:"id,pk,autoincrement"`
	Name     string `bun:"name"`
	IsSystem bool   `bun:"is_system"`
}

// ProductRecord maps the products table. SalePrice and stock figures are
// stored in cents and whole units respectively.
type ProductRecord struct {
	bun.BaseModel `bun:"table:products,alias:p"`

	ID        int64  `bun:"id,pk,autoincrement"`
	Name      string `bun:"name"`
	SKU       string `bun:"sku"`
	SalePrice *int64 `bun:"sale_price"`
	Stock     int64  `bun:"stock"`
	MinStock  int64  `bun:"min_stock"`
}

// SaleRecord maps the sales table.
type SaleRecord struct {
	bun.BaseModel `bun:"table:sales,alias:s"`

	ID        int64     `bun:"id,pk,autoincrement"`
	ClientID  int64     `bun:"client_id"`
	Status    string    `bun:"status"`
	Total     int64     `bun:"total"`
	SoldAt    time.Time `bun:"sold_at"`
	CreatedAt time.Time `bun:"created_at"`

	Client *ClientRecord     `bun:"rel:belongs-to,join:client_id=id"`
	Items  []*SaleItemRecord `bun:"rel:has-many,join:id=sale_id"`
}

// SaleItemRecord maps the sale_items table.
type SaleItemRecord struct {
	bun.BaseModel `bun:"table:sale_items,alias:si"`

	ID        int64 `bun:"id,pk,autoincrement"`
	SaleID    int64 `bun:"sale_id"`
	ProductID int64 `bun:"product_id"`
	Qty       int   `bun:"qty"`
	UnitPrice int64 `bun:"unit_price"`

	Product *ProductRecord `bun:"rel:belongs-to,join:product_id=id"`
}

// RepairRecord maps the repairs table. Price is nullable: a ticket may not be
// quoted yet.
type RepairRecord struct {
	bun.BaseModel `bun:"table:repairs,alias:r"`

	ID          int64     `bun:"id,pk,autoincrement"`
	ClientID    int64     `bun:"client_id"`
	Device      string    `bun:"device"`
	Description string    `bun:"problem_description"`
	Status      string    `bun:"status"`
	Price       *int64    `bun:"price"`
	CreatedAt   time.Time `bun:"created_at"`

	Client *ClientRecord `bun:"rel:belongs-to,join:client_id=id"`
}
