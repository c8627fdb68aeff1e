package directory

// EntityKind discriminates the two option lists the order-entry screens bind
// against.
type EntityKind string

const (
	EntityClient  EntityKind = "client"
	EntityProduct EntityKind = "product"
)

// OrderKind discriminates the two order streams.
type OrderKind string

const (
	OrderSale   OrderKind = "sale"
	OrderRepair OrderKind = "repair"
)

// Order and repair statuses as stored by the back office.
const (
	StatusOpen       = "open"
	StatusPaid       = "paid"
	StatusCanceled   = "canceled"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

// Entity is a client or product record as served by the directory. IDs are
// unique and immutable; SKU and SalePrice are only populated for products.
// A nil SalePrice means the product has no list price, which is distinct
// from a price of zero.
type Entity struct {
	ID        int64      `json:"id"`
	Kind      EntityKind `json:"kind"`
	Name      string     `json:"name"`
	SKU       string     `json:"sku,omitempty"`
	SalePrice *Amount    `json:"sale_price,omitempty"`
}

// OrderRow is one row of a sales or repairs listing. Total is nil for repairs
// that have not been priced yet. CreatedAt is pre-formatted for display by
// the directory service.
type OrderRow struct {
	ID        int64   `json:"id"`
	Client    string  `json:"client"`
	Device    string  `json:"device,omitempty"`
	Total     *Amount `json:"total,omitempty"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

// OrderDetailItem is one line of an order detail view.
type OrderDetailItem struct {
	Product   string `json:"product"`
	SKU       string `json:"sku"`
	Qty       int    `json:"qty"`
	UnitPrice Amount `json:"unit_price"`
	Subtotal  Amount `json:"subtotal"`
}

// OrderDetail is the expanded view of a single order, including nested line
// items.
type OrderDetail struct {
	ID     int64             `json:"id"`
	Client string            `json:"client"`
	Status string            `json:"status"`
	Date   string            `json:"date"`
	Total  Amount            `json:"total"`
	Items  []OrderDetailItem `json:"items"`
}
