package directory

import "context"

// Service is the single collaborator the order-entry core reads through.
// All three operations are idempotent reads; implementations must honor
// context cancellation so superseded requests can be abandoned in flight.
type Service interface {
	// ListEntities returns the option list for the given kind.
	ListEntities(ctx context.Context, kind EntityKind, filter EntityFilter) ([]Entity, error)

	// ListOrders returns list rows for the sales or repairs screen.
	ListOrders(ctx context.Context, kind OrderKind, filter OrderFilter) ([]OrderRow, error)

	// GetOrderDetail returns one order with its nested line items.
	GetOrderDetail(ctx context.Context, kind OrderKind, id int64) (OrderDetail, error)
}
