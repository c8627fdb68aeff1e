// Package directory defines the read model shared by the order-entry core:
// entities (clients and products), order rows and order details, the filters
// that select them, and the Service interface the rest of the module fetches
// through.
//
// The directory is owned by the back office; within a session every value
// handed out by a Service implementation is treated as read-only. Writes
// (order submission, stock mutation) are not part of this surface.
//
// Filters carry their own validation rules so screens can reject a malformed
// query before it ever reaches the wire:
//
//	f := directory.OrderFilter{Date: "2025-01-01"}
//	if err := f.Validate(); err != nil { ... }
//
// Monetary values use Amount, a fixed-point integer count of cents. See
// money.go for parsing rules.
package directory
