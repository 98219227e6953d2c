package ports

import (
	"context"
	"errors"

	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/core/domain/model/order"
)

// ErrConcurrentModification is returned by Update when the aggregate's
// version no longer matches the stored row, i.e. another client changed the
// order between read and write. Callers must re-fetch and retry.
var ErrConcurrentModification = errors.New("order was modified concurrently")

// OrderRepository defines the persistence contract for order aggregates.
// Orders are append-and-update only; cancellation is a status, never a row
// removal.
type OrderRepository interface {
	// Add persists a new order together with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, verification code and updated_at changes using
	// compare-and-swap on the aggregate version. Returns
	// ErrConcurrentModification on a stale write.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByCustomer retrieves a customer's orders, newest first.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetAll retrieves every order, newest first. Admin use.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllInStatus retrieves orders currently in the given status, newest
	// first. Admin use.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
