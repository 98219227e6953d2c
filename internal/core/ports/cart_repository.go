package ports

import (
	"context"

	"fishmarket/internal/core/domain/model/cart"
	"fishmarket/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart lines. The
// (user, product) pair is unique; upsert semantics live in the command
// handlers, which read before writing.
type CartRepository interface {
	// Add persists a new cart line.
	Add(ctx context.Context, item *cart.Item) error

	// Update persists a quantity change.
	Update(ctx context.Context, item *cart.Item) error

	// Get retrieves a cart line by identifier.
	Get(ctx context.Context, id kernel.UUID) (*cart.Item, error)

	// GetByUserAndProduct retrieves the user's line for a product, or an
	// ObjectNotFoundError when the product is not in the cart.
	GetByUserAndProduct(ctx context.Context, userID, productID kernel.UUID) (*cart.Item, error)

	// GetAllByUser retrieves the user's cart, newest first.
	GetAllByUser(ctx context.Context, userID kernel.UUID) ([]*cart.Item, error)

	// Delete removes a single line. Removing an absent line is not an error;
	// clears must be idempotent.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteAllByUser empties the user's cart. Idempotent.
	DeleteAllByUser(ctx context.Context, userID kernel.UUID) error
}
