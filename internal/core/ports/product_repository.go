package ports

import (
	"context"

	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
// The cart and order workflows only ever call Get, to snapshot the current
// price; the mutating methods serve admin catalog management.
type ProductRepository interface {
	// Add persists a new catalog product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists admin edits to an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAllAvailable retrieves purchasable products for the storefront.
	GetAllAvailable(ctx context.Context) ([]*product.Product, error)

	// GetAllByCategory retrieves available products in a catalog section.
	GetAllByCategory(ctx context.Context, category string) ([]*product.Product, error)
}
