package queries

import (
	"context"

	"fishmarket/internal/core/domain/model/product"
	"fishmarket/internal/core/ports"
)

// GetProductsQueryHandler reads the catalog through the product repository
// port rather than raw SQL: catalog reads dominate traffic and the wired
// repository is the cache-decorated one, so the hot path stays off postgres.
type GetProductsQueryHandler struct {
	products ports.ProductRepository
}

// NewGetProductsQueryHandler creates a handler for catalog listings.
func NewGetProductsQueryHandler(products ports.ProductRepository) GetProductsQueryHandler {
	return GetProductsQueryHandler{products: products}
}

// Handle lists available products, optionally filtered by category. An
// unknown category yields an empty list, matching a category with no stock.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var err error
	var aggregates []*product.Product
	if category := query.Category(); category != "" {
		aggregates, err = h.products.GetAllByCategory(ctx, category)
	} else {
		aggregates, err = h.products.GetAllAvailable(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		responses = append(responses, productResponseFromAggregate(aggregate))
	}
	return responses, nil
}
