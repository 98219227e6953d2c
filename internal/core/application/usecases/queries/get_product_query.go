package queries

import (
	"context"
	"errors"

	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/core/ports"
	"fishmarket/internal/pkg/guard"
)

var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

// GetProductQuery retrieves a single catalog product by identifier.
type GetProductQuery struct {
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductQuery creates a product detail query.
func NewGetProductQuery(productID kernel.UUID) (GetProductQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductQuery{}, err
	}
	return GetProductQuery{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// ProductID returns the requested product.
func (q GetProductQuery) ProductID() kernel.UUID {
	return q.productID
}

// GetProductQueryHandler reads one product through the repository port, so it
// benefits from the same cache decoration as the listing.
type GetProductQueryHandler struct {
	products ports.ProductRepository
}

// NewGetProductQueryHandler creates a handler for product detail reads.
func NewGetProductQueryHandler(products ports.ProductRepository) GetProductQueryHandler {
	return GetProductQueryHandler{products: products}
}

// Handle returns the product read model, or the repository's
// ObjectNotFoundError.
func (h GetProductQueryHandler) Handle(
	ctx context.Context,
	query GetProductQuery,
) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	aggregate, err := h.products.Get(ctx, query.ProductID())
	if err != nil {
		return ProductResponse{}, err
	}
	return productResponseFromAggregate(aggregate), nil
}
