package queries

import (
	"errors"
	"time"

	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/core/domain/model/product"
	"fishmarket/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves the storefront catalog, optionally narrowed to a
// category.
type GetProductsQuery struct {
	category string

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a catalog listing query. category is optional;
// an empty string lists every available product.
func NewGetProductsQuery(category string) GetProductsQuery {
	return GetProductsQuery{category: category, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// Category returns the filter, "" when none.
func (q GetProductsQuery) Category() string {
	return q.category
}

// ProductResponse is the catalog read model shared by the listing and by-id
// queries.
type ProductResponse struct {
	ID            kernel.UUID
	Name          string
	Description   string
	Price         float64
	Category      string
	StockQuantity float64
	Unit          string
	IsAvailable   bool
	ImageURL      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func productResponseFromAggregate(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID(),
		Name:          p.Name(),
		Description:   p.Description(),
		Price:         p.Price(),
		Category:      p.Category(),
		StockQuantity: p.StockQuantity(),
		Unit:          string(p.Unit()),
		IsAvailable:   p.IsAvailable(),
		ImageURL:      p.ImageURL(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}
