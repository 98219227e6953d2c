// Package productrepo persists catalog products.
package productrepo

import (
	"time"

	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO is the database row for a catalog product.
type ProductDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Description   string
	Price         float64
	Category      string `gorm:"index"`
	StockQuantity float64
	Unit          string
	IsAvailable   bool `gorm:"index"`
	ImageURL      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides GORM's default naming to "products".
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Description:   aggregate.Description(),
		Price:         aggregate.Price(),
		Category:      aggregate.Category(),
		StockQuantity: aggregate.StockQuantity(),
		Unit:          string(aggregate.Unit()),
		IsAvailable:   aggregate.IsAvailable(),
		ImageURL:      aggregate.ImageURL(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		dto.Name,
		dto.Description,
		dto.Price,
		dto.Category,
		dto.StockQuantity,
		product.Unit(dto.Unit),
		dto.IsAvailable,
		dto.ImageURL,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
