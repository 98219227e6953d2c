// Package cartrepo persists cart lines. One row per (user, product) pair,
// enforced with a composite unique index.
package cartrepo

import (
	"time"

	"fishmarket/internal/core/domain/model/cart"
	"fishmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartItemDTO is the database row for a cart line. Quantity is kilograms for
// weight-priced products and a count for piece-priced ones; the engine treats
// both as the same fractional scale.
type CartItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_cart_user_product"`
	ProductID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_user_product"`
	Quantity  float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming to "cart_items".
func (CartItemDTO) TableName() string {
	return "cart_items"
}

func fromDomain(item *cart.Item) CartItemDTO {
	return CartItemDTO{
		ID:        item.ID().Bytes(),
		UserID:    item.UserID().Bytes(),
		ProductID: item.ProductID().Bytes(),
		Quantity:  item.Quantity(),
		CreatedAt: item.CreatedAt(),
		UpdatedAt: item.UpdatedAt(),
	}
}

func toDomain(dto CartItemDTO) (*cart.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return cart.RestoreItem(id, userID, productID, dto.Quantity, dto.CreatedAt, dto.UpdatedAt)
}
