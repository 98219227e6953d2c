package cart

import (
	"errors"
	"fmt"
	"time"

	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/pkg/errs"
)

// MinimumOrderWeight is the smallest non-zero quantity a cart line may rest
// at, in kilograms (250 g). Requested decreases below the floor are rejected,
// never clamped silently.
const MinimumOrderWeight = 0.25

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not
	// created through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("cart Item must be created via NewItem or RestoreItem")

	// ErrBelowMinimumOrder is returned when a quantity change would leave a
	// line strictly between zero and the 0.25 kg floor. The stored quantity
	// is unchanged; the caller should remove the line or pick a larger
	// amount.
	ErrBelowMinimumOrder = errors.New("quantity is below the minimum order weight")
)

// Item is one pending product selection in a user's cart. Unlike order lines
// it is mutable: quantity changes on subsequent adds and updates, and the row
// is deleted on removal, explicit clear, or successful order placement.
type Item struct {
	id        kernel.UUID
	userID    kernel.UUID
	productID kernel.UUID
	quantity  float64
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewItem creates a cart line on first add-to-cart. The quantity must respect
// the minimum order weight.
func NewItem(id, userID, productID kernel.UUID, quantity float64) (*Item, error) {
	if err := errors.Join(id.Validate(), userID.Validate(), productID.Validate()); err != nil {
		return nil, err
	}
	if err := ValidateQuantity(quantity); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Item{
		id:            id,
		userID:        userID,
		productID:     productID,
		quantity:      quantity,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs a persisted cart line.
func RestoreItem(id, userID, productID kernel.UUID, quantity float64, createdAt, updatedAt time.Time) (*Item, error) {
	item, err := NewItem(id, userID, productID, quantity)
	if err != nil {
		return nil, err
	}

	item.createdAt = createdAt
	item.updatedAt = updatedAt
	return item, nil
}

// Validate ensures the item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the cart line's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// UserID returns the owning user's identifier.
func (i *Item) UserID() kernel.UUID {
	return i.userID
}

// ProductID returns the selected product.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the selected weight in kilograms, or unit count for
// piece-priced products.
func (i *Item) Quantity() float64 {
	return i.quantity
}

// CreatedAt returns when the product was first added.
func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

// UpdatedAt returns the last quantity-change timestamp.
func (i *Item) UpdatedAt() time.Time {
	return i.updatedAt
}

// Increment raises the quantity by delta, used when a product already in the
// cart is added again. The resulting quantity must respect the minimum order
// weight; on failure the stored quantity is unchanged.
func (i *Item) Increment(delta float64) error {
	return i.SetQuantity(i.quantity + delta)
}

// SetQuantity replaces the quantity. Zero is not a valid resting value;
// removal is a delete, routed by the caller. The quantity must be positive
// and at or above the floor. On failure the stored quantity is unchanged.
func (i *Item) SetQuantity(quantity float64) error {
	if err := ValidateQuantity(quantity); err != nil {
		return err
	}

	i.quantity = quantity
	i.updatedAt = time.Now().UTC()
	return nil
}

// ValidateQuantity enforces the weight policy for a resting cart quantity:
// positive, and never strictly between zero and the 0.25 kg floor.
func ValidateQuantity(quantity float64) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%v is not greater than 0", quantity))
	}
	if quantity < MinimumOrderWeight {
		return fmt.Errorf("%w: %v kg is below %v kg", ErrBelowMinimumOrder, quantity, MinimumOrderWeight)
	}
	return nil
}
