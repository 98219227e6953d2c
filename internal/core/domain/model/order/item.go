package order

import (
	"errors"
	"fmt"

	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/pkg/errs"
	"fishmarket/internal/pkg/guard"
)

var (
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")
)

// Item is one product line within an order. Quantity is weight in kilograms
// for weighed products or a unit count otherwise. Unit price is a snapshot of
// the product price at order time, so historical orders are unaffected by
// later price changes. Items are immutable after creation.
type Item struct {
	productID  kernel.UUID
	quantity   float64
	unitPrice  float64
	totalPrice float64

	guard guard.ConstructorGuard
}

// NewItem creates an order line, computing total price as quantity × unit
// price.
func NewItem(productID kernel.UUID, quantity, unitPrice float64) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%v is not greater than 0", quantity))
	}
	if unitPrice <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%v is not greater than 0", unitPrice))
	}

	return Item{
		productID:  productID,
		quantity:   quantity,
		unitPrice:  unitPrice,
		totalPrice: quantity * unitPrice,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreItem reconstructs a persisted line, keeping the stored total rather
// than recomputing it.
func RestoreItem(productID kernel.UUID, quantity, unitPrice, totalPrice float64) (Item, error) {
	item, err := NewItem(productID, quantity, unitPrice)
	if err != nil {
		return Item{}, err
	}

	item.totalPrice = totalPrice
	return item, nil
}

// Validate ensures the item was created through a constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the product this line refers to.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the ordered weight in kilograms, or unit count for
// piece-priced products.
func (i Item) Quantity() float64 {
	return i.quantity
}

// UnitPrice returns the product price snapshot taken at order time.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// TotalPrice returns quantity × unit price.
func (i Item) TotalPrice() float64 {
	return i.totalPrice
}
