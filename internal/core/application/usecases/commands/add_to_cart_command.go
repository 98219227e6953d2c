package commands

import (
	"errors"
	"fmt"

	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/pkg/errs"
	"fishmarket/internal/pkg/guard"
)

var (
	ErrAddToCartCommandIsNotConstructed = errors.New(
		"AddToCartCommand must be created via NewAddToCartCommand constructor",
	)
)

// AddToCartCommand represents a request to put a quantity of a product into
// a user's cart. If the product is already in the cart the quantity is
// incremented rather than a second row created. A zero quantity routes to
// removal of the existing line.
type AddToCartCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	productID kernel.UUID
	quantity  float64

	guard guard.ConstructorGuard
}

// NewAddToCartCommand validates identifiers and that the quantity is not
// negative. The minimum-order-weight floor is enforced by the cart aggregate
// against the resulting quantity, not the delta.
func NewAddToCartCommand(userID, productID kernel.UUID, quantity float64) (AddToCartCommand, error) {
	cmd := AddToCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddToCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

// UserID returns the cart owner.
func (c AddToCartCommand) UserID() kernel.UUID {
	return c.userID
}

// ProductID returns the product being added.
func (c AddToCartCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the weight or unit-count delta; zero means remove.
func (c AddToCartCommand) Quantity() float64 {
	return c.quantity
}

func (c *AddToCartCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *AddToCartCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *AddToCartCommand) setQuantity(quantity float64) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%v is negative", quantity))
	}
	c.quantity = quantity
	return nil
}
