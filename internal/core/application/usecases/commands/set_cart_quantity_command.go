package commands

import (
	"errors"
	"fmt"

	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/pkg/errs"
	"fishmarket/internal/pkg/guard"
)

var (
	ErrSetCartQuantityCommandIsNotConstructed = errors.New(
		"SetCartQuantityCommand must be created via NewSetCartQuantityCommand constructor",
	)
)

// SetCartQuantityCommand represents a request to change a cart line to an
// absolute quantity. Zero means remove the line; values strictly between
// zero and the minimum order weight are rejected by the aggregate.
type SetCartQuantityCommand struct { //nolint:recvcheck //using for validation
	cartItemID kernel.UUID
	quantity   float64

	guard guard.ConstructorGuard
}

// NewSetCartQuantityCommand validates the identifier and that the quantity is
// not negative.
func NewSetCartQuantityCommand(cartItemID kernel.UUID, quantity float64) (SetCartQuantityCommand, error) {
	cmd := SetCartQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cartItemID.Validate(); err != nil {
		return SetCartQuantityCommand{}, err
	}
	if quantity < 0 {
		return SetCartQuantityCommand{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%v is negative", quantity))
	}

	cmd.cartItemID = cartItemID
	cmd.quantity = quantity
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCartQuantityCommand) Validate() error {
	return c.guard.Validate(ErrSetCartQuantityCommandIsNotConstructed)
}

// CartItemID returns the line being changed.
func (c SetCartQuantityCommand) CartItemID() kernel.UUID {
	return c.cartItemID
}

// Quantity returns the requested absolute quantity; zero means remove.
func (c SetCartQuantityCommand) Quantity() float64 {
	return c.quantity
}
