package commands

import (
	"errors"

	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/core/domain/model/order"
	"fishmarket/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents an admin request to move an order to a
// target status. For the delivered transition the command carries the code the
// delivery agent collected at the doorstep; for every other transition the
// code field is ignored.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	target      order.Status
	enteredCode string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand validates the order identifier and resolves the
// target status from its wire label.
func NewChangeOrderStatusCommand(orderID kernel.UUID, target, enteredCode string) (ChangeOrderStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	status, err := order.StatusFromString(target)
	if err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID:     orderID,
		target:      status,
		enteredCode: enteredCode,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order being transitioned.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

// EnteredCode returns the code presented at the doorstep, "" when the target
// is not delivered.
func (c ChangeOrderStatusCommand) EnteredCode() string {
	return c.enteredCode
}
