package commands

import (
	"context"
	"errors"
	"fmt"

	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/core/domain/model/order"
	"fishmarket/internal/pkg/errs"
	"fishmarket/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)

	// ErrCancellationNotAllowed is returned when a customer tries to cancel
	// an order that has already been confirmed. Past that point cancellation
	// is an admin decision.
	ErrCancellationNotAllowed = errors.New("order can no longer be cancelled by the customer")
)

// CancelOrderCommand represents a customer cancelling their own pending order.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand validates both identifiers.
func NewCancelOrderCommand(orderID, userID kernel.UUID) (CancelOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), userID.Validate()); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		orderID: orderID,
		userID:  userID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the requesting customer.
func (c CancelOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// CancelOrderCommandHandler handles customer-initiated cancellation. Unlike
// the admin transition handler it enforces ownership and restricts the move
// to pending orders.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for customer cancellations.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation. An order belonging to another customer
// is reported as not found rather than as a permission failure.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !aggregate.CustomerID().IsEqual(cmd.UserID()) {
		return nil, errs.NewObjectNotFoundError("order_id", cmd.OrderID().String())
	}

	if aggregate.Status() != order.Pending {
		return nil, fmt.Errorf("%w: status is %s", ErrCancellationNotAllowed, aggregate.Status())
	}

	if err = aggregate.Cancel(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
