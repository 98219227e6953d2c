package commands

import (
	"context"
	"errors"

	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/pkg/guard"
)

var (
	ErrRemoveCartItemCommandIsNotConstructed = errors.New(
		"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
	)
)

// RemoveCartItemCommand represents a request to delete one cart line.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	cartItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand validates the line identifier.
func NewRemoveCartItemCommand(cartItemID kernel.UUID) (RemoveCartItemCommand, error) {
	if err := cartItemID.Validate(); err != nil {
		return RemoveCartItemCommand{}, err
	}

	return RemoveCartItemCommand{
		cartItemID: cartItemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// CartItemID returns the line being removed.
func (c RemoveCartItemCommand) CartItemID() kernel.UUID {
	return c.cartItemID
}

// RemoveCartItemCommandHandler deletes a single cart line. Removal is
// idempotent; deleting an absent line is not an error.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveCartItemCommandHandler creates a handler for cart-line removal.
func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal.
func (h *RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CartRepository().Delete(ctx, cmd.CartItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
