package commands

import (
	"context"
	"errors"

	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/pkg/guard"
)

var (
	ErrClearCartCommandIsNotConstructed = errors.New(
		"ClearCartCommand must be created via NewClearCartCommand constructor",
	)
)

// ClearCartCommand represents a request to empty a user's cart.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClearCartCommand validates the user identifier.
func NewClearCartCommand(userID kernel.UUID) (ClearCartCommand, error) {
	if err := userID.Validate(); err != nil {
		return ClearCartCommand{}, err
	}

	return ClearCartCommand{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

// UserID returns the cart owner.
func (c ClearCartCommand) UserID() kernel.UUID {
	return c.userID
}

// ClearCartCommandHandler empties a user's cart. The delete is idempotent,
// so a clear against an already-empty cart succeeds.
type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewClearCartCommandHandler creates a handler for cart clears.
func NewClearCartCommandHandler(uowFactory CartUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the clear.
func (h *ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
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

	if err := uow.CartRepository().DeleteAllByUser(ctx, cmd.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
