package commands

import (
	"context"

	"fishmarket/internal/core/domain/model/cart"
)

// SetCartQuantityCommandHandler handles absolute quantity changes on a cart
// line, including removal when the requested quantity is zero.
type SetCartQuantityCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewSetCartQuantityCommandHandler creates a handler for quantity updates.
func NewSetCartQuantityCommandHandler(uowFactory CartUoWFactory) SetCartQuantityCommandHandler {
	return SetCartQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quantity change and returns the updated line, or nil
// when the line was removed. A rejected quantity (below the 0.25 kg floor)
// leaves the stored line unchanged.
func (h *SetCartQuantityCommandHandler) Handle(ctx context.Context, cmd SetCartQuantityCommand) (*cart.Item, error) {
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

	cartRepo := uow.CartRepository()
	item, err := cartRepo.Get(ctx, cmd.CartItemID())
	if err != nil {
		return nil, err
	}

	if cmd.Quantity() == 0 {
		if err = cartRepo.Delete(ctx, item.ID()); err != nil {
			return nil, err
		}
		return nil, uow.Commit(ctx)
	}

	if err = item.SetQuantity(cmd.Quantity()); err != nil {
		return nil, err
	}

	if err = cartRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
