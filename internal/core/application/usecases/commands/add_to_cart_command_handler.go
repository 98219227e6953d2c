package commands

import (
	"context"
	"errors"
	"fmt"

	"fishmarket/internal/core/domain/model/cart"
	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/pkg/errs"
)

// ErrProductNotAvailable is returned when the product does not exist in the
// catalog or is currently flagged unavailable.
var ErrProductNotAvailable = errors.New("product is not available")

// AddToCartCommandHandler handles the upsert of a cart line. At most one row
// exists per (user, product): a repeated add increments the existing line's
// quantity inside the same transaction.
type AddToCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddToCartCommandHandler creates a handler for add-to-cart operations.
func NewAddToCartCommandHandler(uowFactory CartUoWFactory) AddToCartCommandHandler {
	return AddToCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-to-cart command and returns the resulting cart
// line, or nil when a zero quantity removed the line.
func (h *AddToCartCommandHandler) Handle(ctx context.Context, cmd AddToCartCommand) (*cart.Item, error) {
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

	productRepo := uow.ProductRepository()
	product, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotAvailable, cmd.ProductID())
		}
		return nil, err
	}
	if !product.IsAvailable() {
		return nil, fmt.Errorf("%w: %s", ErrProductNotAvailable, product.Name())
	}

	cartRepo := uow.CartRepository()
	existing, err := cartRepo.GetByUserAndProduct(ctx, cmd.UserID(), cmd.ProductID())
	switch {
	case err == nil:
	case errors.Is(err, errs.ErrObjectNotFound):
		existing = nil
	default:
		return nil, err
	}

	// Zero quantity routes to removal instead of resting a zero-quantity row.
	if cmd.Quantity() == 0 {
		if existing == nil {
			return nil, uow.Commit(ctx)
		}
		if err = cartRepo.Delete(ctx, existing.ID()); err != nil {
			return nil, err
		}
		return nil, uow.Commit(ctx)
	}

	var item *cart.Item
	if existing != nil {
		if err = existing.Increment(cmd.Quantity()); err != nil {
			return nil, err
		}
		if err = cartRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		item = existing
	} else {
		item, err = cart.NewItem(kernel.NewUUID(), cmd.UserID(), cmd.ProductID(), cmd.Quantity())
		if err != nil {
			return nil, err
		}
		if err = cartRepo.Add(ctx, item); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
