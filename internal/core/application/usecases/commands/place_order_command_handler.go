package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fishmarket/internal/core/domain/model/order"
	"fishmarket/internal/core/ports"
	"fishmarket/internal/pkg/errs"
)

var (
	// ErrEmptyCart is returned when a checkout is attempted with no cart
	// lines. Nothing is persisted.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrOrderCreationFailed wraps persistence failures during placement.
	// The transaction rolls back, so the cart survives intact and the
	// customer can retry.
	ErrOrderCreationFailed = errors.New("order creation failed")
)

// PlaceOrderCommandHandler converts a cart into an order. The order row, its
// line items and the cart clear commit in a single transaction: either the
// customer ends up with an order and an empty cart, or with their cart
// untouched.
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "place_order"),
	}
}

// Handle processes the place-order command and returns the created order.
// Line prices are snapshotted from the catalog at placement time, so later
// price edits never change what the customer owes.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
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
	lines, err := cartRepo.GetAllByUser(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	productRepo := uow.ProductRepository()
	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		product, getErr := productRepo.Get(ctx, line.ProductID())
		if getErr != nil {
			if errors.Is(getErr, errs.ErrObjectNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrProductNotAvailable, line.ProductID())
			}
			return nil, getErr
		}
		if !product.IsAvailable() {
			return nil, fmt.Errorf("%w: %s", ErrProductNotAvailable, product.Name())
		}

		item, itemErr := order.NewItem(line.ProductID(), line.Quantity(), product.Price())
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.UserID(),
		cmd.Address(),
		cmd.Phone(),
		cmd.Notes(),
		cmd.PaymentMethod(),
		items,
	)
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOrderCreationFailed, err)
	}

	if err = cartRepo.DeleteAllByUser(ctx, cmd.UserID()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOrderCreationFailed, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOrderCreationFailed, err)
	}

	if h.publisher != nil {
		if err = h.publisher.PublishOrderPlaced(ctx, aggregate); err != nil {
			h.logger.Warn("publish order placed failed",
				"order_id", aggregate.ID().String(), "error", err)
		}
	}

	return aggregate, nil
}
