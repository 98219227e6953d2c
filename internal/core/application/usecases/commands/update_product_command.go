package commands

import (
	"context"
	"errors"

	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/core/domain/model/product"
	"fishmarket/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents an admin editing a catalog product,
// including toggling its storefront availability.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID     kernel.UUID
	name          string
	description   string
	price         float64
	category      string
	stockQuantity float64
	unit          product.Unit
	isAvailable   bool
	imageURL      string

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand validates the identifier and unit label; field
// rules are enforced by the aggregate during handling.
func NewUpdateProductCommand(
	productID kernel.UUID,
	name string,
	description string,
	price float64,
	category string,
	stockQuantity float64,
	unit string,
	isAvailable bool,
	imageURL string,
) (UpdateProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return UpdateProductCommand{}, err
	}

	u := product.Unit(unit)
	if err := u.Validate(); err != nil {
		return UpdateProductCommand{}, err
	}

	return UpdateProductCommand{
		productID:     productID,
		name:          name,
		description:   description,
		price:         price,
		category:      category,
		stockQuantity: stockQuantity,
		unit:          u,
		isAvailable:   isAvailable,
		imageURL:      imageURL,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the product being edited.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// UpdateProductCommandHandler handles admin catalog edits. Price edits do not
// ripple into existing orders, whose line prices were snapshotted at
// placement.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for catalog edits.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the edit and returns the updated aggregate.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*product.Product, error) {
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
	aggregate, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Update(
		cmd.name,
		cmd.description,
		cmd.price,
		cmd.category,
		cmd.stockQuantity,
		cmd.unit,
		cmd.imageURL,
	); err != nil {
		return nil, err
	}
	aggregate.SetAvailability(cmd.isAvailable)

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
