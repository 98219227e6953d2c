package commands

import (
	"context"
	"errors"

	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/core/domain/model/product"
	"fishmarket/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents an admin adding a product to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID     kernel.UUID
	name          string
	description   string
	price         float64
	category      string
	stockQuantity float64
	unit          product.Unit
	imageURL      string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand validates the identifier and resolves the unit
// label; the remaining catalog rules are enforced by the aggregate
// constructor during handling.
func NewCreateProductCommand(
	productID kernel.UUID,
	name string,
	description string,
	price float64,
	category string,
	stockQuantity float64,
	unit string,
	imageURL string,
) (CreateProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return CreateProductCommand{}, err
	}

	u := product.Unit(unit)
	if err := u.Validate(); err != nil {
		return CreateProductCommand{}, err
	}

	return CreateProductCommand{
		productID:     productID,
		name:          name,
		description:   description,
		price:         price,
		category:      category,
		stockQuantity: stockQuantity,
		unit:          u,
		imageURL:      imageURL,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier for the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// CreateProductCommandHandler handles admin catalog additions.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for catalog additions.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the product and returns the persisted aggregate.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := product.NewProduct(
		cmd.productID,
		cmd.name,
		cmd.description,
		cmd.price,
		cmd.category,
		cmd.stockQuantity,
		cmd.unit,
		cmd.imageURL,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
