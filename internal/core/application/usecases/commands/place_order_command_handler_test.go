package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"fishmarket/internal/core/application/usecases/commands"
	"fishmarket/internal/core/domain/model/cart"
	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/core/domain/model/order"
	"fishmarket/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCartLine(t *testing.T, userID, productID kernel.UUID, quantity float64) *cart.Item {
	t.Helper()
	line, err := cart.NewItem(kernel.NewUUID(), userID, productID, quantity)
	require.NoError(t, err)
	return line
}

func testProduct(t *testing.T, id kernel.UUID, price float64) *product.Product {
	t.Helper()
	p, err := product.NewProduct(id, "Seer Fish", "", price, "Fresh Fish", 10, product.UnitKg, "")
	require.NoError(t, err)
	return p
}

func testPlaceOrderCommand(t *testing.T, orderID, userID kernel.UUID) commands.PlaceOrderCommand {
	t.Helper()
	cmd, err := commands.NewPlaceOrderCommand(
		orderID, userID,
		"12 Harbour Road", "Fort Kochi", "Kochi", "682001", "",
		"9847012345", "", string(order.PaymentCashOnDelivery),
	)
	require.NoError(t, err)
	return cmd
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	userID := kernel.NewUUID()
	firstProduct := kernel.NewUUID()
	secondProduct := kernel.NewUUID()
	cmd := testPlaceOrderCommand(t, orderID, userID)

	lines := []*cart.Item{
		testCartLine(t, userID, firstProduct, 1.5),
		testCartLine(t, userID, secondProduct, 0.25),
	}

	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetAllByUser", ctx, userID).Return(lines, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, firstProduct).Return(testProduct(t, firstProduct, 450), nil).Once(),
		productRepo.On("Get", ctx, secondProduct).Return(testProduct(t, secondProduct, 800), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		cartRepo.On("DeleteAllByUser", ctx, userID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockOrderEventPublisher)
	publisher.On("PublishOrderPlaced", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, publisher, discardLogger())
	placed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, placed.ID().IsEqual(orderID))
	assert.Equal(t, order.Pending, placed.Status())
	assert.Empty(t, placed.VerificationCode())
	assert.Len(t, placed.Items(), 2)
	// 1.5 x 450 + 0.25 x 800
	assert.InDelta(t, 875.0, placed.TotalAmount(), 1e-9)

	cartRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd := testPlaceOrderCommand(t, kernel.NewUUID(), userID)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetAllByUser", ctx, userID).Return([]*cart.Item{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, nil, discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrEmptyCart)
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ProductUnavailable(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd := testPlaceOrderCommand(t, kernel.NewUUID(), userID)

	unavailable := testProduct(t, productID, 450)
	unavailable.SetAvailability(false)

	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetAllByUser", ctx, userID).
			Return([]*cart.Item{testCartLine(t, userID, productID, 1)}, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, productID).Return(unavailable, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, nil, discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrProductNotAvailable)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd := testPlaceOrderCommand(t, kernel.NewUUID(), userID)

	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetAllByUser", ctx, userID).
			Return([]*cart.Item{testCartLine(t, userID, productID, 1)}, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, productID).Return(testProduct(t, productID, 450), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, nil, discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrOrderCreationFailed)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_PublishFailureDoesNotFailPlacement(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd := testPlaceOrderCommand(t, kernel.NewUUID(), userID)

	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetAllByUser", ctx, userID).
			Return([]*cart.Item{testCartLine(t, userID, productID, 1)}, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, productID).Return(testProduct(t, productID, 450), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		cartRepo.On("DeleteAllByUser", ctx, userID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockOrderEventPublisher)
	publisher.On("PublishOrderPlaced", ctx, mock.AnythingOfType("*order.Order")).
		Return(errors.New("broker unreachable")).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, publisher, discardLogger())
	placed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, placed)
	publisher.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PlaceOrderCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	h := commands.NewPlaceOrderCommandHandler(factory, nil, discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
