package commands_test

import (
	"testing"

	"fishmarket/internal/core/application/usecases/commands"
	"fishmarket/internal/core/domain/model/cart"
	"fishmarket/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCartUoWMocks() (*MockCartRepository, *MockCartUoW, *MockCartUoWFactory) {
	cartRepo := new(MockCartRepository)
	uow := new(MockCartUoW)
	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("CartRepository").Return(cartRepo).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	return cartRepo, uow, factory
}

func TestSetCartQuantityCommandHandler_Handle_UpdatesQuantity(t *testing.T) {
	ctx := t.Context()
	line := testCartLine(t, kernel.NewUUID(), kernel.NewUUID(), 1)
	cmd, err := commands.NewSetCartQuantityCommand(line.ID(), 2.5)
	require.NoError(t, err)

	cartRepo, uow, factory := newCartUoWMocks()
	cartRepo.On("Get", ctx, line.ID()).Return(line, nil).Once()
	cartRepo.On("Update", ctx, line).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewSetCartQuantityCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 2.5, updated.Quantity())
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetCartQuantityCommandHandler_Handle_ZeroRemovesLine(t *testing.T) {
	ctx := t.Context()
	line := testCartLine(t, kernel.NewUUID(), kernel.NewUUID(), 1)
	cmd, err := commands.NewSetCartQuantityCommand(line.ID(), 0)
	require.NoError(t, err)

	cartRepo, uow, factory := newCartUoWMocks()
	cartRepo.On("Get", ctx, line.ID()).Return(line, nil).Once()
	cartRepo.On("Delete", ctx, line.ID()).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewSetCartQuantityCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Nil(t, updated)
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetCartQuantityCommandHandler_Handle_BelowFloorLeavesLineUnchanged(t *testing.T) {
	ctx := t.Context()
	line := testCartLine(t, kernel.NewUUID(), kernel.NewUUID(), 1)
	cmd, err := commands.NewSetCartQuantityCommand(line.ID(), 0.1)
	require.NoError(t, err)

	cartRepo, uow, factory := newCartUoWMocks()
	cartRepo.On("Get", ctx, line.ID()).Return(line, nil).Once()
	// No Update expected; the rejected quantity never reaches the repository.

	h := commands.NewSetCartQuantityCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, cart.ErrBelowMinimumOrder)

	assert.Equal(t, 1.0, line.Quantity())
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveCartItemCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	lineID := kernel.NewUUID()
	cmd, err := commands.NewRemoveCartItemCommand(lineID)
	require.NoError(t, err)

	cartRepo, uow, factory := newCartUoWMocks()
	cartRepo.On("Delete", ctx, lineID).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewRemoveCartItemCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestClearCartCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, err := commands.NewClearCartCommand(userID)
	require.NoError(t, err)

	cartRepo, uow, factory := newCartUoWMocks()
	cartRepo.On("DeleteAllByUser", ctx, userID).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewClearCartCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
