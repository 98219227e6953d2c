package commands_test

import (
	"context"
	"errors"

	"fishmarket/internal/core/application/usecases/commands"
	"fishmarket/internal/core/domain/model/cart"
	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/core/domain/model/order"
	"fishmarket/internal/core/domain/model/product"
	"fishmarket/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockOrderRepository) GetAllByCustomer(_ context.Context, _ kernel.UUID) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) GetAllInStatus(_ context.Context, _ order.Status) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Add(ctx context.Context, item *cart.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockCartRepository) Update(ctx context.Context, item *cart.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockCartRepository) Get(ctx context.Context, id kernel.UUID) (*cart.Item, error) {
	args := m.Called(ctx, id)
	if item := args.Get(0); item != nil {
		return item.(*cart.Item), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockCartRepository) GetByUserAndProduct(ctx context.Context, userID, productID kernel.UUID) (*cart.Item, error) {
	args := m.Called(ctx, userID, productID)
	if item := args.Get(0); item != nil {
		return item.(*cart.Item), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockCartRepository) GetAllByUser(ctx context.Context, userID kernel.UUID) ([]*cart.Item, error) {
	args := m.Called(ctx, userID)
	if items := args.Get(0); items != nil {
		return items.([]*cart.Item), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockCartRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCartRepository) DeleteAllByUser(ctx context.Context, userID kernel.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(_ context.Context, _ *product.Product) error {
	return errors.New("not implemented in mock")
}
func (m *MockProductRepository) Update(_ context.Context, _ *product.Product) error {
	return errors.New("not implemented in mock")
}
func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*product.Product), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockProductRepository) GetAllAvailable(_ context.Context) ([]*product.Product, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockProductRepository) GetAllByCategory(_ context.Context, _ string) ([]*product.Product, error) {
	return nil, errors.New("not implemented in mock")
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCartUoW struct{ mock.Mock }

func (m *MockCartUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCartUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCartUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCartUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}
func (m *MockCartUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

// MockUoW spans all three repositories, matching the unit of work used by
// order placement.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}
func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) PublishOrderPlaced(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderEventPublisher) PublishOrderStatusChanged(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

// fixedCodeGenerator pins the issued verification code so tests can assert on
// its value.
type fixedCodeGenerator struct{ code order.VerificationCode }

func (g fixedCodeGenerator) Generate() order.VerificationCode { return g.code }
