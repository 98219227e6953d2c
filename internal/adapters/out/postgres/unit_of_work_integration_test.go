package postgres_test

import (
	"context"
	"testing"

	postgresadapter "fishmarket/internal/adapters/out/postgres"
	"fishmarket/internal/adapters/out/postgres/cartrepo"
	"fishmarket/internal/adapters/out/postgres/orderrepo"
	"fishmarket/internal/adapters/out/postgres/productrepo"
	"fishmarket/internal/core/domain/model/cart"
	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/core/domain/model/order"
	"fishmarket/internal/core/domain/model/product"
	"fishmarket/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based unit of work
// against a real PostgreSQL database, including the checkout path where an
// order insert and a cart clear must commit atomically.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&productrepo.ProductDTO{},
		&cartrepo.CartItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, cart_items, products").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.CartRepository())
	suite.NotNil(uow1.ProductRepository())
	suite.NotNil(uow2.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Repeated begin is a no-op, not a nested transaction.
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_CheckoutCommit walks the checkout write set: the order row,
// its items and the cart clear all land in one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CheckoutCommit() {
	ctx := context.Background()
	userID := kernel.NewUUID()

	testProduct := createTestProduct(suite)
	line := createTestCartLine(suite, userID, testProduct.ID())

	setupUow := suite.factory.Create()
	suite.Require().NoError(setupUow.ProductRepository().Add(ctx, testProduct))
	suite.Require().NoError(setupUow.CartRepository().Add(ctx, line))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testOrder := createTestOrderFor(suite, userID, testProduct.ID())
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.CartRepository().DeleteAllByUser(ctx, userID))
	suite.Require().NoError(uow.Commit(ctx))

	verifyUow := suite.factory.Create()

	persisted, err := verifyUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, persisted.Status())

	remaining, err := verifyUow.CartRepository().GetAllByUser(ctx, userID)
	suite.Require().NoError(err)
	suite.Empty(remaining, "Cart should be empty after committed checkout")
}

// TestUnitOfWork_CheckoutRollback verifies a failed checkout leaves the cart
// intact and no order behind.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CheckoutRollback() {
	ctx := context.Background()
	userID := kernel.NewUUID()

	testProduct := createTestProduct(suite)
	line := createTestCartLine(suite, userID, testProduct.ID())

	setupUow := suite.factory.Create()
	suite.Require().NoError(setupUow.ProductRepository().Add(ctx, testProduct))
	suite.Require().NoError(setupUow.CartRepository().Add(ctx, line))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testOrder := createTestOrderFor(suite, userID, testProduct.ID())
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.CartRepository().DeleteAllByUser(ctx, userID))
	suite.Require().NoError(uow.Rollback(ctx))

	verifyUow := suite.factory.Create()

	_, err := verifyUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	remaining, err := verifyUow.CartRepository().GetAllByUser(ctx, userID)
	suite.Require().NoError(err)
	suite.Len(remaining, 1, "Cart should survive a rolled-back checkout")
}

// TestUnitOfWork_RepositoryIsolation verifies transactions from separate unit
// of work instances do not see each other's uncommitted writes.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := createTestOrderFor(suite, kernel.NewUUID(), kernel.NewUUID())
	order2 := createTestOrderFor(suite, kernel.NewUUID(), kernel.NewUUID())

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.OrderRepository().Add(ctx, order1))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, order2))

	_, err := uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")

	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	verifyUow := suite.factory.Create()
	_, err = verifyUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")

	_, err = verifyUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies repositories auto-commit when no
// transaction was begun.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrderFor(suite, kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	verifyUow := suite.factory.Create()
	retrieved, err := verifyUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testOrder.ID()))
}

// TestUnitOfWork_OrderLifecycleWorkflow drives an order from placement to
// delivered within transactions, verifying persisted state at each step.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderLifecycleWorkflow() {
	ctx := context.Background()

	testOrder := createTestOrderFor(suite, kernel.NewUUID(), kernel.NewUUID())
	setupUow := suite.factory.Create()
	suite.Require().NoError(setupUow.OrderRepository().Add(ctx, testOrder))

	transition := func(apply func(*order.Order) error) *order.Order {
		uow := suite.factory.Create()
		suite.Require().NoError(uow.Begin(ctx))
		current, err := uow.OrderRepository().Get(ctx, testOrder.ID())
		suite.Require().NoError(err)
		suite.Require().NoError(apply(current))
		suite.Require().NoError(uow.OrderRepository().Update(ctx, current))
		suite.Require().NoError(uow.Commit(ctx))
		return current
	}

	transition(func(o *order.Order) error { return o.Confirm() })
	transition(func(o *order.Order) error { return o.StartPreparing() })

	var issued order.VerificationCode
	transition(func(o *order.Order) error {
		var err error
		issued, err = o.StartDelivery("4821")
		return err
	})
	suite.Equal(order.VerificationCode("4821"), issued)

	transition(func(o *order.Order) error { return o.CompleteDelivery("4821") })

	verifyUow := suite.factory.Create()
	final, err := verifyUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, final.Status())
	suite.Equal(order.PaymentPaid, final.PaymentStatus(), "COD settles on delivery")
	suite.Equal(order.VerificationCode("4821"), final.VerificationCode())
	suite.Equal(5, final.Version())
}

func createTestProduct(suite *UnitOfWorkIntegrationTestSuite) *product.Product {
	p, err := product.NewProduct(
		kernel.NewUUID(), "Seer Fish", "fresh catch", 650, "Fresh Fish", 10, product.UnitKg, "")
	suite.Require().NoError(err)
	return p
}

func createTestCartLine(suite *UnitOfWorkIntegrationTestSuite, userID, productID kernel.UUID) *cart.Item {
	line, err := cart.NewItem(kernel.NewUUID(), userID, productID, 1.5)
	suite.Require().NoError(err)
	return line
}

func createTestOrderFor(suite *UnitOfWorkIntegrationTestSuite, customerID, productID kernel.UUID) *order.Order {
	address, err := order.NewDeliveryAddress("12 Harbour Road", "Fort Kochi", "Kochi", "682001", "")
	suite.Require().NoError(err)

	item, err := order.NewItem(productID, 1.5, 650)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), customerID, address, "9847012345", "",
		order.PaymentCashOnDelivery, []order.Item{item})
	suite.Require().NoError(err)
	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
