package cmd

import (
	"log/slog"
	"time"

	httpin "fishmarket/internal/adapters/in/http"
	"fishmarket/internal/adapters/out/kafka"
	"fishmarket/internal/adapters/out/postgres"
	"fishmarket/internal/adapters/out/rediscache"
	"fishmarket/internal/core/application/usecases/commands"
	"fishmarket/internal/core/application/usecases/queries"
	"fishmarket/internal/core/domain/model/order"
	"fishmarket/internal/core/ports"
	"fishmarket/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. All construction
// decisions live here; the rest of the application receives interfaces.
type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	redisClient   redis.UniversalClient
	productCache  *rediscache.ProductCache
	publisher     ports.OrderEventPublisher
	codeGenerator order.CodeGenerator
	logger        *slog.Logger

	staleOrderThreshold time.Duration
}

// NewCompositionRoot builds the object graph from the opened connections.
// The kafka publisher may be nil when no broker is configured; handlers treat
// a nil publisher as "do not publish".
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	redisClient redis.UniversalClient,
	logger *slog.Logger,
) CompositionRoot {
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)

	var publisher ports.OrderEventPublisher
	if config.KafkaHost != "" {
		publisher = kafka.NewOrderEventPublisher(
			[]string{config.KafkaHost}, config.KafkaOrderChangedTopic)
	}

	var productCache *rediscache.ProductCache
	if redisClient != nil {
		productCache = rediscache.NewProductCache(
			uowFactory.Create().ProductRepository(), redisClient, logger)
	}

	threshold := 30 * time.Minute
	if config.StaleOrderThreshold != "" {
		if parsed, err := time.ParseDuration(config.StaleOrderThreshold); err == nil {
			threshold = parsed
		}
	}

	return CompositionRoot{
		gormDB:              gormDB,
		uowFactory:          *uowFactory,
		redisClient:         redisClient,
		productCache:        productCache,
		publisher:           publisher,
		codeGenerator:       order.NewRandomCodeGenerator(),
		logger:              logger,
		staleOrderThreshold: threshold,
	}
}

// productReader returns the repository serving catalog reads: the redis
// decorator when one is wired, otherwise postgres directly.
func (c *CompositionRoot) productReader() ports.ProductRepository {
	if c.productCache != nil {
		return c.productCache
	}
	return c.uowFactory.Create().ProductRepository()
}

func (c *CompositionRoot) CreateAddToCartCommandHandler() commands.AddToCartCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddToCartCommandHandler(f)
}

func (c *CompositionRoot) CreateSetCartQuantityCommandHandler() commands.SetCartQuantityCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetCartQuantityCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveCartItemCommandHandler(f)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClearCartCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.codeGenerator, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory())
}

// productUoWFactory produces the unit of work behind admin catalog writes.
// When redis is wired the transactional repository is wrapped in the cache
// decorator, so a committed create or update drops the stale catalog keys
// instead of waiting out the TTL.
func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		uow := c.uowFactory.Create()
		if c.redisClient == nil {
			return uow
		}
		return cachedProductUoW{
			ProductUoW: uow,
			client:     c.redisClient,
			logger:     c.logger,
		}
	})
}

// cachedProductUoW routes product writes through the cache decorator. The
// repository is wrapped per call so it stays bound to whatever transaction
// the unit of work currently holds.
type cachedProductUoW struct {
	commands.ProductUoW
	client redis.UniversalClient
	logger *slog.Logger
}

func (u cachedProductUoW) ProductRepository() ports.ProductRepository {
	return rediscache.NewProductCache(u.ProductUoW.ProductRepository(), u.client, u.logger)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.productReader())
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.productReader())
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderDetailsQueryHandler() queries.GetOrderDetailsQueryHandler {
	return queries.NewGetOrderDetailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAdminStatsQueryHandler() queries.GetAdminStatsQueryHandler {
	return queries.NewGetAdminStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSalesReportQueryHandler() queries.GetSalesReportQueryHandler {
	return queries.NewGetSalesReportQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the echo server with every handler wired.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateAddToCartCommandHandler(),
		c.CreateSetCartQuantityCommandHandler(),
		c.CreateRemoveCartItemCommandHandler(),
		c.CreateClearCartCommandHandler(),
		c.CreatePlaceOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateCreateProductCommandHandler(),
		c.CreateUpdateProductCommandHandler(),
		c.CreateGetProductsQueryHandler(),
		c.CreateGetProductQueryHandler(),
		c.CreateGetCartQueryHandler(),
		c.CreateGetCustomerOrdersQueryHandler(),
		c.CreateGetOrderDetailsQueryHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetAdminStatsQueryHandler(),
		c.CreateGetSalesReportQueryHandler(),
	)
}

// CreateJobManager assembles the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetAllOrdersQueryHandler(),
		c.staleOrderThreshold,
		c.logger,
	)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
