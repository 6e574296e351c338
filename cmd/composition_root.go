package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	httpadapter "orderdesk/internal/adapters/in/http"
	rabbitmqin "orderdesk/internal/adapters/in/rabbitmq"
	"orderdesk/internal/adapters/out/extractor"
	"orderdesk/internal/adapters/out/memory"
	"orderdesk/internal/adapters/out/notify"
	"orderdesk/internal/adapters/out/postgres"
	"orderdesk/internal/adapters/out/rabbitmq"
	redisadapter "orderdesk/internal/adapters/out/redis"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/jobs"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      kernel.Clock
	logger     *slog.Logger
	instance   string

	cache     ports.ActiveOrderCache
	carts     ports.CartStore
	publisher ports.ChangePublisher
	notifier  ports.Notifier
	extractor ports.DocumentExtractor
	effects   *commands.OrderEffects

	broker      *rabbitmq.Client
	redisClient goredis.UniversalClient
}

// NewCompositionRoot picks the optional adapters: Redis for the active-order cache when
// REDIS_ADDR is set, RabbitMQ for change events and notifications when RABBITMQ_URL is set,
// the HTTP extraction client when EXTRACTOR_URL is set. Each falls back to a process-local
// implementation.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      kernel.NewSystemClock(configs.Location()),
		logger:     logger,
		instance:   instanceName(),
		carts:      memory.NewCartStore(),
	}

	if err := c.initCache(); err != nil {
		return nil, errors.Join(err, c.Close())
	}
	if err := c.initMessaging(); err != nil {
		return nil, errors.Join(err, c.Close())
	}
	if err := c.initExtractor(); err != nil {
		return nil, errors.Join(err, c.Close())
	}

	c.effects = commands.NewOrderEffects(c.cache, c.publisher, c.notifier, c.clock, logger)
	return c, nil
}

func (c *CompositionRoot) initCache() error {
	if c.configs.RedisAddr == "" {
		c.cache = memory.NewActiveOrderCache()
		return nil
	}

	client := goredis.NewClient(&goredis.Options{Addr: c.configs.RedisAddr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("connect to redis at %s: %w", c.configs.RedisAddr, err)
	}

	c.redisClient = client
	c.cache = redisadapter.NewActiveOrderCache(client, redisadapter.DefaultKeyPrefix, redisadapter.DefaultTTL, c.logger)
	return nil
}

func (c *CompositionRoot) initMessaging() error {
	local := notify.NewLogNotifier(c.logger)
	if c.configs.RabbitMQURL == "" {
		c.publisher = notify.NewLogChangePublisher(c.logger)
		c.notifier = local
		return nil
	}

	broker, err := rabbitmq.Dial(c.configs.RabbitMQURL)
	if err != nil {
		return err
	}
	c.broker = broker

	topology := c.topology()
	if err = broker.Declare(topology); err != nil {
		return err
	}

	c.publisher = rabbitmq.NewChangePublisher(broker, topology.OrdersExchange, c.instance)
	c.notifier = notify.NewMultiNotifier(
		local,
		rabbitmq.NewFanoutNotifier(broker, topology.NotificationsExchange, c.instance, c.clock, c.logger),
	)
	return nil
}

// topology gives every instance its own cache queue so that each one sees every change.
func (c *CompositionRoot) topology() rabbitmq.Topology {
	topology := rabbitmq.DefaultTopology()
	topology.OrdersExchange = c.configs.OrderEventsExchange
	topology.CacheQueue = rabbitmq.DefaultCacheQueue + "." + c.instance
	return topology
}

func (c *CompositionRoot) initExtractor() error {
	if c.configs.ExtractorURL == "" {
		c.logger.Warn("EXTRACTOR_URL is not set, receipt scanning is disabled")
		c.extractor = extractor.Unavailable{}
		return nil
	}

	client, err := extractor.NewHTTPClient(c.configs.ExtractorURL, c.configs.ExtractorAPIKey, extractor.DefaultTimeout, c.logger)
	if err != nil {
		return err
	}
	c.extractor = client
	return nil
}

// Close releases the broker connection and the Redis client.
func (c *CompositionRoot) Close() error {
	var errs []error
	if c.broker != nil {
		errs = append(errs, c.broker.Close())
	}
	if c.redisClient != nil {
		errs = append(errs, c.redisClient.Close())
	}
	return errors.Join(errs...)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uowFactoryFunc() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderFactory() *order.Factory {
	return order.NewFactory(c.clock)
}

func (c *CompositionRoot) CreateCreateCartCommandHandler() commands.CreateCartCommandHandler {
	return commands.NewCreateCartCommandHandler(c.carts)
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.carts, c.menuUoWFactory())
}

func (c *CompositionRoot) CreateSetCartLineQuantityCommandHandler() commands.SetCartLineQuantityCommandHandler {
	return commands.NewSetCartLineQuantityCommandHandler(c.carts)
}

func (c *CompositionRoot) CreateUpdateCartHeaderCommandHandler() commands.UpdateCartHeaderCommandHandler {
	return commands.NewUpdateCartHeaderCommandHandler(c.carts)
}

func (c *CompositionRoot) CreateDiscardCartCommandHandler() commands.DiscardCartCommandHandler {
	return commands.NewDiscardCartCommandHandler(c.carts)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.carts, c.orderFactory(), c.effects)
}

func (c *CompositionRoot) CreateImportExtractedOrderCommandHandler() commands.ImportExtractedOrderCommandHandler {
	return commands.NewImportExtractedOrderCommandHandler(c.uowFactoryFunc(), c.orderFactory(), c.effects)
}

func (c *CompositionRoot) CreateScanReceiptCommandHandler() commands.ScanReceiptCommandHandler {
	importer := c.CreateImportExtractedOrderCommandHandler()
	return commands.NewScanReceiptCommandHandler(c.extractor, &importer, c.effects)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	return commands.NewAdvanceOrderStatusCommandHandler(c.orderUoWFactory(), c.effects)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.effects)
}

func (c *CompositionRoot) CreateAddMenuItemCommandHandler() commands.AddMenuItemCommandHandler {
	return commands.NewAddMenuItemCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateRefreshActiveOrdersCommandHandler() commands.RefreshActiveOrdersCommandHandler {
	return commands.NewRefreshActiveOrdersCommandHandler(c.orderUoWFactory(), c.cache, c.logger)
}

func (c *CompositionRoot) activeOrdersSource() *queries.ActiveOrdersSource {
	return queries.NewActiveOrdersSource(c.cache, c.uowFactory.Create().OrderRepository(), c.logger)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.activeOrdersSource(), c.clock)
}

func (c *CompositionRoot) CreateGetOrderBoardQueryHandler() queries.GetOrderBoardQueryHandler {
	return queries.NewGetOrderBoardQueryHandler(c.activeOrdersSource(), c.clock)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.carts)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

// NewHTTPServer wires every use case behind the echo routes.
func (c *CompositionRoot) NewHTTPServer() *httpadapter.Server {
	createCart := c.CreateCreateCartCommandHandler()
	addCartItem := c.CreateAddCartItemCommandHandler()
	setCartLine := c.CreateSetCartLineQuantityCommandHandler()
	updateCartHeader := c.CreateUpdateCartHeaderCommandHandler()
	discardCart := c.CreateDiscardCartCommandHandler()
	createOrder := c.CreateCreateOrderCommandHandler()
	importOrder := c.CreateImportExtractedOrderCommandHandler()
	scanReceipt := c.CreateScanReceiptCommandHandler()
	advanceOrder := c.CreateAdvanceOrderStatusCommandHandler()
	deleteOrder := c.CreateDeleteOrderCommandHandler()
	addMenuItem := c.CreateAddMenuItemCommandHandler()

	return httpadapter.NewServer(httpadapter.Handlers{
		CreateCart:       &createCart,
		AddCartItem:      &addCartItem,
		SetCartLine:      &setCartLine,
		UpdateCartHeader: &updateCartHeader,
		DiscardCart:      &discardCart,
		CreateOrder:      &createOrder,
		ImportOrder:      &importOrder,
		ScanReceipt:      &scanReceipt,
		AdvanceOrder:     &advanceOrder,
		DeleteOrder:      &deleteOrder,
		AddMenuItem:      &addMenuItem,

		GetCart:         c.CreateGetCartQueryHandler(),
		GetActiveOrders: c.CreateGetActiveOrdersQueryHandler(),
		GetOrderBoard:   c.CreateGetOrderBoardQueryHandler(),
		GetMenu:         c.CreateGetMenuQueryHandler(),
	}, c.clock, c.logger)
}

func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	refresh := c.CreateRefreshActiveOrdersCommandHandler()
	return jobs.NewJobManager(&refresh, c.configs.CacheRefreshSchedule, c.logger)
}

// NewOrderChangesConsumer returns nil when no broker is configured.
func (c *CompositionRoot) NewOrderChangesConsumer() (*rabbitmqin.OrderChangesConsumer, error) {
	if c.broker == nil {
		return nil, nil
	}

	deliveries, err := c.broker.Consume(c.topology().CacheQueue, "orderdesk-"+c.instance, 16)
	if err != nil {
		return nil, err
	}

	refresh := c.CreateRefreshActiveOrdersCommandHandler()
	return rabbitmqin.NewOrderChangesConsumer(deliveries, &refresh, c.logger), nil
}

func instanceName() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return kernel.NewUUID().String()[:8]
	}
	return host
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
