package cmd

import (
	"log/slog"

	httpin "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/events"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/core/application/usecases"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
	"ordering/internal/jobs"
	"ordering/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	clock      kernel.Clock
	registry   *prometheus.Registry
	publisher  ports.OrderEventPublisher
	closers    []func() error
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	c := &CompositionRoot{
		config:   config,
		gormDB:   gormDB,
		logger:   logger,
		clock:    kernel.SystemClock{},
		registry: registry,
	}

	if config.KafkaHost != "" {
		kafkaPublisher := events.NewKafkaPublisher(events.ParseBrokers(config.KafkaHost), config.KafkaOrderChangedTopic)
		c.publisher = kafkaPublisher
		c.closers = append(c.closers, kafkaPublisher.Close)
	} else {
		logger.Info("KAFKA_HOST is not set, order events go to the log")
		c.publisher = events.NewLogPublisher(logger)
	}

	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, c.publisher, logger)
	return c
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateGetAccountOrdersQueryHandler() queries.GetAccountOrdersQueryHandler {
	return queries.NewGetAccountOrdersQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateGetOrderStatusCountsQueryHandler() queries.GetOrderStatusCountsQueryHandler {
	return queries.NewGetOrderStatusCountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOrderService() *usecases.OrderService {
	return usecases.NewOrderService(
		c.CreateCreateOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetAccountOrdersQueryHandler(),
	)
}

func (c *CompositionRoot) CreateRouter() *echo.Echo {
	return httpin.NewRouter(httpin.RouterConfig{
		Server: httpin.NewServer(c.CreateOrderService()),
		Clock:  c.clock,
		Logger: c.logger,
		CORS: httpin.CORSConfig{
			AllowedOrigins:  c.config.AllowedOrigins(),
			AllowAllOrigins: c.config.CORSAllowAllOrigins,
		},
		ServerMetrics: metrics.NewServerMetrics(c.registry),
		Gatherer:      c.registry,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetOrderStatusCountsQueryHandler(),
		metrics.NewOrderMetrics(c.registry),
		c.config.OrderMetricsSchedule,
		c.logger,
	)
}

// Close releases the outbound connections opened by the root.
func (c *CompositionRoot) Close() {
	for _, closer := range c.closers {
		if err := closer(); err != nil {
			c.logger.Error("Failed to close resource", "error", err)
		}
	}
}

// orderReader hands out a repository outside of any transaction; reads never need one.
func (c *CompositionRoot) orderReader() queries.OrderReader {
	return c.uowFactory.Create().OrderRepository()
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
