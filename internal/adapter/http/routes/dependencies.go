package routes

import (
	"context"
	"fmt"
	"log"

	"flex_billing/internal/adapter/cache"
	"flex_billing/internal/adapter/persistence/memory"
	"flex_billing/internal/adapter/persistence/mongostore"
	"flex_billing/internal/adapter/persistence/repository"
	"flex_billing/internal/infrastructure/config"
	"flex_billing/internal/infrastructure/database"
	"flex_billing/internal/infrastructure/notify"
	"flex_billing/internal/infrastructure/payments"
	"flex_billing/internal/usecase"
	"flex_billing/internal/usecase/interfaces"

	"github.com/segmentio/analytics-go/v3"
)

type stores struct {
	products  interfaces.IProductRepository
	customers interfaces.ICustomerRepository
	orders    interfaces.IOrderRepository
	plans     interfaces.IFlexPlanRepository
	tx        interfaces.ITransactor
}

type dependencies struct {
	refunds   usecase.IRefundUseCase
	flexPlans usecase.IFlexPlanUseCase
	trials    usecase.ITrialUseCase
	scheduler usecase.ISchedulerUseCase

	notifier *usecase.Notifier
	closers  []func() error
}

// Close waits for in-flight notifications, then releases clients in reverse order.
func (d *dependencies) Close() {
	d.notifier.Wait()
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			log.Printf("[app][wiring] close failed err=%v", err)
		}
	}
}

func buildDependencies(ctx context.Context, cfg config.Config) (*dependencies, error) {
	deps := &dependencies{}

	st, err := buildStores(ctx, cfg, deps)
	if err != nil {
		return nil, err
	}

	var productCache interfaces.IProductCache
	if cfg.RedisAddr != "" {
		client, err := database.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Printf("[app][wiring] product cache disabled err=%v", err)
		} else {
			deps.closers = append(deps.closers, client.Close)
			productCache = cache.NewProductCache(client, cfg.ProductCacheTTL)
			log.Printf("[app][wiring] product cache enabled addr=%s ttl=%s", cfg.RedisAddr, cfg.ProductCacheTTL)
		}
	}

	deps.notifier = buildNotifier(cfg, deps)

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
		gateway = (*payments.MercadoPagoGateway)(nil)
	} else {
		gateway = mpGateway
	}

	policy := cfg.Policy
	resolver := usecase.NewProductResolver(st.products, productCache)
	discounts := usecase.NewDiscountEngine(resolver, policy.Discounts)
	carts := usecase.NewCartBuilder(st.customers, resolver, discounts, policy)
	orders := usecase.NewOrderUseCase(st.customers, st.tx, carts, gateway, deps.notifier, policy)
	refunds := usecase.NewRefundUseCase(st.orders, st.customers, gateway)
	flexPlans := usecase.NewFlexPlanUseCase(st.plans, st.customers, orders, refunds, deps.notifier, policy)
	trials := usecase.NewTrialUseCase(st.customers, orders, flexPlans, deps.notifier, policy)

	deps.refunds = refunds
	deps.flexPlans = flexPlans
	deps.trials = trials
	deps.scheduler = usecase.NewSchedulerUseCase(st.plans, st.customers, flexPlans, trials, policy)
	return deps, nil
}

func buildStores(ctx context.Context, cfg config.Config, deps *dependencies) (stores, error) {
	switch cfg.StoreDriver {
	case config.DriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWSRegion, cfg.DynamoDBEndpoint)
		if err != nil {
			return stores{}, fmt.Errorf("dynamodb: %w", err)
		}
		log.Printf("[app][wiring] store=dynamodb region=%s", cfg.AWSRegion)
		return stores{
			products:  repository.NewProductDynamoRepository(ddb),
			customers: repository.NewCustomerDynamoRepository(ddb),
			orders:    repository.NewOrderDynamoRepository(ddb),
			plans:     repository.NewFlexPlanDynamoRepository(ddb),
			tx:        repository.NewDynamoTransactor(ddb),
		}, nil

	case config.DriverMongo:
		client, db, err := mongostore.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return stores{}, fmt.Errorf("mongodb: %w", err)
		}
		deps.closers = append(deps.closers, func() error { return client.Disconnect(context.Background()) })
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			return stores{}, fmt.Errorf("mongodb indexes: %w", err)
		}
		log.Printf("[app][wiring] store=mongo database=%s", cfg.MongoDatabase)
		return stores{
			products:  mongostore.NewProductRepository(db),
			customers: mongostore.NewCustomerRepository(db),
			orders:    mongostore.NewOrderRepository(db),
			plans:     mongostore.NewFlexPlanRepository(db),
			tx:        mongostore.NewTransactor(client, db),
		}, nil

	default:
		s := memory.New()
		log.Printf("[app][wiring] store=memory; data is lost on restart")
		return stores{
			products:  s.Products(),
			customers: s.Customers(),
			orders:    s.Orders(),
			plans:     s.FlexPlans(),
			tx:        s.Transactor(),
		}, nil
	}
}

// buildNotifier wires each configured sink behind its own circuit breaker.
// Unconfigured sinks stay nil and are skipped by the notifier.
func buildNotifier(cfg config.Config, deps *dependencies) *usecase.Notifier {
	var events interfaces.IEventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher := notify.NewKafkaPublisher(cfg.KafkaEventsTopic, cfg.KafkaBrokers...)
		deps.closers = append(deps.closers, publisher.Close)
		events = notify.NewGuardedPublisher(publisher)
	}

	var marketing interfaces.IMarketingClient
	if cfg.SegmentWriteKey != "" {
		client, err := notify.NewSegmentClient(cfg.SegmentWriteKey, analytics.Config{})
		if err != nil {
			log.Printf("[app][wiring] segment disabled err=%v", err)
		} else {
			deps.closers = append(deps.closers, client.Close)
			marketing = notify.NewGuardedMarketing(client)
		}
	}

	var chat interfaces.IChatNotifier
	if cfg.SlackAPIToken != "" {
		chat = notify.NewGuardedChat(notify.NewSlackNotifier(cfg.SlackAPIToken, cfg.SlackAPIBaseURL))
	}

	return usecase.NewNotifier(events, marketing, chat, 0)
}
