package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"flex_billing/internal/usecase"
)

const (
	DriverDynamoDB = "dynamodb"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

// Config is everything main needs to wire the service. It is loaded once
// and passed down explicitly.
//
// Table names are read by each DynamoDB repository (PRODUCTS_TABLE,
// CUSTOMERS_TABLE, ORDERS_TABLE, FLEX_PLANS_TABLE, COUNTERS_TABLE).
type Config struct {
	Port        string
	StoreDriver string

	AWSRegion        string
	DynamoDBEndpoint string

	MongoURI      string
	MongoDatabase string

	RedisAddr       string
	RedisPassword   string
	ProductCacheTTL time.Duration

	KafkaBrokers     []string
	KafkaEventsTopic string

	SegmentWriteKey string

	SlackAPIToken   string
	SlackAPIBaseURL string

	MercadoPagoAccessToken string

	// SchedulerInterval runs both dispatch jobs in-process when set. Zero
	// leaves them to the /v1/jobs routes.
	SchedulerInterval time.Duration

	Policy usecase.Config
}

func Load() (Config, error) {
	cfg := Config{
		Port:                   getenvDefault("PORT", "8080"),
		StoreDriver:            strings.ToLower(getenvDefault("STORE_DRIVER", DriverDynamoDB)),
		AWSRegion:              getenvDefault("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint:       os.Getenv("DYNAMODB_ENDPOINT"),
		MongoURI:               getenvDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:          getenvDefault("MONGODB_DATABASE", "flex_billing"),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		RedisPassword:          os.Getenv("REDIS_PASSWORD"),
		KafkaBrokers:           splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaEventsTopic:       getenvDefault("KAFKA_EVENTS_TOPIC", "flex-billing-events"),
		SegmentWriteKey:        os.Getenv("SEGMENT_WRITE_KEY"),
		SlackAPIToken:          os.Getenv("SLACK_API_TOKEN"),
		SlackAPIBaseURL:        os.Getenv("SLACK_API_BASE_URL"),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		Policy:                 usecase.DefaultConfig(),
	}

	switch cfg.StoreDriver {
	case DriverDynamoDB, DriverMongo, DriverMemory:
	default:
		return Config{}, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}

	var err error
	if cfg.ProductCacheTTL, err = durationEnv("PRODUCT_CACHE_TTL", 10*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.SchedulerInterval, err = durationEnv("SCHEDULER_INTERVAL", 0); err != nil {
		return Config{}, err
	}

	p := &cfg.Policy
	if p.MinimumOrderTotal, err = int64Env("MINIMUM_ORDER_TOTAL", p.MinimumOrderTotal); err != nil {
		return Config{}, err
	}
	if p.DefaultShippingPrice, err = int64Env("DEFAULT_SHIPPING_PRICE", p.DefaultShippingPrice); err != nil {
		return Config{}, err
	}
	if p.FlexFailureThreshold, err = intEnv("FLEX_FAILURE_THRESHOLD", p.FlexFailureThreshold); err != nil {
		return Config{}, err
	}
	if p.FlexRetryBackoff, err = durationEnv("FLEX_RETRY_BACKOFF", p.FlexRetryBackoff); err != nil {
		return Config{}, err
	}
	if p.SchedulerBatchSize, err = intEnv("SCHEDULER_BATCH_SIZE", p.SchedulerBatchSize); err != nil {
		return Config{}, err
	}
	if v := splitList(os.Getenv("AUTO_DISCOUNTS")); len(v) > 0 {
		p.Discounts.AutoCodes = v
	}
	if v := splitList(os.Getenv("NON_DISCOUNTABLE_SKUS")); len(v) > 0 {
		p.Discounts.NonDiscountableSKUs = v
	}
	p.OrdersChannel = getenvDefault("SLACK_CHANNEL_ORDERS", p.OrdersChannel)

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s=%q", key, v)
	}
	return n, nil
}

func int64Env(key string, def int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s=%q", key, v)
	}
	return n, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid %s=%q", key, v)
	}
	return d, nil
}
