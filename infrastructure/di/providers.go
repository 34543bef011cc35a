package di

import (
	"context"
	"fmt"
	"net/http"

	"gorgonzola/application/commands"
	"gorgonzola/application/commands/bus"
	commandhandlers "gorgonzola/application/commands/handlers"
	"gorgonzola/application/ports"
	querybus "gorgonzola/application/queries/bus"
	queryhandlers "gorgonzola/application/queries/handlers"
	"gorgonzola/application/services"
	"gorgonzola/infrastructure/cdn"
	"gorgonzola/infrastructure/config"
	"gorgonzola/infrastructure/messaging/eventbridge"
	"gorgonzola/infrastructure/persistence/dynamodb"
	"gorgonzola/infrastructure/persistence/memory"
	"gorgonzola/pkg/auth"
	"gorgonzola/pkg/observability"
	"gorgonzola/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"
)

const serviceName = "gorgonzola"

// Storage bundles the storage ports of the selected backend
type Storage struct {
	Items       ports.ItemRepository
	Recipes     ports.RecipeRepository
	NPCs        ports.NPCRepository
	Quests      ports.QuestRepository
	Prices      ports.PriceRepository
	Catalog     ports.CatalogWriter
	Maintenance ports.TableMaintenance
}

// ProvideLogLevel parses LOG_LEVEL into a level the config watcher can change at runtime
func ProvideLogLevel(cfg *config.Config) (zap.AtomicLevel, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	return level, nil
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config, level zap.AtomicLevel) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = level

	logger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("service", serviceName), zap.String("environment", cfg.Environment)), nil
}

// ProvideTracer creates the X-Ray tracer
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	return observability.NewTracer(serviceName, cfg.EnableTracing)
}

// ProvideAWSConfig creates AWS configuration, instrumented when tracing is on
func ProvideAWSConfig(ctx context.Context, cfg *config.Config, tracer *observability.Tracer) (aws.Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return aws.Config{}, err
	}
	tracer.InstrumentAWS(&awsCfg)
	return awsCfg, nil
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideCollector creates the Prometheus collector
func ProvideCollector() *observability.Collector {
	return observability.NewCollector(serviceName)
}

// ProvideMetrics creates the CloudWatch job metrics. Publishing is off unless ENABLE_METRICS is set.
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config) *observability.Metrics {
	namespace := fmt.Sprintf("GorgonZola/%s", cfg.Environment)
	if !cfg.EnableMetrics {
		return observability.NewMetrics(namespace, nil)
	}
	return observability.NewMetrics(namespace, client)
}

// ProvideTable creates the DynamoDB table wrapper
func ProvideTable(client *awsdynamodb.Client, cfg *config.Config, collector *observability.Collector, logger *zap.Logger) *dynamodb.Table {
	return dynamodb.NewTable(client, cfg.DynamoDBTable, cfg.EntityIndexName, logger,
		dynamodb.WithMaxRetries(cfg.WriteMaxRetries),
		dynamodb.WithObserver(collector),
	)
}

// ProvideStorage selects the storage backend named by STORAGE_BACKEND
func ProvideStorage(cfg *config.Config, table *dynamodb.Table, logger *zap.Logger) (*Storage, error) {
	switch cfg.StorageBackend {
	case config.StorageDynamoDB:
		writer := dynamodb.NewCatalogWriter(table)
		return &Storage{
			Items:       dynamodb.NewItemRepository(table),
			Recipes:     dynamodb.NewRecipeRepository(table),
			NPCs:        dynamodb.NewNPCRepository(table),
			Quests:      dynamodb.NewQuestRepository(table),
			Prices:      dynamodb.NewPriceRepository(table, logger),
			Catalog:     writer,
			Maintenance: writer,
		}, nil
	case config.StorageMemory:
		logger.Warn("Using in-memory storage; data is lost on exit")
		return NewMemoryStorage(memory.NewStore()), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// NewMemoryStorage exposes a memory store through the storage ports
func NewMemoryStorage(store *memory.Store) *Storage {
	return &Storage{
		Items:       store.Items(),
		Recipes:     store.Recipes(),
		NPCs:        store.NPCs(),
		Quests:      store.Quests(),
		Prices:      store,
		Catalog:     store,
		Maintenance: store,
	}
}

// ProvideInMemoryCache creates the query cache
func ProvideInMemoryCache(cfg *config.Config, logger *zap.Logger) ports.Cache {
	logger.Debug("Query cache configured", zap.Duration("ttl", cfg.CacheTTL()))
	return NewInMemoryCache()
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(storage *Storage, cache ports.Cache, cfg *config.Config, collector *observability.Collector) (*querybus.QueryBus, error) {
	queryBus := querybus.NewQueryBus(
		querybus.NewCachingMiddleware(cache, cfg.CacheTTLSeconds, collector),
	)
	err := queryhandlers.Register(queryBus, queryhandlers.Repositories{
		Items:   storage.Items,
		Recipes: storage.Recipes,
		NPCs:    storage.NPCs,
		Quests:  storage.Quests,
		Prices:  storage.Prices,
	})
	if err != nil {
		return nil, err
	}
	return queryBus, nil
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(storage *Storage, collector *observability.Collector, logger *zap.Logger) (*bus.CommandBus, error) {
	commandBus := bus.NewCommandBus()
	pipeline := bus.NewPipeline(bus.LoggingMiddleware(logger))

	submitPrice := commandhandlers.NewSubmitPriceHandler(storage.Prices, collector, logger)
	if err := commandBus.Register(commands.SubmitPriceCommand{}, pipeline.Execute(bus.HandlerFor(submitPrice.Handle))); err != nil {
		return nil, err
	}
	return commandBus, nil
}

// ProvideAdminSecret holds the shared secret guarding price submission
func ProvideAdminSecret(cfg *config.Config) *auth.AdminSecret {
	return auth.NewAdminSecret(cfg.AdminSecret)
}

// ProvideRateLimiter limits price submissions per client IP
func ProvideRateLimiter(cfg *config.Config) *auth.IPRateLimiter {
	return auth.NewIPRateLimiter(cfg.PriceRateLimit)
}

// ProvideHTTPClient creates the outbound client for the CDN
func ProvideHTTPClient(tracer *observability.Tracer) *http.Client {
	return tracer.InstrumentHTTPClient(&http.Client{})
}

// ProvideGameDataSource creates the CDN export fetcher
func ProvideGameDataSource(cfg *config.Config, client *http.Client, logger *zap.Logger) ports.GameDataSource {
	return cdn.NewClient(cfg.GameDataURL, cfg.FetchTimeout, client, logger)
}

// ProvideEventPublisher creates the sync event publisher, or nil when no bus is configured
func ProvideEventPublisher(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventPublisher {
	if cfg.EventBusName == "" {
		return nil
	}
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideSyncService creates the ingestion job
func ProvideSyncService(
	source ports.GameDataSource,
	storage *Storage,
	publisher ports.EventPublisher,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *services.SyncService {
	return services.NewSyncService(source, storage.Catalog, publisher, metrics, utils.SystemClock, logger)
}

// ProvideMigrationService creates the migration runner
func ProvideMigrationService(storage *Storage, metrics *observability.Metrics, logger *zap.Logger) *services.MigrationService {
	return services.NewMigrationService(storage.Maintenance, metrics, logger)
}
