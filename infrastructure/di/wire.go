//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"gorgonzola/infrastructure/config"

	"github.com/google/wire"
)

// InfrastructureSet provides clients, storage and observability
var InfrastructureSet = wire.NewSet(
	ProvideLogLevel,
	ProvideLogger,
	ProvideTracer,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideEventBridgeClient,
	ProvideCloudWatchClient,
	ProvideCollector,
	ProvideMetrics,
	ProvideTable,
	ProvideStorage,
	ProvideInMemoryCache,
	ProvideHTTPClient,
	ProvideGameDataSource,
	ProvideEventPublisher,
)

// ApplicationSet provides buses, services and request guards
var ApplicationSet = wire.NewSet(
	ProvideQueryBus,
	ProvideCommandBus,
	ProvideSyncService,
	ProvideMigrationService,
	ProvideAdminSecret,
	ProvideRateLimiter,
)

// SuperSet is the complete provider set
var SuperSet = wire.NewSet(
	InfrastructureSet,
	ApplicationSet,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil
}
