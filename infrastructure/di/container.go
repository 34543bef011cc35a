package di

import (
	"gorgonzola/application/commands/bus"
	querybus "gorgonzola/application/queries/bus"
	"gorgonzola/application/services"
	"gorgonzola/infrastructure/config"
	"gorgonzola/pkg/auth"
	"gorgonzola/pkg/observability"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config           *config.Config
	LogLevel         zap.AtomicLevel
	Logger           *zap.Logger
	Collector        *observability.Collector
	Tracer           *observability.Tracer
	Storage          *Storage
	QueryBus         *querybus.QueryBus
	CommandBus       *bus.CommandBus
	SyncService      *services.SyncService
	MigrationService *services.MigrationService
	AdminSecret      *auth.AdminSecret
	RateLimiter      *auth.IPRateLimiter
}

// Shutdown flushes the logger
func (c *Container) Shutdown() {
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
}
