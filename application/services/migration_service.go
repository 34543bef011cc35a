package services

import (
	"context"
	"fmt"
	"sort"

	"gorgonzola/application/ports"
	"gorgonzola/domain/core/valueobjects"
	pkgerrors "gorgonzola/pkg/errors"

	"go.uber.org/zap"
)

// Migration names
const (
	MigrationDeleteAll     = "delete-all"
	MigrationPurgeGameData = "purge-game-data"
)

// MigrationMetrics receives the number of records a migration removed
type MigrationMetrics interface {
	RecordMigration(ctx context.Context, name string, deleted int) error
}

// MigrationService runs named one-off table migrations
type MigrationService struct {
	table   ports.TableMaintenance
	metrics MigrationMetrics
	logger  *zap.Logger
}

// NewMigrationService creates a migration service. metrics may be nil.
func NewMigrationService(table ports.TableMaintenance, metrics MigrationMetrics, logger *zap.Logger) *MigrationService {
	return &MigrationService{table: table, metrics: metrics, logger: logger}
}

// keepFilter decides which scanned keys survive a migration
type keepFilter func(valueobjects.Key) bool

// migrations maps names to the records they keep
var migrations = map[string]keepFilter{
	MigrationDeleteAll:     func(valueobjects.Key) bool { return false },
	MigrationPurgeGameData: valueobjects.Key.IsPrice,
}

// Names lists the known migrations
func Names() []string {
	names := make([]string, 0, len(migrations))
	for n := range migrations {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Run executes the named migration and returns a human-readable summary
func (s *MigrationService) Run(ctx context.Context, name string) (string, error) {
	keep, ok := migrations[name]
	if !ok {
		return "", pkgerrors.NewValidationError(fmt.Sprintf("unknown migration: %s", name)).
			WithDetails(map[string]interface{}{"known": Names()})
	}

	logger := s.logger.With(zap.String("migration", name))
	logger.Info("Starting migration")

	keys, err := s.table.ScanKeys(ctx)
	if err != nil {
		return "", pkgerrors.NewDatabaseError("scan keys", err)
	}

	doomed := make([]valueobjects.Key, 0, len(keys))
	for _, k := range keys {
		if !keep(k) {
			doomed = append(doomed, k)
		}
	}

	if err := s.table.DeleteKeys(ctx, doomed); err != nil {
		return "", pkgerrors.NewDatabaseError("delete keys", err)
	}

	if s.metrics != nil {
		if err := s.metrics.RecordMigration(ctx, name, len(doomed)); err != nil {
			logger.Warn("Failed to record migration metrics", zap.Error(err))
		}
	}

	logger.Info("Migration completed",
		zap.Int("scanned", len(keys)),
		zap.Int("deleted", len(doomed)),
	)
	return fmt.Sprintf("Deleted %d records", len(doomed)), nil
}
