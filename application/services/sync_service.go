package services

import (
	"context"
	"fmt"
	"time"

	"gorgonzola/application/ports"
	"gorgonzola/pkg/observability"
	"gorgonzola/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SyncMetrics receives the outcome of every run
type SyncMetrics interface {
	RecordSync(ctx context.Context, counts observability.SyncCounts) error
}

// SyncResult summarizes one completed run
type SyncResult struct {
	RunID             string        `json:"runId"`
	Items             int           `json:"items"`
	Recipes           int           `json:"recipes"`
	NPCs              int           `json:"npcs"`
	Quests            int           `json:"quests"`
	SkippedReferences int           `json:"skippedReferences"`
	Duration          time.Duration `json:"duration"`
}

// SyncService runs the fetch, transform and write pipeline
type SyncService struct {
	source    ports.GameDataSource
	writer    ports.CatalogWriter
	publisher ports.EventPublisher
	metrics   SyncMetrics
	clock     utils.Clock
	logger    *zap.Logger
}

// NewSyncService creates a sync service. publisher and metrics may be nil.
func NewSyncService(
	source ports.GameDataSource,
	writer ports.CatalogWriter,
	publisher ports.EventPublisher,
	metrics SyncMetrics,
	clock utils.Clock,
	logger *zap.Logger,
) *SyncService {
	if clock == nil {
		clock = utils.SystemClock
	}
	return &SyncService{
		source:    source,
		writer:    writer,
		publisher: publisher,
		metrics:   metrics,
		clock:     clock,
		logger:    logger,
	}
}

// Run performs one sync. Nothing is written when the fetch fails; a write
// failure aborts the remaining entity types.
func (s *SyncService) Run(ctx context.Context) (*SyncResult, error) {
	runID := uuid.New().String()
	start := s.clock()
	logger := s.logger.With(zap.String("runID", runID))
	logger.Info("Starting game data sync")

	result, err := s.run(ctx, logger)
	if result == nil {
		result = &SyncResult{}
	}
	result.RunID = runID
	result.Duration = s.clock().Sub(start)

	s.recordMetrics(ctx, logger, result, err != nil)
	if err != nil {
		logger.Error("Game data sync failed",
			zap.Duration("duration", result.Duration),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Info("Game data sync completed",
		zap.Int("items", result.Items),
		zap.Int("recipes", result.Recipes),
		zap.Int("npcs", result.NPCs),
		zap.Int("quests", result.Quests),
		zap.Int("skippedReferences", result.SkippedReferences),
		zap.Duration("duration", result.Duration),
	)

	if s.publisher != nil {
		event := ports.SyncEvent{
			RunID:             runID,
			Items:             result.Items,
			Recipes:           result.Recipes,
			NPCs:              result.NPCs,
			Quests:            result.Quests,
			SkippedReferences: result.SkippedReferences,
			CompletedAt:       s.clock().UTC().Format(time.RFC3339Nano),
		}
		// best effort: the catalog is already written
		if err := s.publisher.PublishSyncCompleted(ctx, event); err != nil {
			logger.Warn("Failed to publish sync event", zap.Error(err))
		}
	}
	return result, nil
}

func (s *SyncService) run(ctx context.Context, logger *zap.Logger) (*SyncResult, error) {
	data, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch game data: %w", err)
	}

	catalog := BuildCatalog(data)
	logger.Info("Transformed game data",
		zap.Int("items", len(catalog.Items)),
		zap.Int("recipes", len(catalog.Recipes)),
		zap.Int("npcs", len(catalog.NPCs)),
		zap.Int("quests", len(catalog.Quests)),
		zap.Int("skippedReferences", catalog.SkippedReferences),
	)

	result := &SyncResult{SkippedReferences: catalog.SkippedReferences}

	if err := s.writer.PutItems(ctx, catalog.Items); err != nil {
		return result, fmt.Errorf("write items: %w", err)
	}
	result.Items = len(catalog.Items)
	logger.Info("Items written", zap.Int("count", result.Items))

	if err := s.writer.PutRecipes(ctx, catalog.Recipes); err != nil {
		return result, fmt.Errorf("write recipes: %w", err)
	}
	result.Recipes = len(catalog.Recipes)
	logger.Info("Recipes written", zap.Int("count", result.Recipes))

	if err := s.writer.PutNPCs(ctx, catalog.NPCs); err != nil {
		return result, fmt.Errorf("write npcs: %w", err)
	}
	result.NPCs = len(catalog.NPCs)
	logger.Info("NPCs written", zap.Int("count", result.NPCs))

	if err := s.writer.PutQuests(ctx, catalog.Quests); err != nil {
		return result, fmt.Errorf("write quests: %w", err)
	}
	result.Quests = len(catalog.Quests)
	logger.Info("Quests written", zap.Int("count", result.Quests))

	return result, nil
}

func (s *SyncService) recordMetrics(ctx context.Context, logger *zap.Logger, result *SyncResult, failed bool) {
	if s.metrics == nil {
		return
	}
	err := s.metrics.RecordSync(ctx, observability.SyncCounts{
		Items:             result.Items,
		Recipes:           result.Recipes,
		NPCs:              result.NPCs,
		Quests:            result.Quests,
		SkippedReferences: result.SkippedReferences,
		Duration:          result.Duration,
		Failed:            failed,
	})
	if err != nil {
		logger.Warn("Failed to record sync metrics", zap.Error(err))
	}
}
