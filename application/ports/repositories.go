package ports

import (
	"context"

	"gorgonzola/domain/core/entities"
	"gorgonzola/domain/core/valueobjects"
	"gorgonzola/domain/dump"
)

// ItemRepository reads items. GetByID returns a NOT_FOUND AppError for unknown IDs.
type ItemRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Item, error)
	// Search returns items whose name contains search, case-insensitively.
	// An empty search returns every item.
	Search(ctx context.Context, search string) ([]*entities.Item, error)
}

// RecipeRepository reads recipes
type RecipeRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Recipe, error)
	// List returns every recipe, or the recipes of one skill when skill is set
	List(ctx context.Context, skill string) ([]*entities.Recipe, error)
}

// NPCRepository reads NPCs
type NPCRepository interface {
	GetByID(ctx context.Context, id string) (*entities.NPC, error)
	Search(ctx context.Context, search string) ([]*entities.NPC, error)
}

// QuestRepository reads quests
type QuestRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Quest, error)
	Search(ctx context.Context, search string) ([]*entities.Quest, error)
}

// PriceRepository stores player-submitted prices
type PriceRepository interface {
	Save(ctx context.Context, price *entities.Price) error
	// ListForItem returns the item's prices, newest first
	ListForItem(ctx context.Context, itemID string) ([]*entities.Price, error)
}

// CatalogWriter bulk-writes entities produced by the ingestion job
type CatalogWriter interface {
	PutItems(ctx context.Context, items []*entities.Item) error
	PutRecipes(ctx context.Context, recipes []*entities.Recipe) error
	PutNPCs(ctx context.Context, npcs []*entities.NPC) error
	PutQuests(ctx context.Context, quests []*entities.Quest) error
}

// TableMaintenance enumerates and removes records for migrations
type TableMaintenance interface {
	ScanKeys(ctx context.Context) ([]valueobjects.Key, error)
	DeleteKeys(ctx context.Context, keys []valueobjects.Key) error
}

// GameDataSource fetches a complete export
type GameDataSource interface {
	Fetch(ctx context.Context) (*dump.Dump, error)
}

// SyncEvent is published after a successful sync
type SyncEvent struct {
	RunID             string `json:"runId"`
	Items             int    `json:"items"`
	Recipes           int    `json:"recipes"`
	NPCs              int    `json:"npcs"`
	Quests            int    `json:"quests"`
	SkippedReferences int    `json:"skippedReferences"`
	CompletedAt       string `json:"completedAt"`
}

// EventPublisher announces completed syncs to downstream consumers
type EventPublisher interface {
	PublishSyncCompleted(ctx context.Context, event SyncEvent) error
}

// Cache is the query result cache
type Cache interface {
	Get(ctx context.Context, key string) (interface{}, bool)
	Set(ctx context.Context, key string, value interface{}, ttlSeconds int) error
	Clear(ctx context.Context) error
}
