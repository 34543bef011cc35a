package dynamodb

import (
	"context"
	"fmt"

	"gorgonzola/application/ports"
	"gorgonzola/domain/core/entities"
	"gorgonzola/domain/core/valueobjects"
)

// CatalogWriter bulk-writes ingestion output and serves migrations
type CatalogWriter struct {
	table *Table
}

// NewCatalogWriter creates a new CatalogWriter
func NewCatalogWriter(table *Table) *CatalogWriter {
	return &CatalogWriter{table: table}
}

var (
	_ ports.CatalogWriter    = (*CatalogWriter)(nil)
	_ ports.TableMaintenance = (*CatalogWriter)(nil)
)

func (w *CatalogWriter) PutItems(ctx context.Context, items []*entities.Item) error {
	return putAll(ctx, w.table, valueobjects.EntityTypeItem, items)
}

func (w *CatalogWriter) PutRecipes(ctx context.Context, recipes []*entities.Recipe) error {
	return putAll(ctx, w.table, valueobjects.EntityTypeRecipe, recipes)
}

func (w *CatalogWriter) PutNPCs(ctx context.Context, npcs []*entities.NPC) error {
	return putAll(ctx, w.table, valueobjects.EntityTypeNPC, npcs)
}

func (w *CatalogWriter) PutQuests(ctx context.Context, quests []*entities.Quest) error {
	return putAll(ctx, w.table, valueobjects.EntityTypeQuest, quests)
}

// ScanKeys lists every key in the table
func (w *CatalogWriter) ScanKeys(ctx context.Context) ([]valueobjects.Key, error) {
	return w.table.ScanKeys(ctx)
}

// DeleteKeys batch-deletes the given keys
func (w *CatalogWriter) DeleteKeys(ctx context.Context, keys []valueobjects.Key) error {
	return w.table.BatchDelete(ctx, keys)
}

func putAll[E entity](ctx context.Context, t *Table, entityType valueobjects.EntityType, items []E) error {
	records, err := entityRecords(entityType, items)
	if err != nil {
		return err
	}
	if err := t.BatchPut(ctx, records); err != nil {
		return fmt.Errorf("write %s records: %w", entityType, err)
	}
	return nil
}
