package dynamodb

import (
	"context"

	"gorgonzola/application/ports"
	"gorgonzola/domain/core/entities"
	"gorgonzola/domain/core/valueobjects"
)

// ItemRepository reads item metadata records
type ItemRepository struct {
	table *Table
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(table *Table) ports.ItemRepository {
	return &ItemRepository{table: table}
}

// GetByID loads ITEM#<id>/METADATA
func (r *ItemRepository) GetByID(ctx context.Context, id string) (*entities.Item, error) {
	item, err := getEntity[entities.Item](ctx, r.table, valueobjects.ItemKey(id), "Item")
	if err != nil {
		return nil, err
	}
	item.Normalize()
	return item, nil
}

// Search filters the entity index on the upper-cased name
func (r *ItemRepository) Search(ctx context.Context, search string) ([]*entities.Item, error) {
	items, err := queryEntities[entities.Item](ctx, r.table, IndexQuery{
		EntityType: valueobjects.EntityTypeItem,
		Contains:   valueobjects.SearchTerm(search),
	})
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		it.Normalize()
	}
	return items, nil
}
