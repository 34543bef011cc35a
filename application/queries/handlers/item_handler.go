package handlers

import (
	"context"

	"gorgonzola/application/ports"
	"gorgonzola/application/queries"
	"gorgonzola/domain/core/entities"
)

// ItemHandler answers item queries
type ItemHandler struct {
	items ports.ItemRepository
}

// NewItemHandler creates a new item handler
func NewItemHandler(items ports.ItemRepository) *ItemHandler {
	return &ItemHandler{items: items}
}

// GetItem returns the item or a NOT_FOUND error
func (h *ItemHandler) GetItem(ctx context.Context, q queries.GetItemQuery) (*entities.Item, error) {
	return h.items.GetByID(ctx, q.ItemID)
}

// SearchItems returns every item whose name contains the search term
func (h *ItemHandler) SearchItems(ctx context.Context, q queries.SearchItemsQuery) ([]*entities.Item, error) {
	return h.items.Search(ctx, q.Search)
}
