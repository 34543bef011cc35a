package handlers

import (
	"context"

	"gorgonzola/application/ports"
	"gorgonzola/application/queries"
	"gorgonzola/domain/core/entities"
)

// PriceHandler answers price history queries
type PriceHandler struct {
	prices ports.PriceRepository
}

func NewPriceHandler(prices ports.PriceRepository) *PriceHandler {
	return &PriceHandler{prices: prices}
}

// GetPrices returns the item's prices, newest first
func (h *PriceHandler) GetPrices(ctx context.Context, q queries.GetPricesQuery) ([]*entities.Price, error) {
	return h.prices.ListForItem(ctx, q.ItemID)
}
