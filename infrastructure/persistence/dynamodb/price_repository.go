package dynamodb

import (
	"context"

	"gorgonzola/application/ports"
	"gorgonzola/domain/core/entities"
	"gorgonzola/domain/core/valueobjects"
	pkgerrors "gorgonzola/pkg/errors"

	"go.uber.org/zap"
)

// PriceRepository stores prices inside the item partition
type PriceRepository struct {
	table  *Table
	logger *zap.Logger
}

// NewPriceRepository creates a new PriceRepository
func NewPriceRepository(table *Table, logger *zap.Logger) ports.PriceRepository {
	return &PriceRepository{table: table, logger: logger}
}

// Save writes ITEM#<itemId>/PRICE#<timestamp>. Prices carry no entity index attributes.
func (r *PriceRepository) Save(ctx context.Context, price *entities.Price) error {
	record, err := NewRecord(price.Key(), "", "", price)
	if err != nil {
		return pkgerrors.NewInternalError("failed to encode price").WithCause(err)
	}
	if err := r.table.Put(ctx, record); err != nil {
		r.logger.Error("Failed to save price",
			zap.Error(err),
			zap.String("itemID", price.ItemID),
			zap.String("priceID", price.ID),
		)
		return pkgerrors.NewDatabaseError("save price", err)
	}

	r.logger.Info("Price saved",
		zap.String("itemID", price.ItemID),
		zap.String("priceID", price.ID),
		zap.String("timestamp", price.Timestamp),
	)
	return nil
}

// ListForItem queries the item partition for PRICE# sort keys, newest first
func (r *PriceRepository) ListForItem(ctx context.Context, itemID string) ([]*entities.Price, error) {
	records, err := r.table.QueryPartition(ctx, valueobjects.ItemPartition(itemID), valueobjects.PriceSKPrefix, true)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("list prices", err)
	}
	return unmarshalAll[entities.Price](records)
}
