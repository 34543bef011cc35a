package handlers

import (
	"context"

	"gorgonzola/application/commands"
	"gorgonzola/application/ports"

	"go.uber.org/zap"
)

// PriceSubmissionObserver counts accepted submissions
type PriceSubmissionObserver interface {
	RecordPriceSubmitted()
}

// SubmitPriceHandler handles the SubmitPriceCommand
type SubmitPriceHandler struct {
	prices   ports.PriceRepository
	observer PriceSubmissionObserver
	logger   *zap.Logger
}

// NewSubmitPriceHandler creates a new handler instance. observer may be nil.
func NewSubmitPriceHandler(prices ports.PriceRepository, observer PriceSubmissionObserver, logger *zap.Logger) *SubmitPriceHandler {
	return &SubmitPriceHandler{
		prices:   prices,
		observer: observer,
		logger:   logger,
	}
}

// Handle stores the price
func (h *SubmitPriceHandler) Handle(ctx context.Context, cmd commands.SubmitPriceCommand) error {
	price, err := cmd.ToPrice()
	if err != nil {
		return err
	}
	if err := h.prices.Save(ctx, price); err != nil {
		return err
	}

	if h.observer != nil {
		h.observer.RecordPriceSubmitted()
	}
	h.logger.Debug("Price submitted",
		zap.String("itemID", price.ItemID),
		zap.Float64("price", price.Price),
	)
	return nil
}
