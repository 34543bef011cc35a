package commands

import (
	"time"

	"gorgonzola/domain/core/entities"
	pkgerrors "gorgonzola/pkg/errors"
	"gorgonzola/pkg/utils"
)

// SubmitPriceCommand records one player-reported price. PriceID and
// SubmittedAt are assigned by the caller so the stored record can be echoed
// back without another read.
type SubmitPriceCommand struct {
	PriceID     string    `json:"id" validate:"required"`
	ItemID      string    `json:"itemId" validate:"required"`
	Price       *float64  `json:"price" validate:"required,gte=0"`
	Notes       string    `json:"notes" validate:"max=500"`
	SubmittedAt time.Time `json:"-"`
}

// Validate validates the SubmitPriceCommand
func (c SubmitPriceCommand) Validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return nil
}

// ToPrice builds the price entity the command stores
func (c SubmitPriceCommand) ToPrice() (*entities.Price, error) {
	if c.Price == nil {
		return nil, pkgerrors.NewValidationError("price is required")
	}
	return entities.NewPrice(c.PriceID, c.ItemID, *c.Price, c.Notes, c.SubmittedAt)
}
