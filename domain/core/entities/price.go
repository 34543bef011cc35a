package entities

import (
	"strings"
	"time"
	"unicode/utf8"

	"gorgonzola/domain/core/valueobjects"
	pkgerrors "gorgonzola/pkg/errors"
)

// MaxPriceNotesLength bounds the free-text notes on a price submission, in characters
const MaxPriceNotesLength = 500

// Price is a player-reported market price for an item
type Price struct {
	ID        string  `json:"id" dynamodbav:"id"`
	ItemID    string  `json:"itemId" dynamodbav:"itemId"`
	Price     float64 `json:"price" dynamodbav:"price"`
	Timestamp string  `json:"timestamp" dynamodbav:"timestamp"`
	Notes     string  `json:"notes,omitempty" dynamodbav:"notes,omitempty"`
}

// NewPrice validates and builds a price recorded at the given instant
func NewPrice(id, itemID string, price float64, notes string, at time.Time) (*Price, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return nil, pkgerrors.NewValidationError("itemId is required")
	}
	if price < 0 {
		return nil, pkgerrors.NewValidationError("price cannot be negative")
	}
	if utf8.RuneCountInString(notes) > MaxPriceNotesLength {
		return nil, pkgerrors.NewValidationError("notes are too long")
	}
	return &Price{
		ID:        id,
		ItemID:    itemID,
		Price:     price,
		Timestamp: FormatPriceTimestamp(at),
		Notes:     notes,
	}, nil
}

// FormatPriceTimestamp renders the sort-key timestamp. Fixed-width
// nanoseconds keep lexical order equal to chronological order.
func FormatPriceTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000000Z07:00")
}

func (p *Price) Key() valueobjects.Key {
	return valueobjects.PriceKey(p.ItemID, p.Timestamp)
}
