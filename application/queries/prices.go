package queries

import (
	"strings"

	pkgerrors "gorgonzola/pkg/errors"
)

// GetPricesQuery lists an item's submitted prices, newest first. Never cached.
type GetPricesQuery struct {
	ItemID string
}

func (q GetPricesQuery) Validate() error {
	if strings.TrimSpace(q.ItemID) == "" {
		return pkgerrors.NewValidationError("itemId required")
	}
	return nil
}

// NoCache opts the query out of the caching middleware
func (q GetPricesQuery) NoCache() bool {
	return true
}
