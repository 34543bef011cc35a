package queries

import (
	"strings"

	pkgerrors "gorgonzola/pkg/errors"
)

// GetItemQuery looks up one item by ID
type GetItemQuery struct {
	ItemID string
}

// Validate validates the GetItemQuery
func (q GetItemQuery) Validate() error {
	if strings.TrimSpace(q.ItemID) == "" {
		return pkgerrors.NewValidationError("item ID is required")
	}
	return nil
}

// SearchItemsQuery lists items whose name contains Search. An empty search lists every item.
type SearchItemsQuery struct {
	Search string
}

func (q SearchItemsQuery) Validate() error {
	return nil
}
