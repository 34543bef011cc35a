package queries

import (
	"strings"

	pkgerrors "gorgonzola/pkg/errors"
)

// GetRecipeQuery looks up one recipe by ID
type GetRecipeQuery struct {
	RecipeID string
}

func (q GetRecipeQuery) Validate() error {
	if strings.TrimSpace(q.RecipeID) == "" {
		return pkgerrors.NewValidationError("recipe ID is required")
	}
	return nil
}

// ListRecipesQuery lists recipes, optionally narrowed to one skill
type ListRecipesQuery struct {
	Skill string
}

func (q ListRecipesQuery) Validate() error {
	return nil
}

// RecipesByIngredientQuery lists the recipes consuming an item
type RecipesByIngredientQuery struct {
	ItemID string
}

func (q RecipesByIngredientQuery) Validate() error {
	if strings.TrimSpace(q.ItemID) == "" {
		return pkgerrors.NewValidationError("ingredient item ID is required")
	}
	return nil
}
