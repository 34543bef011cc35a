package handlers

import (
	"context"

	"gorgonzola/application/ports"
	"gorgonzola/application/queries"
	"gorgonzola/domain/core/entities"
	pkgerrors "gorgonzola/pkg/errors"
)

// RecipeHandler answers recipe queries
type RecipeHandler struct {
	recipes ports.RecipeRepository
	items   ports.ItemRepository
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(recipes ports.RecipeRepository, items ports.ItemRepository) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, items: items}
}

func (h *RecipeHandler) GetRecipe(ctx context.Context, q queries.GetRecipeQuery) (*entities.Recipe, error) {
	return h.recipes.GetByID(ctx, q.RecipeID)
}

func (h *RecipeHandler) ListRecipes(ctx context.Context, q queries.ListRecipesQuery) ([]*entities.Recipe, error) {
	return h.recipes.List(ctx, q.Skill)
}

// RecipesByIngredient reads the ingredient's usedInRecipes index. An
// unknown item has no recipes.
func (h *RecipeHandler) RecipesByIngredient(ctx context.Context, q queries.RecipesByIngredientQuery) ([]entities.RecipeRef, error) {
	item, err := h.items.GetByID(ctx, q.ItemID)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return []entities.RecipeRef{}, nil
		}
		return nil, err
	}
	if item.UsedInRecipes == nil {
		return []entities.RecipeRef{}, nil
	}
	return item.UsedInRecipes, nil
}
