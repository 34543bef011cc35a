package handlers

import (
	"net/http"

	"gorgonzola/application/queries"
	querybus "gorgonzola/application/queries/bus"
	"gorgonzola/domain/core/entities"
	pkgerrors "gorgonzola/pkg/errors"

	"go.uber.org/zap"
)

// RecipeHandler handles recipe lookups
type RecipeHandler struct {
	queryBus *querybus.QueryBus
	errors   *pkgerrors.ErrorHandler
	logger   *zap.Logger
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(queryBus *querybus.QueryBus, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{queryBus: queryBus, errors: errorHandler, logger: logger}
}

// ListRecipes handles GET /recipes. Parameters are checked in order: id,
// ingredientItemId, skill.
func (h *RecipeHandler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	params := r.URL.Query()

	if id := params.Get("id"); id != "" {
		recipe, err := querybus.Ask[*entities.Recipe](ctx, h.queryBus, queries.GetRecipeQuery{RecipeID: id})
		if err != nil {
			h.errors.Handle(w, r, err)
			return
		}
		respondJSON(w, h.logger, http.StatusOK, recipe)
		return
	}

	if itemID := params.Get("ingredientItemId"); itemID != "" {
		refs, err := querybus.Ask[[]entities.RecipeRef](ctx, h.queryBus, queries.RecipesByIngredientQuery{ItemID: itemID})
		if err != nil {
			h.errors.Handle(w, r, err)
			return
		}
		respondJSON(w, h.logger, http.StatusOK, list(refs))
		return
	}

	recipes, err := querybus.Ask[[]*entities.Recipe](ctx, h.queryBus, queries.ListRecipesQuery{Skill: params.Get("skill")})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, list(recipes))
}
