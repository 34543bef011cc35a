package dynamodb

import (
	"context"

	"gorgonzola/application/ports"
	"gorgonzola/domain/core/entities"
	"gorgonzola/domain/core/valueobjects"
)

// RecipeRepository reads recipe records
type RecipeRepository struct {
	table *Table
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(table *Table) ports.RecipeRepository {
	return &RecipeRepository{table: table}
}

func (r *RecipeRepository) GetByID(ctx context.Context, id string) (*entities.Recipe, error) {
	recipe, err := getEntity[entities.Recipe](ctx, r.table, valueobjects.RecipeKey(id), "Recipe")
	if err != nil {
		return nil, err
	}
	recipe.Normalize()
	return recipe, nil
}

// List returns recipes in entity index order (skill, then name). A skill
// narrows the query to that skill's key range.
func (r *RecipeRepository) List(ctx context.Context, skill string) ([]*entities.Recipe, error) {
	q := IndexQuery{EntityType: valueobjects.EntityTypeRecipe}
	if skill != "" {
		q.SortKeyPrefix = valueobjects.RecipeSkillPrefix(skill)
	}
	recipes, err := queryEntities[entities.Recipe](ctx, r.table, q)
	if err != nil {
		return nil, err
	}
	for _, rc := range recipes {
		rc.Normalize()
	}
	return recipes, nil
}
