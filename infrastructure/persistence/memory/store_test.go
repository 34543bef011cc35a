package memory

import (
	"context"
	"testing"

	"gorgonzola/domain/core/entities"
	"gorgonzola/domain/core/valueobjects"
	pkgerrors "gorgonzola/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.PutItems(ctx, []*entities.Item{
		{ID: "1", Name: "Green Apple"},
		{ID: "2", Name: "Apple Pie"},
		{ID: "3", Name: "Iron Sword"},
	}))
	require.NoError(t, s.PutRecipes(ctx, []*entities.Recipe{
		{ID: "10", Name: "Bake Pie", Skill: "Cooking"},
		{ID: "11", Name: "Forge Sword", Skill: "Blacksmithing"},
		{ID: "12", Name: "Apple Juice", Skill: "Cooking"},
	}))
	require.NoError(t, s.PutNPCs(ctx, []*entities.NPC{{ID: "Joeh", Name: "Joeh"}}))
	require.NoError(t, s.PutQuests(ctx, []*entities.Quest{{ID: "5", Name: "Fetch Apples"}}))
	return s
}

func TestStore_ItemLookup(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	item, err := s.Items().GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Green Apple", item.Name)
	assert.NotNil(t, item.UsedInRecipes)

	_, err = s.Items().GetByID(ctx, "99")
	assert.True(t, pkgerrors.IsNotFound(err))

	found, err := s.Items().Search(ctx, "apple")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Apple Pie", found[0].Name)

	all, err := s.Items().Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestStore_RecipesBySkill(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	cooking, err := s.Recipes().List(ctx, "Cooking")
	require.NoError(t, err)
	require.Len(t, cooking, 2)
	assert.Equal(t, "Apple Juice", cooking[0].Name)

	all, err := s.Recipes().List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Blacksmithing", all[0].Skill)

	_, err = s.Recipes().GetByID(ctx, "404")
	assert.Equal(t, "Recipe not found", pkgerrors.GetAppError(err).Message)
}

func TestStore_PricesNewestFirst(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, &entities.Price{ID: "a", ItemID: "1", Timestamp: "2024-01-01T00:00:00.000000000Z"}))
	require.NoError(t, s.Save(ctx, &entities.Price{ID: "b", ItemID: "1", Timestamp: "2024-02-01T00:00:00.000000000Z"}))
	require.NoError(t, s.Save(ctx, &entities.Price{ID: "c", ItemID: "2", Timestamp: "2024-03-01T00:00:00.000000000Z"}))

	prices, err := s.ListForItem(ctx, "1")
	require.NoError(t, err)
	require.Len(t, prices, 2)
	assert.Equal(t, "b", prices[0].ID)

	none, err := s.ListForItem(ctx, "404")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_ScanAndDelete(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, &entities.Price{ID: "a", ItemID: "1", Timestamp: "t1"}))

	keys, err := s.ScanKeys(ctx)
	require.NoError(t, err)
	assert.Len(t, keys, 9)
	assert.Contains(t, keys, valueobjects.PriceKey("1", "t1"))

	require.NoError(t, s.DeleteKeys(ctx, []valueobjects.Key{valueobjects.ItemKey("1"), valueobjects.NPCKey("Joeh")}))

	keys, err = s.ScanKeys(ctx)
	require.NoError(t, err)
	assert.Len(t, keys, 7)
	_, err = s.NPCs().GetByID(ctx, "Joeh")
	assert.True(t, pkgerrors.IsNotFound(err))
	// the price record is independent of the item metadata record
	prices, err := s.ListForItem(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, prices, 1)
}
