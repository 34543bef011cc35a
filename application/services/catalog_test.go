package services

import (
	"testing"

	"gorgonzola/domain/core/entities"
	"gorgonzola/domain/dump"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDump() *dump.Dump {
	return &dump.Dump{
		Items: map[string]dump.Item{
			"item_1": {Name: "Apple", InternalName: "Apple", Value: 3, Keywords: []string{"Fruit"}},
			"item_2": {Name: "Flour", InternalName: "Flour", Value: 1},
			"item_3": {Name: "Apple Pie", InternalName: "ApplePie", Value: 20},
		},
		Recipes: map[string]dump.Recipe{
			"recipe_10": {
				Name:  "Bake Apple Pie",
				Skill: "Cooking",
				Ingredients: []dump.RecipeIngredient{
					{ItemCode: 1, StackSize: 2},
					{ItemCode: 2},
					{ItemCode: 0, Desc: "any Crystal", ItemKeys: []string{"Crystal"}},
					{ItemCode: 999, StackSize: 1},
				},
				ResultItems: []dump.RecipeResult{{ItemCode: 3, StackSize: 1}},
			},
			"recipe_11": {
				Name:        "Apple Juice",
				Skill:       "Cooking",
				Ingredients: []dump.RecipeIngredient{{ItemCode: 1, StackSize: 4}, {ItemCode: 1, StackSize: 1}},
			},
		},
		NPCs: map[string]dump.NPC{
			"NPC_Joeh":  {Name: "Joeh", AreaName: "AreaSerbule", Desc: "A merchant"},
			"NPC_Marna": {Name: "Marna"},
		},
		ItemSources: map[string]dump.ItemSources{
			"item_1": {Entries: []dump.SourceEntry{
				{Type: "Vendor", NPC: "NPC_Joeh"},
				{Type: "Barter", NPC: "NPC_Ghost"},
				{Type: "Recipe", RecipeID: 10},
			}},
			"item_404": {Entries: []dump.SourceEntry{{Type: "Vendor", NPC: "NPC_Joeh"}}},
		},
		Quests: map[string]dump.Quest{
			"quest_5": {
				Name:         "Pie for Marna",
				FavorNpc:     "NPC_Marna",
				Requirements: dump.Requirements{{T: "MinFavorLevel", Npc: "NPC_Marna", Level: "Friends"}},
				Objectives: []dump.QuestObjective{
					{Type: "Collect", Description: "Bring pie", Number: 1, ItemName: "ApplePie", Target: dump.FlexStrings{"Marna"}},
					{Type: "Kill", Description: "Slay rats", Number: 5, Target: dump.FlexStrings{"Rat", "BigRat"}},
				},
				RewardsFavor: 50,
				Rewards:      []dump.QuestReward{{T: "SkillXp", Skill: "Cooking", Xp: 100}},
				RewardsItems: []dump.QuestRewardItem{{Item: "Apple", StackSize: 3}, {Item: "Unknown"}},
			},
		},
	}
}

func itemByID(t *testing.T, c *Catalog, id string) *entities.Item {
	t.Helper()
	for _, it := range c.Items {
		if it.ID == id {
			return it
		}
	}
	t.Fatalf("item %s not in catalog", id)
	return nil
}

func TestBuildCatalog_Entities(t *testing.T) {
	c := BuildCatalog(sampleDump())

	require.Len(t, c.Items, 3)
	require.Len(t, c.Recipes, 2)
	require.Len(t, c.NPCs, 2)
	require.Len(t, c.Quests, 1)

	// export key order
	assert.Equal(t, []string{"1", "2", "3"}, []string{c.Items[0].ID, c.Items[1].ID, c.Items[2].ID})
	assert.Equal(t, "10", c.Recipes[0].ID)
	assert.Equal(t, "Joeh", c.NPCs[0].ID)
	assert.Equal(t, "A merchant", c.NPCs[0].Description)

	pie := c.Recipes[0]
	require.Len(t, pie.Ingredients, 4)
	assert.Equal(t, "Apple", pie.Ingredients[0].ItemName)
	assert.Equal(t, 1, pie.Ingredients[1].StackSize, "missing stack size defaults to one")
	assert.Equal(t, "any Crystal", pie.Ingredients[2].Desc)
	assert.Empty(t, pie.Ingredients[3].ItemName)
	require.Len(t, pie.Results, 1)
	assert.Equal(t, "Apple Pie", pie.Results[0].ItemName)
	assert.NotNil(t, c.Recipes[1].Results)
}

func TestBuildCatalog_ReverseIndices(t *testing.T) {
	c := BuildCatalog(sampleDump())

	apple := itemByID(t, c, "1")
	require.Len(t, apple.UsedInRecipes, 2, "duplicate ingredient rows collapse to one ref per recipe")
	assert.Equal(t, entities.RecipeRef{RecipeID: "10", RecipeName: "Bake Apple Pie", Skill: "Cooking", StackSize: 2}, apple.UsedInRecipes[0])
	assert.Equal(t, 4, apple.UsedInRecipes[1].StackSize)
	assert.Empty(t, apple.ProducedByRecipes)
	assert.Equal(t, []entities.ItemSource{{NPCID: "Joeh", NPCName: "Joeh", SourceType: "Vendor"}}, apple.Sources)
	assert.Equal(t, []entities.QuestRef{{QuestID: "5", QuestName: "Pie for Marna", Role: entities.QuestRoleReward}}, apple.Quests)

	pie := itemByID(t, c, "3")
	require.Len(t, pie.ProducedByRecipes, 1)
	assert.Equal(t, "10", pie.ProducedByRecipes[0].RecipeID)
	assert.Equal(t, entities.QuestRoleObjective, pie.Quests[0].Role)

	joeh := c.NPCs[0]
	assert.Equal(t, []entities.NPCItem{{ItemID: "1", ItemName: "Apple", SourceType: "Vendor"}}, joeh.Items)
	assert.NotNil(t, c.NPCs[1].Items)
}

func TestBuildCatalog_Quests(t *testing.T) {
	c := BuildCatalog(sampleDump())
	q := c.Quests[0]

	assert.Equal(t, "5", q.ID)
	assert.Equal(t, 50, q.RewardFavor)
	assert.Equal(t, []entities.QuestRequirement{{Type: "MinFavorLevel", NPC: "NPC_Marna", Level: "Friends"}}, q.Requirements)
	require.Len(t, q.Objectives, 2)
	assert.Equal(t, "Apple Pie", q.Objectives[0].ItemName)
	assert.Equal(t, "Rat, BigRat", q.Objectives[1].Target)
	assert.Equal(t, []entities.QuestReward{{Type: "SkillXp", Skill: "Cooking", XP: 100}}, q.Rewards)
	assert.Equal(t, []entities.QuestItem{
		{ItemID: "1", ItemName: "Apple", Role: entities.QuestRoleReward},
		{ItemID: "3", ItemName: "Apple Pie", Role: entities.QuestRoleObjective},
	}, q.Items)
}

func TestBuildCatalog_CountsSkippedReferences(t *testing.T) {
	c := BuildCatalog(sampleDump())

	// ingredient 999, NPC_Ghost, item_404 source, reward item "Unknown"
	assert.Equal(t, 4, c.SkippedReferences)
}

func TestBuildCatalog_Deterministic(t *testing.T) {
	first := BuildCatalog(sampleDump())
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, BuildCatalog(sampleDump()))
	}
}

func TestBuildCatalog_EmptyDump(t *testing.T) {
	c := BuildCatalog(&dump.Dump{})

	assert.Empty(t, c.Items)
	assert.Zero(t, c.SkippedReferences)
}
