package entities

import (
	"strings"
	"testing"
	"time"

	pkgerrors "gorgonzola/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_ReverseIndexDeduplication(t *testing.T) {
	item := &Item{ID: "1", Name: "Apple"}

	item.AddUsedIn(RecipeRef{RecipeID: "20", RecipeName: "Pie", StackSize: 2})
	item.AddUsedIn(RecipeRef{RecipeID: "20", RecipeName: "Pie", StackSize: 5})
	item.AddUsedIn(RecipeRef{RecipeID: "10", RecipeName: "Juice"})
	item.AddProducedBy(RecipeRef{RecipeID: "30"})
	item.AddSource(ItemSource{NPCID: "Joeh", SourceType: "Vendor"})
	item.AddSource(ItemSource{NPCID: "Joeh", SourceType: "Vendor"})
	item.AddSource(ItemSource{NPCID: "Joeh", SourceType: "Barter"})
	item.AddQuest(QuestRef{QuestID: "5", Role: QuestRoleReward})
	item.AddQuest(QuestRef{QuestID: "5", Role: QuestRoleReward})

	item.SortReferences()

	require.Len(t, item.UsedInRecipes, 2)
	assert.Equal(t, "10", item.UsedInRecipes[0].RecipeID)
	assert.Equal(t, 2, item.UsedInRecipes[1].StackSize)
	assert.Len(t, item.ProducedByRecipes, 1)
	require.Len(t, item.Sources, 2)
	assert.Equal(t, "Barter", item.Sources[0].SourceType)
	assert.Len(t, item.Quests, 1)
}

func TestItem_Normalize(t *testing.T) {
	item := &Item{ID: "1"}
	item.Normalize()

	assert.NotNil(t, item.Keywords)
	assert.NotNil(t, item.UsedInRecipes)
	assert.NotNil(t, item.ProducedByRecipes)
	assert.NotNil(t, item.Sources)
	assert.NotNil(t, item.Quests)
}

func TestRecipe_Ref(t *testing.T) {
	r := &Recipe{ID: "42", Name: "Apple Pie", Skill: "Cooking", SkillLevelReq: 10}

	ref := r.Ref(3)

	assert.Equal(t, RecipeRef{RecipeID: "42", RecipeName: "Apple Pie", Skill: "Cooking", SkillLevelReq: 10, StackSize: 3}, ref)
	assert.Equal(t, "SKILL#Cooking#APPLE PIE", r.SortKey())
}

func TestNPCAndQuestItems(t *testing.T) {
	npc := &NPC{ID: "Joeh"}
	npc.AddItem(NPCItem{ItemID: "2", SourceType: "Vendor"})
	npc.AddItem(NPCItem{ItemID: "1", SourceType: "Vendor"})
	npc.AddItem(NPCItem{ItemID: "1", SourceType: "Vendor"})
	npc.SortItems()
	require.Len(t, npc.Items, 2)
	assert.Equal(t, "1", npc.Items[0].ItemID)

	q := &Quest{ID: "9"}
	q.AddItem(QuestItem{ItemID: "1", Role: QuestRoleReward})
	q.AddItem(QuestItem{ItemID: "1", Role: QuestRoleObjective})
	q.SortItems()
	require.Len(t, q.Items, 2)
	assert.Equal(t, QuestRoleObjective, q.Items[0].Role)
}

func TestNewPrice(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 0, 0, 5, time.FixedZone("CET", 3600))

	p, err := NewPrice("p1", " 5010 ", 12.5, "cheap", at)

	require.NoError(t, err)
	assert.Equal(t, "5010", p.ItemID)
	assert.Equal(t, "2024-03-01T09:00:00.000000005Z", p.Timestamp)
	assert.Equal(t, "ITEM#5010", p.Key().PK)
	assert.Equal(t, "PRICE#2024-03-01T09:00:00.000000005Z", p.Key().SK)
}

func TestNewPrice_Validation(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name    string
		itemID  string
		price   float64
		notes   string
		wantMsg string
	}{
		{"missing item", "  ", 1, "", "itemId is required"},
		{"negative price", "1", -1, "", "price cannot be negative"},
		{"long notes", "1", 1, strings.Repeat("x", MaxPriceNotesLength+1), "notes are too long"},
		{"long multibyte notes", "1", 1, strings.Repeat("é", MaxPriceNotesLength+1), "notes are too long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPrice("id", tt.itemID, tt.price, tt.notes, now)
			require.Error(t, err)
			assert.True(t, pkgerrors.IsValidation(err))
			assert.Equal(t, tt.wantMsg, pkgerrors.GetAppError(err).Message)
		})
	}
}

func TestNewPrice_NotesLimitCountsCharacters(t *testing.T) {
	notes := strings.Repeat("é", MaxPriceNotesLength)

	p, err := NewPrice("id", "1", 1, notes, time.Now())

	require.NoError(t, err)
	assert.Equal(t, notes, p.Notes)
}

func TestFormatPriceTimestamp_SortsChronologically(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	earlier := FormatPriceTimestamp(base.Add(900 * time.Millisecond))
	later := FormatPriceTimestamp(base.Add(time.Second))

	assert.Less(t, earlier, later)
}
