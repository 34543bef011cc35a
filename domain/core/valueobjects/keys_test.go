package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, Key{PK: "ITEM#5010", SK: "METADATA"}, ItemKey("5010"))
	assert.Equal(t, Key{PK: "RECIPE#42", SK: "METADATA"}, RecipeKey("42"))
	assert.Equal(t, Key{PK: "NPC#Joeh", SK: "METADATA"}, NPCKey("Joeh"))
	assert.Equal(t, Key{PK: "QUEST#7", SK: "METADATA"}, QuestKey("7"))

	price := PriceKey("5010", "2024-01-02T03:04:05.000000000Z")
	assert.Equal(t, "ITEM#5010", price.PK)
	assert.Equal(t, "PRICE#2024-01-02T03:04:05.000000000Z", price.SK)
	assert.True(t, price.IsPrice())
	assert.False(t, ItemKey("5010").IsPrice())
}

func TestSortKeys(t *testing.T) {
	assert.Equal(t, "GREEN APPLE", NameSortKey("Green Apple"))
	assert.Equal(t, "SKILL#Cooking#APPLE PIE", RecipeSortKey("Cooking", "Apple Pie"))
	assert.Equal(t, "SKILL#Cooking#", RecipeSkillPrefix("Cooking"))
	assert.Equal(t, "APPLE", SearchTerm("  apple "))
}

func TestParseExportID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"item_1234", "1234"},
		{"recipe_42", "42"},
		{"NPC_Joeh", "Joeh"},
		{"NPC_Serbule_Guard", "Serbule_Guard"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseExportID(tt.in))
		})
	}
}

func TestParseKeyID(t *testing.T) {
	assert.Equal(t, "12", ParseKeyID("ITEM#12"))
	assert.Equal(t, "Joeh", ParseKeyID("NPC#Joeh"))
	assert.Equal(t, "bare", ParseKeyID("bare"))
}

func TestEntityType(t *testing.T) {
	assert.True(t, EntityTypeItem.IsValid())
	assert.False(t, EntityType("PRICE").IsValid())
	assert.Equal(t, "QUEST", EntityTypeQuest.String())
}
