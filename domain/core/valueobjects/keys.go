package valueobjects

import (
	"fmt"
	"strings"
)

const (
	// MetadataSK is the sort key of every entity's main record
	MetadataSK = "METADATA"

	// PriceSKPrefix prefixes the sort key of price records stored in an item partition
	PriceSKPrefix = "PRICE#"

	itemPKPrefix   = "ITEM#"
	recipePKPrefix = "RECIPE#"
	npcPKPrefix    = "NPC#"
	questPKPrefix  = "QUEST#"
	skillPrefix    = "SKILL#"
)

// Key is the primary key of a table record
type Key struct {
	PK string `dynamodbav:"pk" json:"pk"`
	SK string `dynamodbav:"sk" json:"sk"`
}

// String returns "pk|sk", handy for logging and map keys
func (k Key) String() string {
	return k.PK + "|" + k.SK
}

// IsPrice reports whether the key addresses a price record
func (k Key) IsPrice() bool {
	return strings.HasPrefix(k.SK, PriceSKPrefix)
}

// ItemKey returns the key of an item's metadata record
func ItemKey(id string) Key {
	return Key{PK: ItemPartition(id), SK: MetadataSK}
}

// ItemPartition returns the partition shared by an item and its prices
func ItemPartition(id string) string {
	return itemPKPrefix + id
}

// RecipeKey returns the key of a recipe record
func RecipeKey(id string) Key {
	return Key{PK: recipePKPrefix + id, SK: MetadataSK}
}

// NPCKey returns the key of an NPC record
func NPCKey(id string) Key {
	return Key{PK: npcPKPrefix + id, SK: MetadataSK}
}

// QuestKey returns the key of a quest record
func QuestKey(id string) Key {
	return Key{PK: questPKPrefix + id, SK: MetadataSK}
}

// PriceKey returns the key of a price record. Timestamps are RFC3339 so the
// sort key orders chronologically.
func PriceKey(itemID, timestamp string) Key {
	return Key{PK: ItemPartition(itemID), SK: PriceSKPrefix + timestamp}
}

// NameSortKey is the entity index sort key for items, NPCs and quests
func NameSortKey(name string) string {
	return strings.ToUpper(name)
}

// RecipeSortKey is the entity index sort key for recipes. Grouping by skill
// lets a skill listing be a single begins_with query.
func RecipeSortKey(skill, name string) string {
	return fmt.Sprintf("%s%s#%s", skillPrefix, skill, strings.ToUpper(name))
}

// RecipeSkillPrefix is the entity index sort key prefix selecting one skill
func RecipeSkillPrefix(skill string) string {
	return skillPrefix + skill + "#"
}

// SearchTerm normalizes a user search string for matching against name sort keys
func SearchTerm(search string) string {
	return strings.ToUpper(strings.TrimSpace(search))
}

// ParseExportID turns an export key such as "item_1234" or "NPC_Joeh" into
// the entity ID ("1234", "Joeh"). Keys without an underscore are returned as is.
func ParseExportID(exportKey string) string {
	if i := strings.Index(exportKey, "_"); i >= 0 {
		return exportKey[i+1:]
	}
	return exportKey
}

// ParseKeyID returns the ID part of a partition key ("ITEM#12" → "12")
func ParseKeyID(pk string) string {
	if i := strings.Index(pk, "#"); i >= 0 {
		return pk[i+1:]
	}
	return pk
}
