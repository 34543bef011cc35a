package valueobjects

// EntityType partitions the entity index. Every catalog record carries one;
// price records do not and therefore stay out of the index.
type EntityType string

const (
	EntityTypeItem   EntityType = "ITEM"
	EntityTypeRecipe EntityType = "RECIPE"
	EntityTypeNPC    EntityType = "NPC"
	EntityTypeQuest  EntityType = "QUEST"
)

// String returns the stored representation
func (t EntityType) String() string {
	return string(t)
}

// IsValid reports whether t is one of the known entity types
func (t EntityType) IsValid() bool {
	switch t {
	case EntityTypeItem, EntityTypeRecipe, EntityTypeNPC, EntityTypeQuest:
		return true
	}
	return false
}
