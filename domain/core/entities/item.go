package entities

import (
	"sort"

	"gorgonzola/domain/core/valueobjects"
)

// QuestRole describes how an item takes part in a quest
type QuestRole string

const (
	QuestRoleObjective QuestRole = "objective"
	QuestRoleReward    QuestRole = "reward"
)

// Item is a game item together with the reverse indices built at ingestion
type Item struct {
	ID                  string   `json:"id" dynamodbav:"id"`
	Name                string   `json:"name" dynamodbav:"name"`
	Value               float64  `json:"value" dynamodbav:"value"`
	InternalName        string   `json:"internalName" dynamodbav:"internalName"`
	Description         string   `json:"description,omitempty" dynamodbav:"description,omitempty"`
	IconID              int      `json:"iconId,omitempty" dynamodbav:"iconId,omitempty"`
	Keywords            []string `json:"keywords" dynamodbav:"keywords"`
	MaxStackSize        int      `json:"maxStackSize,omitempty" dynamodbav:"maxStackSize,omitempty"`
	IsCrafted           bool     `json:"isCrafted,omitempty" dynamodbav:"isCrafted,omitempty"`
	CraftingTargetLevel int      `json:"craftingTargetLevel,omitempty" dynamodbav:"craftingTargetLevel,omitempty"`
	CraftPoints         int      `json:"craftPoints,omitempty" dynamodbav:"craftPoints,omitempty"`

	UsedInRecipes     []RecipeRef  `json:"usedInRecipes" dynamodbav:"usedInRecipes"`
	ProducedByRecipes []RecipeRef  `json:"producedByRecipes" dynamodbav:"producedByRecipes"`
	Sources           []ItemSource `json:"sources" dynamodbav:"sources"`
	Quests            []QuestRef   `json:"quests" dynamodbav:"quests"`
}

// RecipeRef points from an item to a recipe that consumes or produces it
type RecipeRef struct {
	RecipeID      string `json:"recipeId" dynamodbav:"recipeId"`
	RecipeName    string `json:"recipeName" dynamodbav:"recipeName"`
	Skill         string `json:"skill" dynamodbav:"skill"`
	SkillLevelReq int    `json:"skillLevelReq" dynamodbav:"skillLevelReq"`
	StackSize     int    `json:"stackSize" dynamodbav:"stackSize"`
}

// ItemSource names an NPC the item can be obtained from
type ItemSource struct {
	NPCID      string `json:"npcId" dynamodbav:"npcId"`
	NPCName    string `json:"npcName" dynamodbav:"npcName"`
	SourceType string `json:"sourceType" dynamodbav:"sourceType"`
}

// QuestRef points from an item to a quest it appears in
type QuestRef struct {
	QuestID   string    `json:"questId" dynamodbav:"questId"`
	QuestName string    `json:"questName" dynamodbav:"questName"`
	Role      QuestRole `json:"role" dynamodbav:"role"`
}

// Key returns the table key of the item's metadata record
func (i *Item) Key() valueobjects.Key {
	return valueobjects.ItemKey(i.ID)
}

// SortKey returns the entity index sort key
func (i *Item) SortKey() string {
	return valueobjects.NameSortKey(i.Name)
}

// AddUsedIn records that a recipe consumes this item. Duplicate recipe IDs are ignored.
func (i *Item) AddUsedIn(ref RecipeRef) {
	if !containsRecipe(i.UsedInRecipes, ref.RecipeID) {
		i.UsedInRecipes = append(i.UsedInRecipes, ref)
	}
}

// AddProducedBy records that a recipe yields this item. Duplicate recipe IDs are ignored.
func (i *Item) AddProducedBy(ref RecipeRef) {
	if !containsRecipe(i.ProducedByRecipes, ref.RecipeID) {
		i.ProducedByRecipes = append(i.ProducedByRecipes, ref)
	}
}

// AddSource records an NPC source, ignoring exact duplicates
func (i *Item) AddSource(src ItemSource) {
	for _, s := range i.Sources {
		if s == src {
			return
		}
	}
	i.Sources = append(i.Sources, src)
}

// AddQuest records a quest appearance, ignoring exact duplicates
func (i *Item) AddQuest(ref QuestRef) {
	for _, q := range i.Quests {
		if q == ref {
			return
		}
	}
	i.Quests = append(i.Quests, ref)
}

// SortReferences orders every reverse index by ID so repeated syncs write identical records
func (i *Item) SortReferences() {
	byRecipe := func(refs []RecipeRef) {
		sort.SliceStable(refs, func(a, b int) bool { return refs[a].RecipeID < refs[b].RecipeID })
	}
	byRecipe(i.UsedInRecipes)
	byRecipe(i.ProducedByRecipes)
	sort.SliceStable(i.Sources, func(a, b int) bool {
		if i.Sources[a].NPCID != i.Sources[b].NPCID {
			return i.Sources[a].NPCID < i.Sources[b].NPCID
		}
		return i.Sources[a].SourceType < i.Sources[b].SourceType
	})
	sort.SliceStable(i.Quests, func(a, b int) bool {
		if i.Quests[a].QuestID != i.Quests[b].QuestID {
			return i.Quests[a].QuestID < i.Quests[b].QuestID
		}
		return i.Quests[a].Role < i.Quests[b].Role
	})
}

// Normalize replaces nil slices with empty ones so they serialize as []
func (i *Item) Normalize() {
	if i.Keywords == nil {
		i.Keywords = []string{}
	}
	if i.UsedInRecipes == nil {
		i.UsedInRecipes = []RecipeRef{}
	}
	if i.ProducedByRecipes == nil {
		i.ProducedByRecipes = []RecipeRef{}
	}
	if i.Sources == nil {
		i.Sources = []ItemSource{}
	}
	if i.Quests == nil {
		i.Quests = []QuestRef{}
	}
}

func containsRecipe(refs []RecipeRef, recipeID string) bool {
	for _, r := range refs {
		if r.RecipeID == recipeID {
			return true
		}
	}
	return false
}
