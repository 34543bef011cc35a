package entities

import "gorgonzola/domain/core/valueobjects"

// Recipe is a crafting recipe with item names resolved at ingestion
type Recipe struct {
	ID            string             `json:"id" dynamodbav:"id"`
	Name          string             `json:"name" dynamodbav:"name"`
	InternalName  string             `json:"internalName" dynamodbav:"internalName"`
	Description   string             `json:"description,omitempty" dynamodbav:"description,omitempty"`
	IconID        int                `json:"iconId,omitempty" dynamodbav:"iconId,omitempty"`
	Keywords      []string           `json:"keywords,omitempty" dynamodbav:"keywords,omitempty"`
	Skill         string             `json:"skill" dynamodbav:"skill"`
	SkillLevelReq int                `json:"skillLevelReq" dynamodbav:"skillLevelReq"`
	RewardSkill   string             `json:"rewardSkill,omitempty" dynamodbav:"rewardSkill,omitempty"`
	RewardSkillXP int                `json:"rewardSkillXp,omitempty" dynamodbav:"rewardSkillXp,omitempty"`
	Ingredients   []RecipeIngredient `json:"ingredients" dynamodbav:"ingredients"`
	Results       []RecipeResult     `json:"results" dynamodbav:"results"`
}

// RecipeIngredient is one consumed stack. ItemID is zero for keyword-only
// ingredients ("any Crystal"), which are described by Desc instead.
type RecipeIngredient struct {
	ItemID          int     `json:"itemId" dynamodbav:"itemId"`
	ItemName        string  `json:"itemName" dynamodbav:"itemName"`
	StackSize       int     `json:"stackSize" dynamodbav:"stackSize"`
	ChanceToConsume float64 `json:"chanceToConsume,omitempty" dynamodbav:"chanceToConsume,omitempty"`
	Desc            string  `json:"desc,omitempty" dynamodbav:"desc,omitempty"`
}

// RecipeResult is one produced stack
type RecipeResult struct {
	ItemID        int     `json:"itemId" dynamodbav:"itemId"`
	ItemName      string  `json:"itemName" dynamodbav:"itemName"`
	StackSize     int     `json:"stackSize" dynamodbav:"stackSize"`
	PercentChance float64 `json:"percentChance,omitempty" dynamodbav:"percentChance,omitempty"`
}

func (r *Recipe) Key() valueobjects.Key {
	return valueobjects.RecipeKey(r.ID)
}

func (r *Recipe) SortKey() string {
	return valueobjects.RecipeSortKey(r.Skill, r.Name)
}

// Ref builds the reference stored on items touched by this recipe
func (r *Recipe) Ref(stackSize int) RecipeRef {
	return RecipeRef{
		RecipeID:      r.ID,
		RecipeName:    r.Name,
		Skill:         r.Skill,
		SkillLevelReq: r.SkillLevelReq,
		StackSize:     stackSize,
	}
}

func (r *Recipe) Normalize() {
	if r.Ingredients == nil {
		r.Ingredients = []RecipeIngredient{}
	}
	if r.Results == nil {
		r.Results = []RecipeResult{}
	}
}
