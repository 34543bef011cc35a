// Package dump holds the shapes of the Project: Gorgon data export as it is
// published on the CDN: JSON objects keyed by export key ("item_1234"),
// PascalCase fields.
package dump

// Files making up one export
const (
	ItemsFile       = "items.json"
	RecipesFile     = "recipes.json"
	NPCsFile        = "npcs.json"
	QuestsFile      = "quests.json"
	ItemSourcesFile = "sources_items.json"
)

// Dump is one complete fetched export
type Dump struct {
	Items       map[string]Item
	Recipes     map[string]Recipe
	NPCs        map[string]NPC
	Quests      map[string]Quest
	ItemSources map[string]ItemSources
}

type Item struct {
	Name                string   `json:"Name"`
	Value               float64  `json:"Value"`
	InternalName        string   `json:"InternalName"`
	Description         string   `json:"Description"`
	IconID              int      `json:"IconId"`
	Keywords            []string `json:"Keywords"`
	MaxStackSize        int      `json:"MaxStackSize"`
	IsCrafted           bool     `json:"IsCrafted"`
	CraftingTargetLevel int      `json:"CraftingTargetLevel"`
	CraftPoints         int      `json:"CraftPoints"`
}

type Recipe struct {
	InternalName  string             `json:"InternalName"`
	Name          string             `json:"Name"`
	Description   string             `json:"Description"`
	IconID        int                `json:"IconId"`
	Keywords      []string           `json:"Keywords"`
	Skill         string             `json:"Skill"`
	SkillLevelReq int                `json:"SkillLevelReq"`
	Ingredients   []RecipeIngredient `json:"Ingredients"`
	ResultItems   []RecipeResult     `json:"ResultItems"`
	RewardSkill   string             `json:"RewardSkill"`
	RewardSkillXP int                `json:"RewardSkillXp"`
}

type RecipeIngredient struct {
	ItemCode        int      `json:"ItemCode"`
	StackSize       int      `json:"StackSize"`
	ChanceToConsume float64  `json:"ChanceToConsume"`
	Desc            string   `json:"Desc"`
	ItemKeys        []string `json:"ItemKeys"`
}

type RecipeResult struct {
	ItemCode      int     `json:"ItemCode"`
	StackSize     int     `json:"StackSize"`
	PercentChance float64 `json:"PercentChance"`
}

type NPC struct {
	Name             string `json:"Name"`
	AreaName         string `json:"AreaName"`
	AreaFriendlyName string `json:"AreaFriendlyName"`
	Desc             string `json:"Desc"`
}

type Quest struct {
	Name              string            `json:"Name"`
	Description       string            `json:"Description"`
	DisplayedLocation string            `json:"DisplayedLocation"`
	FavorNpc          string            `json:"FavorNpc"`
	Requirements      Requirements      `json:"Requirements"`
	Objectives        []QuestObjective  `json:"Objectives"`
	RewardsFavor      int               `json:"Rewards_Favor"`
	Rewards           []QuestReward     `json:"Rewards"`
	RewardsItems      []QuestRewardItem `json:"Rewards_Items"`
}

type QuestRequirement struct {
	T     string     `json:"T"`
	Npc   string     `json:"Npc"`
	Level FlexString `json:"Level"`
	Skill string     `json:"Skill"`
}

type QuestObjective struct {
	Type        string      `json:"Type"`
	Description string      `json:"Description"`
	Number      int         `json:"Number"`
	Target      FlexStrings `json:"Target"`
	ItemName    string      `json:"ItemName"`
}

type QuestReward struct {
	T     string `json:"T"`
	Skill string `json:"Skill"`
	Xp    int    `json:"Xp"`
}

// QuestRewardItem names the rewarded item by internal name
type QuestRewardItem struct {
	Item      string `json:"Item"`
	StackSize int    `json:"StackSize"`
}

// ItemSources lists where an item can be obtained
type ItemSources struct {
	Entries []SourceEntry `json:"entries"`
}

// SourceEntry is one way of obtaining an item. Only entries naming an NPC
// ("NPC_Joeh") contribute NPC sources.
type SourceEntry struct {
	Type     string `json:"type"`
	NPC      string `json:"npc"`
	RecipeID int    `json:"recipeId"`
	QuestID  int    `json:"questId"`
	Skill    string `json:"skill"`
}
