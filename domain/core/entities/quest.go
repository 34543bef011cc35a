package entities

import (
	"sort"

	"gorgonzola/domain/core/valueobjects"
)

// Quest is a quest with its requirements, objectives, rewards and the items it involves
type Quest struct {
	ID                string             `json:"id" dynamodbav:"id"`
	Name              string             `json:"name" dynamodbav:"name"`
	Description       string             `json:"description,omitempty" dynamodbav:"description,omitempty"`
	DisplayedLocation string             `json:"displayedLocation,omitempty" dynamodbav:"displayedLocation,omitempty"`
	FavorNPC          string             `json:"favorNpc,omitempty" dynamodbav:"favorNpc,omitempty"`
	Requirements      []QuestRequirement `json:"requirements" dynamodbav:"requirements"`
	Objectives        []QuestObjective   `json:"objectives" dynamodbav:"objectives"`
	RewardFavor       int                `json:"rewardFavor,omitempty" dynamodbav:"rewardFavor,omitempty"`
	Rewards           []QuestReward      `json:"rewards" dynamodbav:"rewards"`
	Items             []QuestItem        `json:"items" dynamodbav:"items"`
}

type QuestRequirement struct {
	Type  string `json:"type" dynamodbav:"type"`
	NPC   string `json:"npc,omitempty" dynamodbav:"npc,omitempty"`
	Level string `json:"level,omitempty" dynamodbav:"level,omitempty"`
	Skill string `json:"skill,omitempty" dynamodbav:"skill,omitempty"`
}

type QuestObjective struct {
	Type        string `json:"type" dynamodbav:"type"`
	Description string `json:"description" dynamodbav:"description"`
	Number      int    `json:"number,omitempty" dynamodbav:"number,omitempty"`
	Target      string `json:"target,omitempty" dynamodbav:"target,omitempty"`
	ItemName    string `json:"itemName,omitempty" dynamodbav:"itemName,omitempty"`
}

type QuestReward struct {
	Type  string `json:"type" dynamodbav:"type"`
	Skill string `json:"skill,omitempty" dynamodbav:"skill,omitempty"`
	XP    int    `json:"xp,omitempty" dynamodbav:"xp,omitempty"`
}

// QuestItem is an item collected for or rewarded by the quest
type QuestItem struct {
	ItemID   string    `json:"itemId" dynamodbav:"itemId"`
	ItemName string    `json:"itemName" dynamodbav:"itemName"`
	Role     QuestRole `json:"role" dynamodbav:"role"`
}

func (q *Quest) Key() valueobjects.Key {
	return valueobjects.QuestKey(q.ID)
}

func (q *Quest) SortKey() string {
	return valueobjects.NameSortKey(q.Name)
}

// AddItem records an involved item, ignoring exact duplicates
func (q *Quest) AddItem(item QuestItem) {
	for _, it := range q.Items {
		if it == item {
			return
		}
	}
	q.Items = append(q.Items, item)
}

func (q *Quest) SortItems() {
	sort.SliceStable(q.Items, func(a, b int) bool {
		if q.Items[a].ItemID != q.Items[b].ItemID {
			return q.Items[a].ItemID < q.Items[b].ItemID
		}
		return q.Items[a].Role < q.Items[b].Role
	})
}

func (q *Quest) Normalize() {
	if q.Requirements == nil {
		q.Requirements = []QuestRequirement{}
	}
	if q.Objectives == nil {
		q.Objectives = []QuestObjective{}
	}
	if q.Rewards == nil {
		q.Rewards = []QuestReward{}
	}
	if q.Items == nil {
		q.Items = []QuestItem{}
	}
}
