package entities

import (
	"sort"

	"gorgonzola/domain/core/valueobjects"
)

// NPC is a non-player character and the items obtainable from it
type NPC struct {
	ID               string    `json:"id" dynamodbav:"id"`
	Name             string    `json:"name" dynamodbav:"name"`
	AreaName         string    `json:"areaName,omitempty" dynamodbav:"areaName,omitempty"`
	AreaFriendlyName string    `json:"areaFriendlyName,omitempty" dynamodbav:"areaFriendlyName,omitempty"`
	Description      string    `json:"description,omitempty" dynamodbav:"description,omitempty"`
	Items            []NPCItem `json:"items" dynamodbav:"items"`
}

// NPCItem is an item the NPC sells, barters, trains or otherwise hands out
type NPCItem struct {
	ItemID     string `json:"itemId" dynamodbav:"itemId"`
	ItemName   string `json:"itemName" dynamodbav:"itemName"`
	SourceType string `json:"sourceType" dynamodbav:"sourceType"`
}

func (n *NPC) Key() valueobjects.Key {
	return valueobjects.NPCKey(n.ID)
}

func (n *NPC) SortKey() string {
	return valueobjects.NameSortKey(n.Name)
}

// AddItem records an obtainable item, ignoring exact duplicates
func (n *NPC) AddItem(item NPCItem) {
	for _, it := range n.Items {
		if it == item {
			return
		}
	}
	n.Items = append(n.Items, item)
}

func (n *NPC) SortItems() {
	sort.SliceStable(n.Items, func(a, b int) bool {
		if n.Items[a].ItemID != n.Items[b].ItemID {
			return n.Items[a].ItemID < n.Items[b].ItemID
		}
		return n.Items[a].SourceType < n.Items[b].SourceType
	})
}

func (n *NPC) Normalize() {
	if n.Items == nil {
		n.Items = []NPCItem{}
	}
}
