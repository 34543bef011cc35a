package services

import (
	"sort"
	"strconv"
	"strings"

	"gorgonzola/domain/core/entities"
	"gorgonzola/domain/core/valueobjects"
	"gorgonzola/domain/dump"
)

// Catalog is the table-shaped result of transforming one export
type Catalog struct {
	Items   []*entities.Item
	Recipes []*entities.Recipe
	NPCs    []*entities.NPC
	Quests  []*entities.Quest

	// SkippedReferences counts references to items or NPCs missing from the export
	SkippedReferences int
}

// catalogBuilder holds the lookup tables of a single transform pass
type catalogBuilder struct {
	catalog        *Catalog
	itemsByID      map[string]*entities.Item
	itemsByIntName map[string]*entities.Item
	npcsByKey      map[string]*entities.NPC
}

// BuildCatalog transforms an export into entities with their reverse
// indices filled in. Export maps are walked in key order so the same
// export always yields identical records.
func BuildCatalog(d *dump.Dump) *Catalog {
	b := &catalogBuilder{
		catalog:        &Catalog{},
		itemsByID:      make(map[string]*entities.Item, len(d.Items)),
		itemsByIntName: make(map[string]*entities.Item, len(d.Items)),
		npcsByKey:      make(map[string]*entities.NPC, len(d.NPCs)),
	}

	b.addItems(d.Items)
	b.addRecipes(d.Recipes)
	b.addNPCs(d.NPCs)
	b.addItemSources(d.ItemSources)
	b.addQuests(d.Quests)

	for _, it := range b.catalog.Items {
		it.SortReferences()
		it.Normalize()
	}
	for _, n := range b.catalog.NPCs {
		n.SortItems()
		n.Normalize()
	}
	for _, q := range b.catalog.Quests {
		q.SortItems()
		q.Normalize()
	}
	for _, r := range b.catalog.Recipes {
		r.Normalize()
	}
	return b.catalog
}

func (b *catalogBuilder) addItems(raw map[string]dump.Item) {
	for _, key := range sortedKeys(raw) {
		src := raw[key]
		item := &entities.Item{
			ID:                  valueobjects.ParseExportID(key),
			Name:                src.Name,
			Value:               src.Value,
			InternalName:        src.InternalName,
			Description:         src.Description,
			IconID:              src.IconID,
			Keywords:            src.Keywords,
			MaxStackSize:        src.MaxStackSize,
			IsCrafted:           src.IsCrafted,
			CraftingTargetLevel: src.CraftingTargetLevel,
			CraftPoints:         src.CraftPoints,
		}
		b.itemsByID[item.ID] = item
		if _, taken := b.itemsByIntName[item.InternalName]; !taken && item.InternalName != "" {
			b.itemsByIntName[item.InternalName] = item
		}
		b.catalog.Items = append(b.catalog.Items, item)
	}
}

func (b *catalogBuilder) addRecipes(raw map[string]dump.Recipe) {
	for _, key := range sortedKeys(raw) {
		src := raw[key]
		recipe := &entities.Recipe{
			ID:            valueobjects.ParseExportID(key),
			Name:          src.Name,
			InternalName:  src.InternalName,
			Description:   src.Description,
			IconID:        src.IconID,
			Keywords:      src.Keywords,
			Skill:         src.Skill,
			SkillLevelReq: src.SkillLevelReq,
			RewardSkill:   src.RewardSkill,
			RewardSkillXP: src.RewardSkillXP,
		}

		for _, ing := range src.Ingredients {
			stack := stackSize(ing.StackSize)
			entry := entities.RecipeIngredient{
				ItemID:          ing.ItemCode,
				StackSize:       stack,
				ChanceToConsume: ing.ChanceToConsume,
				Desc:            ing.Desc,
			}
			// keyword ingredients ("any Crystal") name no item
			if ing.ItemCode != 0 {
				if item := b.itemByCode(ing.ItemCode); item != nil {
					entry.ItemName = item.Name
					item.AddUsedIn(recipe.Ref(stack))
				} else {
					b.catalog.SkippedReferences++
				}
			}
			recipe.Ingredients = append(recipe.Ingredients, entry)
		}

		for _, res := range src.ResultItems {
			stack := stackSize(res.StackSize)
			entry := entities.RecipeResult{
				ItemID:        res.ItemCode,
				StackSize:     stack,
				PercentChance: res.PercentChance,
			}
			if item := b.itemByCode(res.ItemCode); item != nil {
				entry.ItemName = item.Name
				item.AddProducedBy(recipe.Ref(stack))
			} else {
				b.catalog.SkippedReferences++
			}
			recipe.Results = append(recipe.Results, entry)
		}

		b.catalog.Recipes = append(b.catalog.Recipes, recipe)
	}
}

func (b *catalogBuilder) addNPCs(raw map[string]dump.NPC) {
	for _, key := range sortedKeys(raw) {
		src := raw[key]
		npc := &entities.NPC{
			ID:               valueobjects.ParseExportID(key),
			Name:             src.Name,
			AreaName:         src.AreaName,
			AreaFriendlyName: src.AreaFriendlyName,
			Description:      src.Desc,
		}
		b.npcsByKey[key] = npc
		b.catalog.NPCs = append(b.catalog.NPCs, npc)
	}
}

// addItemSources links items and NPCs in both directions. Entries that do
// not name an NPC (recipes, quests, monsters) carry no NPC reference.
func (b *catalogBuilder) addItemSources(raw map[string]dump.ItemSources) {
	for _, key := range sortedKeys(raw) {
		item := b.itemsByID[valueobjects.ParseExportID(key)]
		for _, entry := range raw[key].Entries {
			if entry.NPC == "" {
				continue
			}
			npc := b.npcsByKey[entry.NPC]
			if item == nil || npc == nil {
				b.catalog.SkippedReferences++
				continue
			}
			item.AddSource(entities.ItemSource{NPCID: npc.ID, NPCName: npc.Name, SourceType: entry.Type})
			npc.AddItem(entities.NPCItem{ItemID: item.ID, ItemName: item.Name, SourceType: entry.Type})
		}
	}
}

func (b *catalogBuilder) addQuests(raw map[string]dump.Quest) {
	for _, key := range sortedKeys(raw) {
		src := raw[key]
		quest := &entities.Quest{
			ID:                valueobjects.ParseExportID(key),
			Name:              src.Name,
			Description:       src.Description,
			DisplayedLocation: src.DisplayedLocation,
			FavorNPC:          src.FavorNpc,
			RewardFavor:       src.RewardsFavor,
		}

		for _, req := range src.Requirements {
			quest.Requirements = append(quest.Requirements, entities.QuestRequirement{
				Type:  req.T,
				NPC:   req.Npc,
				Level: string(req.Level),
				Skill: req.Skill,
			})
		}
		for _, rw := range src.Rewards {
			quest.Rewards = append(quest.Rewards, entities.QuestReward{Type: rw.T, Skill: rw.Skill, XP: rw.Xp})
		}

		for _, obj := range src.Objectives {
			entry := entities.QuestObjective{
				Type:        obj.Type,
				Description: obj.Description,
				Number:      obj.Number,
				Target:      strings.Join(obj.Target, ", "),
				ItemName:    obj.ItemName,
			}
			if obj.ItemName != "" {
				if item := b.linkQuestItem(quest, obj.ItemName, entities.QuestRoleObjective); item != nil {
					entry.ItemName = item.Name
				}
			}
			quest.Objectives = append(quest.Objectives, entry)
		}

		for _, ri := range src.RewardsItems {
			b.linkQuestItem(quest, ri.Item, entities.QuestRoleReward)
		}

		b.catalog.Quests = append(b.catalog.Quests, quest)
	}
}

// linkQuestItem resolves an internal item name and links item and quest.
// It returns nil and counts a skip when the item is unknown.
func (b *catalogBuilder) linkQuestItem(quest *entities.Quest, internalName string, role entities.QuestRole) *entities.Item {
	item := b.itemsByIntName[internalName]
	if item == nil {
		b.catalog.SkippedReferences++
		return nil
	}
	quest.AddItem(entities.QuestItem{ItemID: item.ID, ItemName: item.Name, Role: role})
	item.AddQuest(entities.QuestRef{QuestID: quest.ID, QuestName: quest.Name, Role: role})
	return item
}

func (b *catalogBuilder) itemByCode(code int) *entities.Item {
	return b.itemsByID[strconv.Itoa(code)]
}

func stackSize(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
