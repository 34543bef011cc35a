package handlers

import (
	"gorgonzola/application/ports"
	"gorgonzola/application/queries"
	"gorgonzola/application/queries/bus"
)

// Repositories groups the read ports the query handlers need
type Repositories struct {
	Items   ports.ItemRepository
	Recipes ports.RecipeRepository
	NPCs    ports.NPCRepository
	Quests  ports.QuestRepository
	Prices  ports.PriceRepository
}

// Register wires every query type to its handler
func Register(b *bus.QueryBus, repos Repositories) error {
	items := NewItemHandler(repos.Items)
	recipes := NewRecipeHandler(repos.Recipes, repos.Items)
	npcs := NewNPCHandler(repos.NPCs)
	quests := NewQuestHandler(repos.Quests)
	prices := NewPriceHandler(repos.Prices)

	registrations := []struct {
		query   bus.Query
		handler bus.QueryHandler
	}{
		{queries.GetItemQuery{}, bus.HandlerFor(items.GetItem)},
		{queries.SearchItemsQuery{}, bus.HandlerFor(items.SearchItems)},
		{queries.GetRecipeQuery{}, bus.HandlerFor(recipes.GetRecipe)},
		{queries.ListRecipesQuery{}, bus.HandlerFor(recipes.ListRecipes)},
		{queries.RecipesByIngredientQuery{}, bus.HandlerFor(recipes.RecipesByIngredient)},
		{queries.GetNPCQuery{}, bus.HandlerFor(npcs.GetNPC)},
		{queries.SearchNPCsQuery{}, bus.HandlerFor(npcs.SearchNPCs)},
		{queries.GetQuestQuery{}, bus.HandlerFor(quests.GetQuest)},
		{queries.SearchQuestsQuery{}, bus.HandlerFor(quests.SearchQuests)},
		{queries.GetPricesQuery{}, bus.HandlerFor(prices.GetPrices)},
	}
	for _, r := range registrations {
		if err := b.Register(r.query, r.handler); err != nil {
			return err
		}
	}
	return nil
}
