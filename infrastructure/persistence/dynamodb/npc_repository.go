package dynamodb

import (
	"context"

	"gorgonzola/application/ports"
	"gorgonzola/domain/core/entities"
	"gorgonzola/domain/core/valueobjects"
)

// NPCRepository reads NPC records
type NPCRepository struct {
	table *Table
}

func NewNPCRepository(table *Table) ports.NPCRepository {
	return &NPCRepository{table: table}
}

func (r *NPCRepository) GetByID(ctx context.Context, id string) (*entities.NPC, error) {
	npc, err := getEntity[entities.NPC](ctx, r.table, valueobjects.NPCKey(id), "NPC")
	if err != nil {
		return nil, err
	}
	npc.Normalize()
	return npc, nil
}

func (r *NPCRepository) Search(ctx context.Context, search string) ([]*entities.NPC, error) {
	npcs, err := queryEntities[entities.NPC](ctx, r.table, IndexQuery{
		EntityType: valueobjects.EntityTypeNPC,
		Contains:   valueobjects.SearchTerm(search),
	})
	if err != nil {
		return nil, err
	}
	for _, n := range npcs {
		n.Normalize()
	}
	return npcs, nil
}
