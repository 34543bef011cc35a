package dynamodb

import (
	"context"

	"gorgonzola/application/ports"
	"gorgonzola/domain/core/entities"
	"gorgonzola/domain/core/valueobjects"
)

// QuestRepository reads quest records
type QuestRepository struct {
	table *Table
}

func NewQuestRepository(table *Table) ports.QuestRepository {
	return &QuestRepository{table: table}
}

func (r *QuestRepository) GetByID(ctx context.Context, id string) (*entities.Quest, error) {
	quest, err := getEntity[entities.Quest](ctx, r.table, valueobjects.QuestKey(id), "Quest")
	if err != nil {
		return nil, err
	}
	quest.Normalize()
	return quest, nil
}

func (r *QuestRepository) Search(ctx context.Context, search string) ([]*entities.Quest, error) {
	quests, err := queryEntities[entities.Quest](ctx, r.table, IndexQuery{
		EntityType: valueobjects.EntityTypeQuest,
		Contains:   valueobjects.SearchTerm(search),
	})
	if err != nil {
		return nil, err
	}
	for _, q := range quests {
		q.Normalize()
	}
	return quests, nil
}
