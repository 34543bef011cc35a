package handlers

import (
	"context"

	"gorgonzola/application/ports"
	"gorgonzola/application/queries"
	"gorgonzola/domain/core/entities"
)

type QuestHandler struct {
	quests ports.QuestRepository
}

func NewQuestHandler(quests ports.QuestRepository) *QuestHandler {
	return &QuestHandler{quests: quests}
}

func (h *QuestHandler) GetQuest(ctx context.Context, q queries.GetQuestQuery) (*entities.Quest, error) {
	return h.quests.GetByID(ctx, q.QuestID)
}

func (h *QuestHandler) SearchQuests(ctx context.Context, q queries.SearchQuestsQuery) ([]*entities.Quest, error) {
	return h.quests.Search(ctx, q.Search)
}
