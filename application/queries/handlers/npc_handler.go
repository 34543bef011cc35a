package handlers

import (
	"context"

	"gorgonzola/application/ports"
	"gorgonzola/application/queries"
	"gorgonzola/domain/core/entities"
)

type NPCHandler struct {
	npcs ports.NPCRepository
}

func NewNPCHandler(npcs ports.NPCRepository) *NPCHandler {
	return &NPCHandler{npcs: npcs}
}

func (h *NPCHandler) GetNPC(ctx context.Context, q queries.GetNPCQuery) (*entities.NPC, error) {
	return h.npcs.GetByID(ctx, q.NPCID)
}

func (h *NPCHandler) SearchNPCs(ctx context.Context, q queries.SearchNPCsQuery) ([]*entities.NPC, error) {
	return h.npcs.Search(ctx, q.Search)
}
