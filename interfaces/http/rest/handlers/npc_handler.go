package handlers

import (
	"net/http"

	"gorgonzola/application/queries"
	querybus "gorgonzola/application/queries/bus"
	"gorgonzola/domain/core/entities"
	pkgerrors "gorgonzola/pkg/errors"

	"go.uber.org/zap"
)

// NPCHandler handles NPC and quest lookups
type NPCHandler struct {
	queryBus *querybus.QueryBus
	errors   *pkgerrors.ErrorHandler
	logger   *zap.Logger
}

// NewNPCHandler creates a new NPC handler
func NewNPCHandler(queryBus *querybus.QueryBus, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *NPCHandler {
	return &NPCHandler{queryBus: queryBus, errors: errorHandler, logger: logger}
}

// ListNPCs handles GET /npcs
func (h *NPCHandler) ListNPCs(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	if id := params.Get("id"); id != "" {
		npc, err := querybus.Ask[*entities.NPC](r.Context(), h.queryBus, queries.GetNPCQuery{NPCID: id})
		if err != nil {
			h.errors.Handle(w, r, err)
			return
		}
		respondJSON(w, h.logger, http.StatusOK, npc)
		return
	}

	npcs, err := querybus.Ask[[]*entities.NPC](r.Context(), h.queryBus, queries.SearchNPCsQuery{Search: params.Get("search")})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, list(npcs))
}

// ListQuests handles GET /quests
func (h *NPCHandler) ListQuests(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	if id := params.Get("id"); id != "" {
		quest, err := querybus.Ask[*entities.Quest](r.Context(), h.queryBus, queries.GetQuestQuery{QuestID: id})
		if err != nil {
			h.errors.Handle(w, r, err)
			return
		}
		respondJSON(w, h.logger, http.StatusOK, quest)
		return
	}

	quests, err := querybus.Ask[[]*entities.Quest](r.Context(), h.queryBus, queries.SearchQuestsQuery{Search: params.Get("search")})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, list(quests))
}
