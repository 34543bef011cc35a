package queries

import (
	"strings"

	pkgerrors "gorgonzola/pkg/errors"
)

// GetNPCQuery looks up one NPC by ID ("Joeh", not "NPC_Joeh")
type GetNPCQuery struct {
	NPCID string
}

func (q GetNPCQuery) Validate() error {
	if strings.TrimSpace(q.NPCID) == "" {
		return pkgerrors.NewValidationError("NPC ID is required")
	}
	return nil
}

type SearchNPCsQuery struct {
	Search string
}

func (q SearchNPCsQuery) Validate() error {
	return nil
}

// GetQuestQuery looks up one quest by ID
type GetQuestQuery struct {
	QuestID string
}

func (q GetQuestQuery) Validate() error {
	if strings.TrimSpace(q.QuestID) == "" {
		return pkgerrors.NewValidationError("quest ID is required")
	}
	return nil
}

type SearchQuestsQuery struct {
	Search string
}

func (q SearchQuestsQuery) Validate() error {
	return nil
}
