package handlers

import (
	"net/http"

	"gorgonzola/application/queries"
	querybus "gorgonzola/application/queries/bus"
	"gorgonzola/domain/core/entities"
	pkgerrors "gorgonzola/pkg/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ItemHandler handles item lookups
type ItemHandler struct {
	queryBus *querybus.QueryBus
	errors   *pkgerrors.ErrorHandler
	logger   *zap.Logger
}

// NewItemHandler creates a new item handler
func NewItemHandler(queryBus *querybus.QueryBus, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *ItemHandler {
	return &ItemHandler{queryBus: queryBus, errors: errorHandler, logger: logger}
}

// ListItems handles GET /items. ?id= fetches one item, otherwise ?search=
// filters by name.
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	if id := params.Get("id"); id != "" {
		h.getItem(w, r, id)
		return
	}

	items, err := querybus.Ask[[]*entities.Item](r.Context(), h.queryBus, queries.SearchItemsQuery{
		Search: params.Get("search"),
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, list(items))
}

// GetItem handles GET /items/{itemID}
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	h.getItem(w, r, chi.URLParam(r, "itemID"))
}

func (h *ItemHandler) getItem(w http.ResponseWriter, r *http.Request, id string) {
	item, err := querybus.Ask[*entities.Item](r.Context(), h.queryBus, queries.GetItemQuery{ItemID: id})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, item)
}
