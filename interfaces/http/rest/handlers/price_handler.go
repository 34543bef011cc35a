package handlers

import (
	"encoding/json"
	"net/http"

	"gorgonzola/application/commands"
	"gorgonzola/application/commands/bus"
	"gorgonzola/application/queries"
	querybus "gorgonzola/application/queries/bus"
	"gorgonzola/domain/core/entities"
	pkgerrors "gorgonzola/pkg/errors"
	"gorgonzola/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxPriceBodyBytes = 64 << 10

// SubmitPriceRequest is the body of POST /prices
type SubmitPriceRequest struct {
	ItemID string   `json:"itemId"`
	Price  *float64 `json:"price"`
	Notes  string   `json:"notes"`
}

// PriceHandler handles price history reads and admin submissions
type PriceHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	clock      utils.Clock
	errors     *pkgerrors.ErrorHandler
	logger     *zap.Logger
}

// NewPriceHandler creates a new price handler
func NewPriceHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	clock utils.Clock,
	errorHandler *pkgerrors.ErrorHandler,
	logger *zap.Logger,
) *PriceHandler {
	if clock == nil {
		clock = utils.SystemClock
	}
	return &PriceHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		clock:      clock,
		errors:     errorHandler,
		logger:     logger,
	}
}

// ListPrices handles GET /prices?itemId=
func (h *PriceHandler) ListPrices(w http.ResponseWriter, r *http.Request) {
	itemID := r.URL.Query().Get("itemId")
	if itemID == "" {
		h.errors.HandleStatus(w, r, http.StatusBadRequest, "itemId required")
		return
	}

	prices, err := querybus.Ask[[]*entities.Price](r.Context(), h.queryBus, queries.GetPricesQuery{ItemID: itemID})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, list(prices))
}

// SubmitPrice handles POST /prices. The admin secret and rate limit are
// checked by middleware before this runs.
func (h *PriceHandler) SubmitPrice(w http.ResponseWriter, r *http.Request) {
	var req SubmitPriceRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPriceBodyBytes)).Decode(&req); err != nil {
		h.errors.HandleStatus(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ItemID == "" || req.Price == nil {
		h.errors.HandleStatus(w, r, http.StatusBadRequest, "itemId and price required")
		return
	}

	cmd := commands.SubmitPriceCommand{
		PriceID:     uuid.New().String(),
		ItemID:      req.ItemID,
		Price:       req.Price,
		Notes:       req.Notes,
		SubmittedAt: h.clock(),
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	price, err := cmd.ToPrice()
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusCreated, price)
}
