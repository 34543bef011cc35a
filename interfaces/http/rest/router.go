package rest

import (
	"net/http"

	"gorgonzola/application/commands/bus"
	querybus "gorgonzola/application/queries/bus"
	"gorgonzola/interfaces/http/rest/handlers"
	"gorgonzola/interfaces/http/rest/middleware"
	"gorgonzola/pkg/auth"
	pkgerrors "gorgonzola/pkg/errors"
	"gorgonzola/pkg/observability"
	"gorgonzola/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Options tunes the router for the environment it is served from
type Options struct {
	AdminSecret *auth.AdminSecret
	RateLimiter *auth.IPRateLimiter
	Collector   *observability.Collector
	Clock       utils.Clock
	// ExposeMetrics mounts /metrics. Only the local server is scraped.
	ExposeMetrics bool
	Debug         bool
	// TrustForwardedFor takes the client address from X-Forwarded-For and
	// X-Real-IP. Leave it off behind API Gateway, where the adapter already
	// sets RemoteAddr to the caller's source IP and the headers are
	// client-controlled.
	TrustForwardedFor bool
}

// Router creates and configures the HTTP router
type Router struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	opts       Options
	logger     *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	opts Options,
	logger *zap.Logger,
) *Router {
	if opts.AdminSecret == nil {
		opts.AdminSecret = auth.NewAdminSecret("")
	}
	return &Router{
		commandBus: commandBus,
		queryBus:   queryBus,
		opts:       opts,
		logger:     logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() *chi.Mux {
	router := chi.NewRouter()
	errorHandler := pkgerrors.NewErrorHandler(rt.logger, rt.opts.Debug)

	// Global middleware
	router.Use(chimiddleware.RequestID)
	if rt.opts.TrustForwardedFor {
		router.Use(chimiddleware.RealIP)
	}
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	if rt.opts.Collector != nil {
		router.Use(middleware.Metrics(rt.opts.Collector))
	}

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", auth.AdminSecretHeader},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		errorHandler.HandleStatus(w, r, http.StatusNotFound, "Not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		errorHandler.HandleStatus(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	router.Get("/health", rt.healthCheck)
	if rt.opts.ExposeMetrics && rt.opts.Collector != nil {
		router.Method(http.MethodGet, "/metrics", rt.opts.Collector.Handler())
	}

	itemHandler := handlers.NewItemHandler(rt.queryBus, errorHandler, rt.logger)
	router.Get("/items", itemHandler.ListItems)
	router.Get("/items/{itemID}", itemHandler.GetItem)

	router.Get("/recipes", handlers.NewRecipeHandler(rt.queryBus, errorHandler, rt.logger).ListRecipes)

	npcHandler := handlers.NewNPCHandler(rt.queryBus, errorHandler, rt.logger)
	router.Get("/npcs", npcHandler.ListNPCs)
	router.Get("/quests", npcHandler.ListQuests)

	priceHandler := handlers.NewPriceHandler(rt.commandBus, rt.queryBus, rt.opts.Clock, errorHandler, rt.logger)
	router.Get("/prices", priceHandler.ListPrices)
	// Rate limited before the secret check: failed guesses count too.
	router.With(
		middleware.RateLimit(rt.opts.RateLimiter, errorHandler, rt.logger),
		middleware.RequireAdminSecret(rt.opts.AdminSecret, errorHandler),
	).Post("/prices", priceHandler.SubmitPrice)

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
